package markdown

import "github.com/fwojciec/chatmd"

// FirstMatchWinsForTest exposes firstMatchWins over [start, end) pairs.
func FirstMatchWinsForTest(intervals [][2]int) [][2]int {
	return firstMatchWins(intervals, func(iv [2]int) (int, int) {
		return iv[0], iv[1]
	})
}

// SplitRowForTest exposes splitRow.
func SplitRowForTest(raw string) []string {
	return splitRow(raw)
}

// ScanForTest feeds lines through the scanner without flushing it at end of
// input. It returns the name of the final state and the blocks emitted.
func ScanForTest(lines ...string) (string, []chatmd.Block) {
	var (
		s      scanner
		out    []chatmd.Block
		blocks []chatmd.Block
	)
	for _, l := range lines {
		s, out = s.step(l)
		blocks = append(blocks, out...)
	}
	names := map[mode]string{modeNormal: "normal", modeCode: "code", modeTable: "table"}
	return names[s.mode], blocks
}
