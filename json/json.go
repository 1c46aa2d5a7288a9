// Package json encodes chatmd block sequences as versioned JSON documents
// so presentation layers outside Go can consume parser output.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/chatmd"
)

const version = 1

// envelope is the v1 wire format for a block document.
type envelope struct {
	Version int        `json:"version"`
	Blocks  []blockDTO `json:"blocks"`
}

// MarshalBlocks serializes blocks to JSON in v1 envelope format.
func MarshalBlocks(blocks []chatmd.Block) ([]byte, error) {
	env := envelope{
		Version: version,
		Blocks:  make([]blockDTO, len(blocks)),
	}
	for i, b := range blocks {
		dto, err := marshalBlock(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		env.Blocks[i] = dto
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalBlocks deserializes blocks from JSON in v1 envelope format.
func UnmarshalBlocks(data []byte) ([]chatmd.Block, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != version {
		return nil, fmt.Errorf("envelope version %d: %w", env.Version, chatmd.ErrUnsupportedVersion)
	}
	blocks := make([]chatmd.Block, len(env.Blocks))
	for i, dto := range env.Blocks {
		b, err := unmarshalBlock(dto)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks[i] = b
	}
	return blocks, nil
}

// Save writes blocks to a JSON file, creating parent directories as needed.
func Save(path string, blocks []chatmd.Block) error {
	data, err := MarshalBlocks(blocks)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads blocks from a JSON file.
func Load(path string) ([]chatmd.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalBlocks(data)
}
