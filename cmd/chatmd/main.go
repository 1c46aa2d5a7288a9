// Command chatmd renders chat-style markdown for the terminal.
//
// Usage:
//
//	chatmd [flags] [path|glob|-]...
//
// With no arguments the document is read from stdin. Inputs ending in .json
// are loaded as pre-parsed block documents.
//
// Flags:
//
//	-format string   Output format: ansi, json (default ansi)
//	-width int       Wrap width (default from config)
//	-parser string   Parser: markdown, goldmark (default from config)
//	-style string    Chroma style for code blocks; "none" disables highlighting
//	-pager           Show output in an interactive pager
//	-config string   Path to config file (default $CHATMD_CONFIG or the user config dir)
//	-o string        Write output to file instead of stdout
//	-verbose         Log parsing details to stderr
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/chatmd"
	bt "github.com/fwojciec/chatmd/bubbletea"
	"github.com/fwojciec/chatmd/chroma"
	mdjson "github.com/fwojciec/chatmd/json"
	mdlipgloss "github.com/fwojciec/chatmd/lipgloss"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := environment{ConfigPath: os.Getenv("CHATMD_CONFIG")}
	if err := run(ctx, os.Args[1:], env, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "chatmd: %v\n", err)
		os.Exit(1)
	}
}

// environment carries values main reads from the process environment.
type environment struct {
	ConfigPath string
}

// options are the parsed command-line flags.
type options struct {
	format     string
	width      int
	parser     string
	style      string
	pager      bool
	configPath string
	output     string
	verbose    bool
	args       []string
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("chatmd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.format, "format", formatANSI, "Output format: ansi, json")
	fs.IntVar(&o.width, "width", 0, "Wrap width (default from config)")
	fs.StringVar(&o.parser, "parser", "", "Parser: markdown, goldmark (default from config)")
	fs.StringVar(&o.style, "style", "", `Chroma style for code blocks; "none" disables highlighting`)
	fs.BoolVar(&o.pager, "pager", false, "Show output in an interactive pager")
	fs.StringVar(&o.configPath, "config", "", "Path to config file")
	fs.StringVar(&o.output, "o", "", "Write output to file instead of stdout")
	fs.BoolVar(&o.verbose, "verbose", false, "Log parsing details to stderr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	o.args = fs.Args()
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func run(ctx context.Context, args []string, env environment, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "chatmd", Level: level})

	cfg, err := resolveConfig(opts, env, logger)
	if err != nil {
		return err
	}
	format, err := resolveFormat(opts.format)
	if err != nil {
		return err
	}
	parser, err := resolveParser(cfg.Parser)
	if err != nil {
		return err
	}

	docs, err := readDocuments(opts.args, parser, stdin, logger)
	if err != nil {
		return err
	}
	blocks := joinDocuments(docs)
	logger.Debug("parsed input", "documents", len(docs), "blocks", len(blocks), "parser", cfg.Parser)

	if format == formatJSON {
		return writeJSON(blocks, opts.output, stdout)
	}

	renderer := newRenderer(cfg)
	if cfg.Pager {
		if err := bt.Run(ctx, bt.New(title(docs), blocks, renderer, cfg.Theme)); err != nil {
			return fmt.Errorf("pager: %w", err)
		}
		return nil
	}
	return writeOutput([]byte(renderer.Render(blocks, cfg.Width)+"\n"), opts.output, stdout)
}

func newRenderer(cfg chatmd.Config) *mdlipgloss.Renderer {
	var h chatmd.Highlighter
	if cfg.CodeStyle != "" {
		h = chroma.New(cfg.CodeStyle)
	}
	return mdlipgloss.New(cfg.Theme, h)
}

func writeJSON(blocks []chatmd.Block, output string, stdout io.Writer) error {
	if output != "" {
		if err := mdjson.Save(output, blocks); err != nil {
			return fmt.Errorf("save blocks: %w", err)
		}
		return nil
	}
	data, err := mdjson.MarshalBlocks(blocks)
	if err != nil {
		return fmt.Errorf("marshal blocks: %w", err)
	}
	return writeOutput(append(data, '\n'), "", stdout)
}

func writeOutput(data []byte, output string, stdout io.Writer) error {
	if output != "" {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if _, err := stdout.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
