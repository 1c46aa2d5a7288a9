package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/chatmd"
	"github.com/fwojciec/chatmd/goldmark"
	"github.com/fwojciec/chatmd/markdown"
	mdtoml "github.com/fwojciec/chatmd/toml"
)

// Output formats accepted by -format.
const (
	formatANSI = "ansi"
	formatJSON = "json"
)

// styleNone disables code highlighting from the command line.
const styleNone = "none"

// resolveConfig loads the config file and applies flags that were set
// explicitly. The -config flag takes precedence over $CHATMD_CONFIG; both
// must name an existing file, while the default location is optional.
func resolveConfig(opts options, env environment, logger *log.Logger) (chatmd.Config, error) {
	path := opts.configPath
	if path == "" {
		path = env.ConfigPath
	}

	var (
		cfg chatmd.Config
		err error
	)
	if path != "" {
		cfg, err = mdtoml.Load(path)
	} else {
		path, err = mdtoml.DefaultPath()
		if err != nil {
			logger.Debug("no default config location", "err", err)
			cfg, err = chatmd.DefaultConfig(), nil
		} else {
			cfg, err = mdtoml.LoadOptional(path)
		}
	}
	if err != nil {
		return chatmd.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	logger.Debug("loaded config", "path", path)

	if opts.set["width"] {
		cfg.Width = opts.width
	}
	if opts.set["parser"] {
		cfg.Parser = opts.parser
	}
	if opts.set["style"] {
		cfg.CodeStyle = opts.style
		if opts.style == styleNone {
			cfg.CodeStyle = ""
		}
	}
	if opts.set["pager"] {
		cfg.Pager = opts.pager
	}
	if err := cfg.Validate(); err != nil {
		return chatmd.Config{}, err
	}
	return cfg, nil
}

func resolveFormat(name string) (string, error) {
	switch name {
	case formatANSI, formatJSON:
		return name, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s or %s): %w", name, formatANSI, formatJSON, chatmd.ErrValidation)
	}
}

func resolveParser(name string) (chatmd.Parser, error) {
	switch name {
	case chatmd.ParserMarkdown:
		return markdown.Parser{}, nil
	case chatmd.ParserGoldmark:
		return goldmark.Parser{}, nil
	default:
		return nil, fmt.Errorf("parser %q: %w", name, chatmd.ErrUnknownParser)
	}
}
