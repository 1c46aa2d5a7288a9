// Package toml loads chatmd configuration from TOML files.
package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/chatmd"
)

// file mirrors the on-disk layout. Pointer fields distinguish absent keys
// from zero values so defaults survive partial files.
type file struct {
	Width     *int    `toml:"width"`
	Parser    *string `toml:"parser"`
	CodeStyle *string `toml:"code_style"`
	Pager     *bool   `toml:"pager"`
	Theme     theme   `toml:"theme"`
}

type theme struct {
	Accent  *int `toml:"accent"`
	Link    *int `toml:"link"`
	Code    *int `toml:"code"`
	Quote   *int `toml:"quote"`
	Success *int `toml:"success"`
	Muted   *int `toml:"muted"`
}

// DefaultPath returns the user's config file location,
// $XDG_CONFIG_HOME/chatmd/config.toml or its platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "chatmd", "config.toml"), nil
}

// Load decodes the config file at path over chatmd.DefaultConfig and
// validates the result. Unknown keys are rejected.
func Load(path string) (chatmd.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chatmd.Config{}, fmt.Errorf("read config: %w", err)
	}
	return Decode(string(data))
}

// LoadOptional behaves like Load but returns chatmd.DefaultConfig when the
// file does not exist.
func LoadOptional(path string) (chatmd.Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return chatmd.DefaultConfig(), nil
	}
	return cfg, err
}

// Decode parses TOML config text over chatmd.DefaultConfig.
func Decode(data string) (chatmd.Config, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return chatmd.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return chatmd.Config{}, fmt.Errorf("unknown config keys %s: %w", strings.Join(keys, ", "), chatmd.ErrValidation)
	}

	cfg := chatmd.DefaultConfig()
	set(&cfg.Width, f.Width)
	set(&cfg.Parser, f.Parser)
	set(&cfg.CodeStyle, f.CodeStyle)
	set(&cfg.Pager, f.Pager)
	set(&cfg.Theme.Accent, f.Theme.Accent)
	set(&cfg.Theme.Link, f.Theme.Link)
	set(&cfg.Theme.Code, f.Theme.Code)
	set(&cfg.Theme.Quote, f.Theme.Quote)
	set(&cfg.Theme.Success, f.Theme.Success)
	set(&cfg.Theme.Muted, f.Theme.Muted)

	if err := cfg.Validate(); err != nil {
		return chatmd.Config{}, err
	}
	return cfg, nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
