// Package config loads trackpath settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFormat applies when neither the config file nor the command
// line provides a format.
const DefaultFormat = "%albumartist/%album{/Disc %disc}/%track - %title"

// Config mirrors the TOML file. Sanitization switches default to off
// except replace_spaces, which defaults to on; the pointer
// distinguishes "unset" from an explicit false.
type Config struct {
	Format            string `koanf:"format"`
	RemoveProblematic bool   `koanf:"remove_problematic"`
	RemoveNonFAT      bool   `koanf:"remove_non_fat"`
	RemoveNonASCII    bool   `koanf:"remove_non_ascii"`
	AllowASCIIExt     bool   `koanf:"allow_ascii_ext"`
	ReplaceSpaces     *bool  `koanf:"replace_spaces"`
}

// Load reads configuration from path. When path is empty, the default
// locations are tried in order (XDG config dir, then the working
// directory) and missing files simply leave the defaults in place; an
// explicit path that cannot be read is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	} else {
		for _, candidate := range defaultPaths() {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if err := k.Load(file.Provider(candidate), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load config %s: %w", candidate, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}

	return cfg, nil
}

func defaultPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "trackpath", "config.toml"),
		"trackpath.toml",
	}
}

// ReplaceSpacesValue returns the replace_spaces setting with its
// default applied.
func (c *Config) ReplaceSpacesValue() bool {
	if c.ReplaceSpaces == nil {
		return true
	}
	return *c.ReplaceSpaces
}
