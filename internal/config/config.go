// Package config loads engine.Option settings from YAML, for callers (the
// CLI's --config flag) that want to configure an Engine without writing Go.
// It mirrors engine.Option field-for-field rather than wrapping it, the
// same way go-dws keeps its CLI flag structs separate from the
// lexer/parser options they end up calling.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/cwbudde/eliza/internal/engine"
)

// EngineConfig is the YAML-decodable mirror of engine's functional options.
// Zero-value fields mean "leave the engine default alone" for the two
// bools, which is why they're pointers: YAML has no way to distinguish
// "absent" from "false" on a plain bool.
type EngineConfig struct {
	Delimiters         []string `yaml:"delimiters"`
	NomatchMessages    *bool    `yaml:"nomatch_messages"`
	NewkeyFailUsesNone *bool    `yaml:"newkey_fail_uses_none"`
}

// Load reads and decodes a YAML config file.
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Options converts the decoded config into engine.Option values, omitting
// any field left unset.
func (c *EngineConfig) Options() []engine.Option {
	if c == nil {
		return nil
	}
	var opts []engine.Option
	if c.Delimiters != nil {
		opts = append(opts, engine.WithDelimiters(c.Delimiters))
	}
	if c.NomatchMessages != nil {
		opts = append(opts, engine.WithNomatchMessages(*c.NomatchMessages))
	}
	if c.NewkeyFailUsesNone != nil {
		opts = append(opts, engine.WithNewkeyFailUsesNone(*c.NewkeyFailUsesNone))
	}
	return opts
}
