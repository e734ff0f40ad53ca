/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for task list rendering.
package config

import (
	"bennypowers.dev/mdtasks/tasklist"
)

// Config represents the task list configuration file.
// Unset booleans fall back to tasklist.DefaultOptions.
type Config struct {
	// Enabled makes checkboxes interactive.
	Enabled *bool `yaml:"enabled" json:"enabled,omitempty" toml:"enabled" hcl:"enabled,optional"`

	// Label wraps item text in a label bound to the checkbox.
	Label *bool `yaml:"label" json:"label,omitempty" toml:"label" hcl:"label,optional"`

	// LineNumber emits data-line attributes on checkboxes.
	LineNumber *bool `yaml:"lineNumber" json:"lineNumber,omitempty" toml:"lineNumber" hcl:"lineNumber,optional"`

	// IDPrefix prefixes checkbox ids (default "task-item-").
	IDPrefix string `yaml:"idPrefix" json:"idPrefix,omitempty" toml:"idPrefix" hcl:"idPrefix,optional"`

	// Fallback selects the id scheme for items without a source line.
	// Valid values: "counter", "hash"
	Fallback string `yaml:"fallback" json:"fallback,omitempty" toml:"fallback" hcl:"fallback,optional"`

	// Files lists markdown files to process (paths or globs).
	Files []string `yaml:"files" json:"files,omitempty" toml:"files" hcl:"files,optional"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// Options converts the config to transform options.
func (c *Config) Options() (tasklist.Options, error) {
	opts := tasklist.DefaultOptions()
	if c.Enabled != nil {
		opts.Enabled = *c.Enabled
	}
	if c.Label != nil {
		opts.Label = *c.Label
	}
	if c.LineNumber != nil {
		opts.LineNumber = *c.LineNumber
	}
	if c.IDPrefix != "" {
		opts.IDPrefix = c.IDPrefix
	}
	fallback, err := tasklist.ParseFallback(c.Fallback)
	if err != nil {
		return opts, err
	}
	opts.Fallback = fallback
	return opts, nil
}

// Bool returns a pointer to v, for building configs in code.
func Bool(v bool) *bool {
	return &v
}
