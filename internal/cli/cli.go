/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli holds the option and input resolution shared by the commands.
// Precedence is flags, then MDTASKS_* environment variables, then the
// config file, then defaults.
package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"bennypowers.dev/mdtasks/config"
	"bennypowers.dev/mdtasks/fs"
	"bennypowers.dev/mdtasks/internal/logger"
	"bennypowers.dev/mdtasks/load"
	"bennypowers.dev/mdtasks/markdown"
	"bennypowers.dev/mdtasks/tasklist"
)

// Viper keys for settings shared by every command.
const (
	KeyEnabled    = "enabled"
	KeyLabel      = "label"
	KeyLineNumber = "line-number"
	KeyIDPrefix   = "id-prefix"
	KeyFallback   = "fallback"
	KeyRoot       = "root"
	KeyConfig     = "config"
	KeyVerbose    = "verbose"
	KeyNetwork    = "network"
	KeyTimeout    = "fetch-timeout"
)

// ErrNoInputs indicates neither arguments nor config named any files.
var ErrNoInputs = errors.New("no input files")

// LoadConfig reads the file named by --config, or discovers one under --root.
func LoadConfig(filesystem fs.FileSystem) (*config.Config, error) {
	if path := viper.GetString(KeyConfig); path != "" {
		return config.LoadFile(filesystem, path)
	}
	cfg, err := config.Load(filesystem, Root())
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		logger.Debug("no config file under %s, using defaults", Root())
		return config.Default(), nil
	}
	return cfg, nil
}

// Root returns the project root used for config discovery and globs.
func Root() string {
	root := viper.GetString(KeyRoot)
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return root
	}
	return abs
}

// Options layers flag and environment overrides over cfg.
func Options(cfg *config.Config) (tasklist.Options, error) {
	merged := *cfg
	if viper.IsSet(KeyEnabled) {
		merged.Enabled = config.Bool(viper.GetBool(KeyEnabled))
	}
	if viper.IsSet(KeyLabel) {
		merged.Label = config.Bool(viper.GetBool(KeyLabel))
	}
	if viper.IsSet(KeyLineNumber) {
		merged.LineNumber = config.Bool(viper.GetBool(KeyLineNumber))
	}
	if viper.IsSet(KeyIDPrefix) {
		merged.IDPrefix = viper.GetString(KeyIDPrefix)
	}
	if viper.IsSet(KeyFallback) {
		merged.Fallback = viper.GetString(KeyFallback)
	}
	return merged.Options()
}

// Inputs expands args, or the config's files when args is empty.
func Inputs(filesystem fs.FileSystem, cfg *config.Config, args []string) ([]string, error) {
	var files []string
	if len(args) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, Root())
		if err != nil {
			return nil, err
		}
		files = expanded
	} else {
		cwd, err := filepath.Abs(".")
		if err != nil {
			return nil, err
		}
		for _, arg := range args {
			if load.IsURL(arg) {
				files = append(files, arg)
				continue
			}
			expanded, err := config.ExpandPath(filesystem, cwd, arg)
			if err != nil {
				return nil, err
			}
			files = append(files, expanded...)
		}
	}
	if len(files) == 0 {
		return nil, ErrNoInputs
	}
	return files, nil
}

// LoadOptions returns how inputs are read. URL inputs need --network.
func LoadOptions(filesystem fs.FileSystem) load.Options {
	opts := load.Options{FS: filesystem}
	if viper.GetBool(KeyNetwork) {
		opts.Fetcher = load.NewHTTPFetcher(load.DefaultMaxSize)
		opts.FetchTimeout = viper.GetDuration(KeyTimeout)
	}
	return opts
}

// Setup resolves config and options and builds a pipeline with task lists
// installed.
func Setup(filesystem fs.FileSystem) (*config.Config, *markdown.Pipeline, error) {
	cfg, err := LoadConfig(filesystem)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	opts, err := Options(cfg)
	if err != nil {
		return nil, nil, err
	}
	p := markdown.New()
	if err := tasklist.Install(p, opts); err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}
