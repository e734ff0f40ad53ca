/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	mdfs "bennypowers.dev/mdtasks/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tasklists"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".jsonc", ".toml", ".hcl"}

// Path returns the first existing config file under rootDir, or "".
func Path(filesystem mdfs.FileSystem, rootDir string) string {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if filesystem.Exists(configPath) {
			return configPath
		}
	}
	return ""
}

// Load searches for .config/tasklists.{yaml,yml,json,jsonc,toml,hcl} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem mdfs.FileSystem, rootDir string) (*Config, error) {
	configPath := Path(filesystem, rootDir)
	if configPath == "" {
		return nil, nil
	}
	return LoadFile(filesystem, configPath)
}

// LoadFile parses a config file, choosing the decoder by extension.
// The document is checked against the config schema before it is decoded,
// so misspelled keys are reported rather than dropped.
func LoadFile(filesystem mdfs.FileSystem, configPath string) (*Config, error) {
	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(configPath)
	if ext == ".hcl" {
		return loadHCL(data, configPath)
	}

	var doc map[string]any
	cfg := &Config{}
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
		if err := checkDocument(configPath, doc); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
		if err := checkDocument(configPath, doc); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
		if err := checkDocument(configPath, doc); err != nil {
			return nil, err
		}
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return cfg, nil
}

// checkDocument validates a raw config document. An empty file is an empty
// config.
func checkDocument(configPath string, doc map[string]any) error {
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validateDocument(doc); err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}
	return nil
}

// loadHCL decodes an HCL config. gohcl rejects unknown attributes itself,
// so the decoded struct is what gets validated.
func loadHCL(data []byte, configPath string) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, configPath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, diags)
	}
	cfg := &Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", configPath, diags)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem mdfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandFiles expands glob patterns in Files and returns absolute paths.
func (c *Config) ExpandFiles(filesystem mdfs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	for _, pattern := range c.Files {
		expanded, err := ExpandPath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

// ExpandPath expands a single path which may contain globs.
// Relative patterns are resolved against rootDir.
func ExpandPath(filesystem mdfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	// Not a glob: errors surface when the file is read
	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func expandGlob(filesystem mdfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
