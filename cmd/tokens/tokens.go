/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens provides the tokens command for mdtasks.
package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/mdtasks/fs"
	"bennypowers.dev/mdtasks/internal/cli"
	"bennypowers.dev/mdtasks/internal/logger"
	"bennypowers.dev/mdtasks/load"
	"bennypowers.dev/mdtasks/token"
)

// Cmd is the tokens cobra command.
var Cmd = &cobra.Command{
	Use:   "tokens [files...]",
	Short: "Dump the processed token stream",
	Long:  `Parse markdown files, apply the task list transform and print the resulting token stream.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "json", "Output format: json, yaml")
	Cmd.Flags().StringSliceP("type", "t", nil, "Only print tokens of these types, inline children included")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	types, _ := cmd.Flags().GetStringSlice("type")

	filesystem := fs.NewOSFileSystem()
	cfg, p, err := cli.Setup(filesystem)
	if err != nil {
		return err
	}
	files, err := cli.Inputs(filesystem, cfg, args)
	if err != nil {
		return err
	}

	opts := cli.LoadOptions(filesystem)
	for _, file := range files {
		src, err := load.Read(cmd.Context(), file, opts)
		if err != nil {
			logger.Warn("%v", err)
			continue
		}
		toks, err := p.Parse(src, nil)
		if err != nil {
			logger.Warn("error parsing %s: %v", file, err)
			continue
		}
		if err := token.Validate(toks); err != nil {
			logger.Warn("%s: %v", file, err)
		}
		if len(types) > 0 {
			toks = Select(toks, types)
		}
		out, err := Encode(toks, format)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return err
		}
	}
	return nil
}

// Select flattens the stream to the tokens whose type is one of types,
// in document order. Matching inline children are included; a matching
// parent keeps its children.
func Select(toks []*token.Token, types []string) []*token.Token {
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	selected := []*token.Token{}
	token.Walk(toks, func(tok, _ *token.Token) bool {
		if want[tok.Type] {
			selected = append(selected, tok)
		}
		return true
	})
	return selected
}

// Encode serializes a token stream as indented JSON or YAML.
func Encode(toks []*token.Token, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(toks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshaling tokens: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(toks); err != nil {
			return nil, fmt.Errorf("error marshaling tokens: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q: expected json or yaml", format)
	}
}
