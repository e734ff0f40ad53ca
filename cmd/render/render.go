/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides the render command for mdtasks.
package render

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/mdtasks/fs"
	"bennypowers.dev/mdtasks/internal/cli"
	"bennypowers.dev/mdtasks/internal/logger"
	"bennypowers.dev/mdtasks/load"
	"bennypowers.dev/mdtasks/markdown"
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render markdown files to HTML",
	Long: `Render markdown files to HTML with task list items as checkboxes.

Examples:
  # Render to stdout
  mdtasks render TODO.md

  # Render every markdown file under docs/ into out/
  mdtasks render --out-dir out 'docs/**/*.md'

  # Render the files listed in .config/tasklists.yaml
  mdtasks render`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().String("out-dir", "", "Write one .html file per input into this directory")
	Cmd.Flags().Bool("standalone", false, "Wrap output in a complete HTML document")
}

// ErrOutputCollision indicates two inputs would be written to one file.
var ErrOutputCollision = errors.New("output collision")

// Rendered is the HTML for one input file.
type Rendered struct {
	Path string
	HTML string
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	outDir, _ := cmd.Flags().GetString("out-dir")
	standalone, _ := cmd.Flags().GetBool("standalone")

	filesystem := fs.NewOSFileSystem()
	cfg, p, err := cli.Setup(filesystem)
	if err != nil {
		return err
	}
	files, err := cli.Inputs(filesystem, cfg, args)
	if err != nil {
		return err
	}

	docs := RenderFiles(cmd.Context(), cli.LoadOptions(filesystem), p, files)
	if len(docs) == 0 {
		return fmt.Errorf("no files rendered")
	}
	if standalone {
		for i := range docs {
			docs[i].HTML = Standalone(docs[i].Path, docs[i].HTML)
		}
	}

	switch {
	case outDir != "":
		written, err := WriteOutputs(filesystem, outDir, docs)
		if err != nil {
			return err
		}
		logger.Info("wrote %d files to %s", len(written), outDir)
	case output != "":
		var sb strings.Builder
		for _, doc := range docs {
			sb.WriteString(doc.HTML)
		}
		if err := filesystem.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", output, err)
		}
		if err := filesystem.WriteFile(output, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("error writing to %s: %w", output, err)
		}
	default:
		for _, doc := range docs {
			fmt.Fprint(cmd.OutOrStdout(), doc.HTML)
		}
	}
	return nil
}

// RenderFiles renders each input, skipping inputs that cannot be read.
func RenderFiles(ctx context.Context, opts load.Options, p *markdown.Pipeline, files []string) []Rendered {
	docs := make([]Rendered, 0, len(files))
	for _, file := range files {
		src, err := load.Read(ctx, file, opts)
		if err != nil {
			logger.Warn("%v", err)
			continue
		}
		html, err := p.Render(src, nil)
		if err != nil {
			logger.Warn("error rendering %s: %v", file, err)
			continue
		}
		docs = append(docs, Rendered{Path: file, HTML: html})
	}
	return docs
}

// WriteOutputs writes each document under outDir, creating directories as
// needed, and returns the written paths.
func WriteOutputs(filesystem fs.FileSystem, outDir string, docs []Rendered) ([]string, error) {
	paths := make([]string, len(docs))
	for i, doc := range docs {
		paths[i] = doc.Path
	}
	targets, err := OutputNames(outDir, paths)
	if err != nil {
		return nil, err
	}
	for i, doc := range docs {
		target := targets[i]
		if err := filesystem.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return nil, fmt.Errorf("error creating directory for %s: %w", target, err)
		}
		if err := filesystem.WriteFile(target, []byte(doc.HTML), 0644); err != nil {
			return nil, fmt.Errorf("error writing to %s: %w", target, err)
		}
		logger.Debug("wrote %s", target)
	}
	return targets, nil
}

// OutputNames maps inputs to .html files under outDir. Local files keep
// their path relative to the deepest directory shared by all local inputs,
// so docs/a/todo.md and docs/b/todo.md land in a/todo.html and b/todo.html.
// URLs use their base name. Two inputs mapping to one file is an error.
func OutputNames(outDir string, inputs []string) ([]string, error) {
	var local []string
	for _, in := range inputs {
		if !load.IsURL(in) {
			local = append(local, in)
		}
	}
	base := commonDir(local)

	targets := make([]string, len(inputs))
	owner := make(map[string]string, len(inputs))
	for i, in := range inputs {
		rel := path.Base(urlPath(in))
		if !load.IsURL(in) {
			r, err := filepath.Rel(base, filepath.Clean(in))
			if err != nil {
				return nil, fmt.Errorf("error placing %s under %s: %w", in, outDir, err)
			}
			rel = r
		}
		target := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".html")
		if prev, ok := owner[target]; ok {
			return nil, fmt.Errorf("%w: %s and %s both map to %s", ErrOutputCollision, prev, in, target)
		}
		owner[target] = in
		targets[i] = target
	}
	return targets, nil
}

func urlPath(in string) string {
	u, err := url.Parse(in)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "index"
	}
	return u.Path
}

// commonDir returns the deepest directory containing every path.
func commonDir(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	sep := string(filepath.Separator)
	var common []string
	for i, p := range paths {
		parts := strings.Split(filepath.Dir(filepath.Clean(p)), sep)
		if i == 0 {
			common = parts
			continue
		}
		n := 0
		for n < len(common) && n < len(parts) && common[n] == parts[n] {
			n++
		}
		common = common[:n]
	}
	dir := strings.Join(common, sep)
	if dir == "" && filepath.IsAbs(paths[0]) {
		return sep
	}
	if dir == "" {
		return "."
	}
	return dir
}

// Standalone wraps body in an HTML document titled after the file name.
func Standalone(path, body string) string {
	return fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		markdown.Escape(Title(path)), body)
}

// Title derives a document title from a file name: "my-todo.md" becomes "My Todo".
func Title(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(strings.Join(strings.Fields(base), " "))
}
