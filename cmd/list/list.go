/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for mdtasks.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/mdtasks/fs"
	"bennypowers.dev/mdtasks/internal/cli"
	"bennypowers.dev/mdtasks/internal/logger"
	"bennypowers.dev/mdtasks/load"
	"bennypowers.dev/mdtasks/markdown"
	"bennypowers.dev/mdtasks/tasklist"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List task items in markdown files",
	Long:  `List every task list item with its state, source line and checkbox id.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().Bool("checked", false, "Only show checked items")
	Cmd.Flags().Bool("unchecked", false, "Only show unchecked items")
	Cmd.Flags().String("search", "", "Only show items whose text contains this (case-insensitive)")
}

// Entry is a task item together with the file it came from.
type Entry struct {
	File string `json:"file"`
	tasklist.Item
}

// Filter selects entries.
type Filter struct {
	Checked   bool
	Unchecked bool
	Search    string
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	checked, _ := cmd.Flags().GetBool("checked")
	unchecked, _ := cmd.Flags().GetBool("unchecked")
	search, _ := cmd.Flags().GetString("search")

	filesystem := fs.NewOSFileSystem()
	cfg, p, err := cli.Setup(filesystem)
	if err != nil {
		return err
	}
	files, err := cli.Inputs(filesystem, cfg, args)
	if err != nil {
		return err
	}

	entries := Collect(cmd.Context(), cli.LoadOptions(filesystem), p, files)
	entries = FilterEntries(entries, Filter{Checked: checked, Unchecked: unchecked, Search: search})

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), entries)
	default:
		return outputTable(cmd.OutOrStdout(), entries, terminalWidth(cmd.OutOrStdout()))
	}
}

// Collect parses each input and gathers its task items in document order.
func Collect(ctx context.Context, opts load.Options, p *markdown.Pipeline, files []string) []Entry {
	var entries []Entry
	for _, file := range files {
		src, err := load.Read(ctx, file, opts)
		if err != nil {
			logger.Warn("%v", err)
			continue
		}
		env := map[string]any{}
		if _, err := p.Parse(src, env); err != nil {
			logger.Warn("error parsing %s: %v", file, err)
			continue
		}
		result, _ := tasklist.ResultFromEnv(env)
		for _, item := range result.Items {
			entries = append(entries, Entry{File: file, Item: item})
		}
	}
	return entries
}

// FilterEntries applies f. Search uses Unicode case folding.
func FilterEntries(entries []Entry, f Filter) []Entry {
	fold := cases.Fold()
	query := fold.String(f.Search)
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Checked && !e.Checked {
			continue
		}
		if f.Unchecked && e.Checked {
			continue
		}
		if query != "" && !strings.Contains(fold.String(e.Text), query) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// Status returns "Done" or "Open".
func Status(checked bool) string {
	status := "open"
	if checked {
		status = "done"
	}
	return cases.Title(language.English).String(status)
}

// minTextWidth keeps truncated item text readable on narrow terminals.
const minTextWidth = 16

// terminalWidth returns the width of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// outputTable writes one row per entry. When width is positive, item text
// is truncated so each row fits.
func outputTable(w io.Writer, entries []Entry, width int) error {
	for _, e := range entries {
		loc := e.File
		if e.Line >= 0 {
			loc = fmt.Sprintf("%s:%d", e.File, e.Line+1)
		}
		row := fmt.Sprintf("%-5s %-30s %-20s ", Status(e.Checked), loc, e.ID)
		text := strings.ReplaceAll(e.Text, "\n", " ")
		if width > 0 {
			avail := max(width-ansi.PrintableRuneWidth(row), minTextWidth)
			text = truncate.StringWithTail(text, uint(avail), "…")
		}
		if _, err := fmt.Fprintln(w, row+text); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
