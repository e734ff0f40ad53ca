/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for mdtasks.
package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/mdtasks/cmd/list"
	"bennypowers.dev/mdtasks/cmd/render"
	"bennypowers.dev/mdtasks/cmd/schema"
	"bennypowers.dev/mdtasks/cmd/tokens"
	"bennypowers.dev/mdtasks/cmd/version"
	"bennypowers.dev/mdtasks/internal/cli"
	"bennypowers.dev/mdtasks/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mdtasks",
	Short: "Render GitHub-style task lists in markdown",
	Long:  `mdtasks renders markdown to HTML, turning "[ ]" and "[x]" list items into checkboxes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool(cli.KeyVerbose))
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool(cli.KeyEnabled, true, "Render interactive checkboxes")
	flags.Bool(cli.KeyLabel, true, "Wrap item text in a label bound to the checkbox")
	flags.Bool(cli.KeyLineNumber, false, "Emit data-line attributes on checkboxes")
	flags.String(cli.KeyIDPrefix, "", "Checkbox id prefix (default task-item-)")
	flags.String(cli.KeyFallback, "", "Id scheme without source lines: counter, hash")
	flags.String(cli.KeyRoot, ".", "Project root for config discovery")
	flags.StringP(cli.KeyConfig, "c", "", "Config file (default .config/tasklists.{yaml,yml,json,jsonc,toml,hcl})")
	flags.BoolP(cli.KeyVerbose, "v", false, "Verbose logging")
	flags.Bool(cli.KeyNetwork, false, "Allow http(s) URLs as inputs")
	flags.Duration(cli.KeyTimeout, 30*time.Second, "Timeout for each network fetch")

	for _, key := range []string{
		cli.KeyEnabled, cli.KeyLabel, cli.KeyLineNumber, cli.KeyIDPrefix,
		cli.KeyFallback, cli.KeyRoot, cli.KeyConfig, cli.KeyVerbose,
		cli.KeyNetwork, cli.KeyTimeout,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("MDTASKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(schema.Cmd)
	rootCmd.AddCommand(tokens.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
