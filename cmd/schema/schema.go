/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema provides the schema command for mdtasks.
package schema

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/mdtasks/config"
)

// Cmd prints the JSON Schema that config files are validated against.
var Cmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config file JSON Schema",
	Long: `Print the JSON Schema used to validate .config/tasklists.* files.
Point an editor's yaml or json language server at it for completion.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), config.Schema())
	return err
}
