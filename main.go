/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command mdtasks renders markdown task lists as HTML checkboxes.
package main

import (
	"os"

	"bennypowers.dev/mdtasks/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
