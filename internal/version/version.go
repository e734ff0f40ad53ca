/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the mdtasks CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version information, set at build time via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Get returns the ldflags version, the module version, or "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return "dev"
}

// Full returns the version with the short commit hash when known.
func Full() string {
	v := Get()
	if GitCommit == "unknown" || GitCommit == "" {
		return v
	}
	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (commit: %s)", v, commit)
}

// Info returns detailed build information.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": GitCommit,
		"buildTime": BuildTime,
	}
}
