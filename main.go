// levdiff - Levenshtein-based file comparison.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/levdiff/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdDiff:
		err = cli.HandleDiff(args)
	case cli.CmdDistance:
		err = cli.HandleDistance(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdVersion:
		err = cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if err != nil {
		// ErrFilesDiffer only selects the exit code; it is not a failure
		// the user needs told about.
		if !errors.Is(err, cli.ErrFilesDiffer) {
			fmt.Fprintf(os.Stderr, "levdiff: %v\n", err)
		}
		os.Exit(cli.ExitCodeForError(err))
	}
}
