// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// distance_cmd.go - The distance command: print only the edit distance.
package cli

import (
	"fmt"
)

// HandleDistance implements the distance command. Unlike diff it always
// exits 0 on a successful computation; the number is the result.
func HandleDistance(args *Args) error {
	if err := validateFilePair(args); err != nil {
		return err
	}
	opts, err := resolveOptions(args)
	if err != nil {
		return err
	}

	report, _, _, err := compareFiles(args, opts)
	if err != nil {
		return err
	}

	if args.JSON {
		return PrintJSON("distance", map[string]interface{}{
			"file_a":      report.NameA,
			"file_b":      report.NameB,
			"granularity": report.Granularity.String(),
			"distance":    report.Stats.Distance,
		})
	}

	if args.Quiet {
		if !report.Identical {
			return ErrFilesDiffer
		}
		return nil
	}

	fmt.Println(report.Stats.Distance)
	return nil
}
