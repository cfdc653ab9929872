// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Command suggestion for typo correction.
package cli

import (
	"strings"

	"github.com/jeranaias/levdiff/internal/edit"
	"github.com/jeranaias/levdiff/internal/util"
)

// validCommands is the list of all valid levdiff commands and aliases.
var validCommands = []string{
	// Primary commands
	"diff",
	"distance",
	"config",
	"version",
	"help",
	// Aliases
	"d",    // diff
	"dist", // distance
	"cfg",  // config
	"v",    // version
	"h",    // help
}

// SuggestCommand returns a suggested command if the input is close to a
// valid command, using the same edit-distance engine the tool is built
// around. Returns empty string if no good match is found.
func SuggestCommand(in string) string {
	in = strings.ToLower(in)

	// Don't suggest for very short inputs (likely intentional)
	inLen := util.RuneLen(in)
	if inLen < 2 {
		return ""
	}

	// Maximum acceptable distance grows with input length: 1 edit for
	// short inputs, 2 for medium (catches transpositions like "dfif"),
	// 3 for long ones.
	maxDistance := 1
	if inLen >= 4 {
		maxDistance = 2
	}
	if inLen > 8 {
		maxDistance = 3
	}

	bestMatch := ""
	bestDistance := -1

	for _, cmd := range validCommands {
		distance := edit.Distance([]rune(in), []rune(cmd))

		if distance == 0 {
			return ""
		}

		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = cmd
		}
	}

	return bestMatch
}
