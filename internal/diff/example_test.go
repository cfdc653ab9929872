// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff turns two decoded texts into a change report.
package diff_test

import (
	"fmt"

	"github.com/jeranaias/levdiff/internal/diff"
)

func ExampleCompare() {
	report, err := diff.Compare("a.txt", "b.txt", "kitten", "sitting", diff.GranularityChar)
	if err != nil {
		panic(err)
	}

	fmt.Println(report.Summary())

	// Output:
	// +1 ~2 distance 3
}

func ExampleCompare_lines() {
	textA := "line1\nline2\nline3\n"
	textB := "line1\nchanged\nline3\n"

	report, err := diff.Compare("a.txt", "b.txt", textA, textB, diff.GranularityLine)
	if err != nil {
		panic(err)
	}

	for _, c := range report.Changes {
		if c.Type == diff.ChangeMatch {
			continue
		}
		fmt.Printf("%s %s -> %s\n", c.Type.Marker(), c.Old, c.New)
	}

	// Output:
	// ~ line2 -> changed
}
