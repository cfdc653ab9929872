// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff turns two decoded texts into a change report.
package diff

import (
	"fmt"
	"strings"

	"github.com/jeranaias/levdiff/internal/edit"
)

// =============================================================================
// GRANULARITY
// =============================================================================

// Granularity selects the symbol unit the engine compares.
type Granularity int

const (
	// GranularityChar compares individual characters (runes)
	GranularityChar Granularity = iota
	// GranularityLine compares whole lines
	GranularityLine
)

// String returns the string representation of a granularity.
func (g Granularity) String() string {
	switch g {
	case GranularityChar:
		return "char"
	case GranularityLine:
		return "line"
	default:
		return "unknown"
	}
}

// ParseGranularity parses "char" or "line" (case-insensitive).
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "char", "chars", "character":
		return GranularityChar, nil
	case "line", "lines":
		return GranularityLine, nil
	default:
		return GranularityChar, fmt.Errorf("invalid granularity %q (expected \"char\" or \"line\")", s)
	}
}

// =============================================================================
// CHANGE TYPES
// =============================================================================

// ChangeType represents the type of a single change.
type ChangeType int

const (
	// ChangeMatch represents an unchanged symbol
	ChangeMatch ChangeType = iota
	// ChangeInsert represents an inserted symbol
	ChangeInsert
	// ChangeDelete represents a deleted symbol
	ChangeDelete
	// ChangeSubstitute represents a replaced symbol
	ChangeSubstitute
)

// String returns the string representation of a change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeMatch:
		return "match"
	case ChangeInsert:
		return "insertion"
	case ChangeDelete:
		return "deletion"
	case ChangeSubstitute:
		return "substitution"
	default:
		return "unknown"
	}
}

// Marker returns the diff prefix character for this change type.
func (t ChangeType) Marker() string {
	switch t {
	case ChangeInsert:
		return "+"
	case ChangeDelete:
		return "-"
	case ChangeSubstitute:
		return "~"
	default:
		return " "
	}
}

// =============================================================================
// CHANGE
// =============================================================================

// Change represents a single step of the transformation.
type Change struct {
	Type   ChangeType // Type of change
	Old    string     // Symbol from the source text (empty for insertions)
	New    string     // Symbol from the target text (empty for deletions)
	OldPos int        // 1-based position in the source (0 for insertions)
	NewPos int        // 1-based position in the target (0 for deletions)
}

// =============================================================================
// STATS AND REPORT
// =============================================================================

// Stats holds statistics about a comparison.
type Stats struct {
	Insertions    int // Number of inserted symbols
	Deletions     int // Number of deleted symbols
	Substitutions int // Number of replaced symbols
	Distance      int // Total edit distance (sum of the above)
}

// Report represents a complete comparison of two texts.
type Report struct {
	NameA       string      // Name of the source input
	NameB       string      // Name of the target input
	Granularity Granularity // Symbol unit used
	Changes     []Change    // Ordered changes, matches included
	Stats       Stats       // Statistics
	Identical   bool        // True when the texts are equal symbol-wise
}

// Summary returns a human-readable one-line summary of the report.
func (r *Report) Summary() string {
	if r.Identical {
		return "identical"
	}
	var parts []string
	if r.Stats.Insertions > 0 {
		parts = append(parts, fmt.Sprintf("+%d", r.Stats.Insertions))
	}
	if r.Stats.Deletions > 0 {
		parts = append(parts, fmt.Sprintf("-%d", r.Stats.Deletions))
	}
	if r.Stats.Substitutions > 0 {
		parts = append(parts, fmt.Sprintf("~%d", r.Stats.Substitutions))
	}
	parts = append(parts, fmt.Sprintf("distance %d", r.Stats.Distance))
	return strings.Join(parts, " ")
}

// =============================================================================
// COMPARISON
// =============================================================================

// Compare runs the edit-distance engine over textA and textB at the
// given granularity and returns the annotated report. The only error
// condition is an input pair too large for the engine's cost matrix.
func Compare(nameA, nameB, textA, textB string, g Granularity) (*Report, error) {
	a := splitSymbols(textA, g)
	b := splitSymbols(textB, g)

	script, err := edit.EditScript(a, b)
	if err != nil {
		return nil, fmt.Errorf("comparing %s and %s: %w", nameA, nameB, err)
	}

	report := &Report{
		NameA:       nameA,
		NameB:       nameB,
		Granularity: g,
		Changes:     make([]Change, 0, len(script)),
	}

	oldPos, newPos := 1, 1
	for _, op := range script {
		switch op.Kind {
		case edit.Match:
			report.Changes = append(report.Changes, Change{
				Type:   ChangeMatch,
				Old:    op.From,
				New:    op.To,
				OldPos: oldPos,
				NewPos: newPos,
			})
			oldPos++
			newPos++
		case edit.Insert:
			report.Changes = append(report.Changes, Change{
				Type:   ChangeInsert,
				New:    op.To,
				NewPos: newPos,
			})
			report.Stats.Insertions++
			newPos++
		case edit.Delete:
			report.Changes = append(report.Changes, Change{
				Type:   ChangeDelete,
				Old:    op.From,
				OldPos: oldPos,
			})
			report.Stats.Deletions++
			oldPos++
		case edit.Substitute:
			report.Changes = append(report.Changes, Change{
				Type:   ChangeSubstitute,
				Old:    op.From,
				New:    op.To,
				OldPos: oldPos,
				NewPos: newPos,
			})
			report.Stats.Substitutions++
			oldPos++
			newPos++
		}
	}

	report.Stats.Distance = script.Cost()
	report.Identical = report.Stats.Distance == 0

	return report, nil
}

// splitSymbols splits text into comparison symbols. Character mode uses
// runes so multi-byte UTF-8 never splits mid-character.
func splitSymbols(text string, g Granularity) []string {
	if g == GranularityLine {
		return splitLines(text)
	}
	runes := []rune(text)
	symbols := make([]string, len(runes))
	for i, r := range runes {
		symbols[i] = string(r)
	}
	return symbols
}

// splitLines splits content into lines, preserving interior empty lines.
// A single trailing newline does not produce a trailing empty symbol.
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
