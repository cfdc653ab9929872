// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render formats change reports for the terminal.
package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/levdiff/internal/diff"
)

func init() {
	// Plain output so assertions see no ANSI escape sequences.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func mustCompare(t *testing.T, a, b string, g diff.Granularity) *diff.Report {
	t.Helper()
	r, err := diff.Compare("a.txt", "b.txt", a, b, g)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	return r
}

func TestRender_IdenticalBanner(t *testing.T) {
	r := mustCompare(t, "same", "same", diff.GranularityChar)

	out := Render(r, Options{})
	if !strings.Contains(out, "Files are identical") {
		t.Errorf("Expected identical banner, got:\n%s", out)
	}
	if strings.Contains(out, "distance") {
		t.Errorf("Identical output should not include a summary, got:\n%s", out)
	}
}

func TestRender_Markers(t *testing.T) {
	r := mustCompare(t, "abc", "axcd", diff.GranularityChar)

	out := Render(r, Options{})
	if !strings.Contains(out, "~ 'b' -> 'x'") {
		t.Errorf("Expected substitution line, got:\n%s", out)
	}
	if !strings.Contains(out, "+ 'd'") {
		t.Errorf("Expected insertion line, got:\n%s", out)
	}
	if !strings.Contains(out, "distance 2") {
		t.Errorf("Expected summary with distance 2, got:\n%s", out)
	}
}

func TestRender_MatchesHiddenByDefault(t *testing.T) {
	r := mustCompare(t, "abc", "abd", diff.GranularityChar)

	out := Render(r, Options{})
	if strings.Contains(out, "'a'") {
		t.Errorf("Matches should be hidden by default, got:\n%s", out)
	}

	out = Render(r, Options{ShowMatches: true})
	if !strings.Contains(out, "'a'") {
		t.Errorf("Expected matches with ShowMatches, got:\n%s", out)
	}
}

func TestRender_LineGranularity(t *testing.T) {
	r := mustCompare(t, "one\ntwo\n", "one\nthree\n", diff.GranularityLine)

	out := Render(r, Options{})
	if !strings.Contains(out, "~ two -> three") {
		t.Errorf("Expected line substitution, got:\n%s", out)
	}
}

func TestRender_Header(t *testing.T) {
	r := mustCompare(t, "a", "b", diff.GranularityChar)

	out := Render(r, Options{})
	if !strings.Contains(out, "a.txt -> b.txt (char)") {
		t.Errorf("Expected header with file names and granularity, got:\n%s", out)
	}
}

func TestRenderChange_QuotesControlCharacters(t *testing.T) {
	c := diff.Change{Type: diff.ChangeInsert, New: "\n", NewPos: 3}

	out := RenderChange(c, diff.GranularityChar, 80)
	if !strings.Contains(out, `'\n'`) {
		t.Errorf("Expected quoted newline, got: %q", out)
	}
}

func TestRenderChange_TruncatesLongLines(t *testing.T) {
	long := strings.Repeat("x", 300)
	c := diff.Change{Type: diff.ChangeDelete, Old: long, OldPos: 1}

	out := RenderChange(c, diff.GranularityLine, 80)
	if len(out) >= 300 {
		t.Errorf("Expected truncated line, got %d chars", len(out))
	}
	if !strings.Contains(out, "...") {
		t.Errorf("Expected ellipsis in truncated line, got: %q", out)
	}
}
