// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Terminal rendering of change reports.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/levdiff/internal/diff"
	"github.com/jeranaias/levdiff/internal/util"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// InsertStyle colors inserted symbols green
	InsertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	// DeleteStyle colors deleted symbols red
	DeleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// SubstituteStyle colors replaced symbols yellow
	SubstituteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// MatchStyle dims unchanged symbols
	MatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	// PosStyle dims the position column
	PosStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// HeaderStyle marks the file-pair header
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	// IdenticalStyle announces equal inputs
	IdenticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls report rendering.
type Options struct {
	// ShowMatches includes unchanged symbols in the listing
	ShowMatches bool
	// Width bounds each rendered line; 0 uses the default of 80
	Width int
}

// DefaultWidth is the fallback render width when none is supplied.
const DefaultWidth = 80

// =============================================================================
// RENDERING
// =============================================================================

// Render formats a complete report: header, change listing, summary.
func Render(r *diff.Report, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var sb strings.Builder

	header := fmt.Sprintf("%s -> %s (%s)", r.NameA, r.NameB, r.Granularity)
	sb.WriteString(HeaderStyle.Render(header))
	sb.WriteString("\n")

	if r.Identical {
		sb.WriteString(IdenticalStyle.Render("Files are identical ✓"))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, c := range r.Changes {
		if c.Type == diff.ChangeMatch && !opts.ShowMatches {
			continue
		}
		sb.WriteString(RenderChange(c, r.Granularity, width))
		sb.WriteString("\n")
	}

	sb.WriteString(Summary(r))
	sb.WriteString("\n")

	return sb.String()
}

// RenderChange formats a single change as one output line: a position
// column (old and new, blank where not applicable), the change marker,
// and the affected symbol(s).
func RenderChange(c diff.Change, g diff.Granularity, width int) string {
	pos := PosStyle.Render(fmt.Sprintf("%4s %4s", posLabel(c.OldPos), posLabel(c.NewPos)))

	// Symbol budget: whatever the position column and marker leave over.
	budget := width - runewidth.StringWidth("0000 0000  X ")
	if budget < 8 {
		budget = 8
	}

	var body string
	switch c.Type {
	case diff.ChangeInsert:
		body = InsertStyle.Render("+ " + symbolLabel(c.New, g, budget))
	case diff.ChangeDelete:
		body = DeleteStyle.Render("- " + symbolLabel(c.Old, g, budget))
	case diff.ChangeSubstitute:
		half := budget / 2
		body = SubstituteStyle.Render("~ " + symbolLabel(c.Old, g, half) + " -> " + symbolLabel(c.New, g, half))
	default:
		body = MatchStyle.Render("  " + symbolLabel(c.Old, g, budget))
	}

	return pos + "  " + body
}

// Summary formats the closing statistics line.
func Summary(r *diff.Report) string {
	parts := []string{
		InsertStyle.Render(fmt.Sprintf("+%d", r.Stats.Insertions)),
		DeleteStyle.Render(fmt.Sprintf("-%d", r.Stats.Deletions)),
		SubstituteStyle.Render(fmt.Sprintf("~%d", r.Stats.Substitutions)),
		PosStyle.Render(fmt.Sprintf("distance %d", r.Stats.Distance)),
	}
	return strings.Join(parts, " ")
}

// =============================================================================
// HELPERS
// =============================================================================

// posLabel renders a 1-based position, or blank for "not present".
func posLabel(pos int) string {
	if pos == 0 {
		return ""
	}
	return strconv.Itoa(pos)
}

// symbolLabel renders a symbol for display. Characters are quoted so
// whitespace and control characters stay visible; lines are shown as-is,
// truncated to the budget.
func symbolLabel(sym string, g diff.Granularity, budget int) string {
	if g == diff.GranularityChar {
		runes := []rune(sym)
		if len(runes) == 1 {
			return strconv.QuoteRune(runes[0])
		}
		return strconv.Quote(sym)
	}
	return util.TruncateRunes(sym, budget)
}
