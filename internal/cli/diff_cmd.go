// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff_cmd.go - The diff command: compare two files and report changes.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/levdiff/internal/config"
	"github.com/jeranaias/levdiff/internal/diff"
	"github.com/jeranaias/levdiff/internal/input"
	"github.com/jeranaias/levdiff/internal/render"
	"github.com/jeranaias/levdiff/internal/ui/viewer"
)

// diffOptions is the merged result of config file, environment, and
// command-line flags. Flags win.
type diffOptions struct {
	granularity diff.Granularity
	showMatches bool
	tui         bool
	maxBytes    int64
}

// resolveOptions loads the configuration and applies flag overrides.
func resolveOptions(args *Args) (*diffOptions, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &CommandError{Command: "config", Reason: "loading configuration", Err: err}
	}

	mode := cfg.Color
	if args.NoColor {
		mode = "never"
	}
	lipgloss.SetColorProfile(ColorProfileForMode(mode))

	gran := cfg.Granularity
	if args.Granularity != "" {
		gran = args.Granularity
	}
	g, err := diff.ParseGranularity(gran)
	if err != nil {
		return nil, &UsageError{Message: err.Error()}
	}

	return &diffOptions{
		granularity: g,
		showMatches: cfg.ShowMatches || args.All,
		tui:         cfg.UI.TUI || args.TUI,
		maxBytes:    cfg.MaxInputBytes(),
	}, nil
}

// validateFilePair checks the positional arguments of diff/distance.
func validateFilePair(args *Args) error {
	if len(args.Files) == 2 {
		return nil
	}

	// A lone argument is more often a mistyped command than a missing
	// file; offer a suggestion when one is close.
	if len(args.Files) == 1 {
		if hint := SuggestCommand(args.Files[0]); hint != "" {
			return &UsageError{
				Message: fmt.Sprintf("expected two files, got %q", args.Files[0]),
				Hint:    hint,
			}
		}
	}

	// Three positionals usually means a mistyped command word followed by
	// the two files, e.g. "levdiff distnce a.txt b.txt".
	if len(args.Files) > 2 {
		if hint := SuggestCommand(args.Files[0]); hint != "" {
			return &UsageError{
				Message: fmt.Sprintf("unknown command %q", args.Files[0]),
				Hint:    hint,
			}
		}
	}
	return &UsageError{Message: fmt.Sprintf("expected exactly two input files, got %d", len(args.Files))}
}

// compareFiles reads, decodes, and compares the two input files.
func compareFiles(args *Args, opts *diffOptions) (*diff.Report, string, string, error) {
	pathA, pathB := args.Files[0], args.Files[1]

	textA, encA, err := input.ReadFile(pathA, opts.maxBytes)
	if err != nil {
		return nil, "", "", err
	}
	textB, encB, err := input.ReadFile(pathB, opts.maxBytes)
	if err != nil {
		return nil, "", "", err
	}

	report, err := diff.Compare(pathA, pathB, textA, textB, opts.granularity)
	if err != nil {
		return nil, "", "", err
	}
	return report, encA, encB, nil
}

// HandleDiff implements the diff command.
func HandleDiff(args *Args) error {
	if err := validateFilePair(args); err != nil {
		return err
	}
	opts, err := resolveOptions(args)
	if err != nil {
		return err
	}

	if args.Watch {
		return watchAndRun(args.Files, func() error {
			return runDiffOnce(args, opts)
		})
	}
	return runDiffOnce(args, opts)
}

// runDiffOnce performs a single comparison and emits it in the selected
// output mode. Differing inputs are reported through ErrFilesDiffer so
// the process exits 1.
func runDiffOnce(args *Args, opts *diffOptions) error {
	report, encA, encB, err := compareFiles(args, opts)
	if err != nil {
		return err
	}

	switch {
	case args.Quiet:
		// Exit status only.
	case args.JSON:
		if err := PrintJSON("diff", reportToJSON(report, encA, encB, opts.showMatches)); err != nil {
			return err
		}
	case opts.tui:
		content := render.Render(report, render.Options{
			ShowMatches: opts.showMatches,
			Width:       GetTerminalWidth(),
		})
		if err := viewer.Run(report, content); err != nil {
			return &CommandError{Command: "diff", Reason: "interactive viewer", Err: err}
		}
	default:
		fmt.Print(render.Render(report, render.Options{
			ShowMatches: opts.showMatches,
			Width:       GetTerminalWidth(),
		}))
	}

	if !report.Identical {
		return ErrFilesDiffer
	}
	return nil
}
