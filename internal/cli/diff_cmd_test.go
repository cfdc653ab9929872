// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LEVDIFF_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveOptions_TUIDefaultFromConfig(t *testing.T) {
	writeConfig(t, "[ui]\ntui = true\n")

	opts, err := resolveOptions(&Args{})
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if !opts.tui {
		t.Error("ui.tui = true in config should enable the viewer")
	}
}

func TestResolveOptions_TUIFlagWithoutConfig(t *testing.T) {
	t.Setenv("LEVDIFF_CONFIG_DIR", t.TempDir())

	opts, err := resolveOptions(&Args{})
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if opts.tui {
		t.Error("viewer should be off by default")
	}

	opts, err = resolveOptions(&Args{TUI: true})
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if !opts.tui {
		t.Error("--tui should enable the viewer")
	}
}

func TestResolveOptions_FlagOverridesGranularity(t *testing.T) {
	writeConfig(t, "granularity = \"line\"\n")

	opts, err := resolveOptions(&Args{})
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if opts.granularity.String() != "line" {
		t.Errorf("granularity = %v, want line from config", opts.granularity)
	}

	opts, err = resolveOptions(&Args{Granularity: "char"})
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if opts.granularity.String() != "char" {
		t.Errorf("granularity = %v, want char from flag", opts.granularity)
	}
}

func TestValidateFilePair(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		wantErr  bool
		wantHint string
	}{
		{"two files ok", []string{"a.txt", "b.txt"}, false, ""},
		{"no files", nil, true, ""},
		{"lone typo suggests command", []string{"distnce"}, true, "distance"},
		{"lone file no hint", []string{"notes-2024.txt"}, true, ""},
		{"typo before files suggests command", []string{"distnce", "a.txt", "b.txt"}, true, "distance"},
		{"typo before files diff", []string{"dfif", "a.txt", "b.txt"}, true, "diff"},
		{"three real files no hint", []string{"notes-2024.txt", "a.txt", "b.txt"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFilePair(&Args{Files: tt.files})
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("validateFilePair() error = %v, want nil", err)
				}
				return
			}

			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("validateFilePair() error = %v, want *UsageError", err)
			}
			if usageErr.Hint != tt.wantHint {
				t.Errorf("Hint = %q, want %q", usageErr.Hint, tt.wantHint)
			}
		})
	}
}

// A mistyped command word followed by two files routes to implicit diff;
// the validator is what surfaces the suggestion.
func TestValidateFilePair_TypoRoutedThroughImplicitDiff(t *testing.T) {
	cmd, args := ParseArgs([]string{"distnce", "a.txt", "b.txt"})
	if cmd != CmdDiff {
		t.Fatalf("command = %v, want CmdDiff", cmd)
	}

	err := validateFilePair(args)
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("validateFilePair() error = %v, want *UsageError", err)
	}
	if usageErr.Hint != "distance" {
		t.Errorf("Hint = %q, want distance", usageErr.Hint)
	}
}
