// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestGetTerminalSize_AlwaysUsable(t *testing.T) {
	w, h := GetTerminalSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetTerminalSize() = %dx%d, want positive fallback dimensions", w, h)
	}
}

func TestGetTerminalWidth_Clamped(t *testing.T) {
	if w := GetTerminalWidth(); w < MinTerminalWidth {
		t.Errorf("GetTerminalWidth() = %d, want >= %d", w, MinTerminalWidth)
	}
}

func TestForceColorsEnabled(t *testing.T) {
	ForceColorsEnabled(false)
	if ColorsEnabled() {
		t.Error("ColorsEnabled() should be false after ForceColorsEnabled(false)")
	}
	if GetColorProfile() != termenv.Ascii {
		t.Error("GetColorProfile() should be Ascii with colors forced off")
	}

	ForceColorsEnabled(true)
	if !ColorsEnabled() {
		t.Error("ColorsEnabled() should be true after ForceColorsEnabled(true)")
	}
}

func TestColorProfileForMode(t *testing.T) {
	if p := ColorProfileForMode("never"); p != termenv.Ascii {
		t.Errorf("ColorProfileForMode(never) = %v, want Ascii", p)
	}
	if p := ColorProfileForMode("always"); p == termenv.Ascii {
		t.Error("ColorProfileForMode(always) should never be Ascii")
	}
}
