// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// op.go - Edit operations and scripts produced by the engine.
package edit

import "fmt"

// =============================================================================
// OPERATION KIND
// =============================================================================

// Kind identifies the type of a single edit operation.
type Kind int

const (
	// Match means the symbol is unchanged (zero cost)
	Match Kind = iota
	// Insert adds a symbol from the target sequence
	Insert
	// Delete removes a symbol from the source sequence
	Delete
	// Substitute replaces a source symbol with a target symbol
	Substitute
)

// String returns the string representation of an operation kind.
func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Substitute:
		return "substitute"
	default:
		return "unknown"
	}
}

// Marker returns the single-character marker for this kind, used by
// renderers as a diff-style line prefix.
func (k Kind) Marker() string {
	switch k {
	case Match:
		return " "
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Substitute:
		return "~"
	default:
		return "?"
	}
}

// =============================================================================
// OPERATION AND SCRIPT
// =============================================================================

// Op is one step of a recovered transformation path.
//
// Field validity depends on Kind:
//   - Match:      From and To hold the (equal) symbol
//   - Insert:     To holds the inserted symbol
//   - Delete:     From holds the deleted symbol
//   - Substitute: From holds the replaced symbol, To its replacement
type Op[S comparable] struct {
	Kind Kind
	From S
	To   S
}

// Script is an ordered sequence of edit operations, read in transform
// order from the start of both sequences to the end.
type Script[S comparable] []Op[S]

// Cost returns the number of non-Match operations in the script. For a
// script produced by EditScript(a, b) this equals Distance(a, b).
func (s Script[S]) Cost() int {
	cost := 0
	for _, op := range s {
		if op.Kind != Match {
			cost++
		}
	}
	return cost
}

// Apply replays the script against source sequence a and returns the
// transformed sequence. It validates that the script's source symbols
// line up with a, so a script produced for one input cannot silently be
// applied to another.
func Apply[S comparable](a []S, s Script[S]) ([]S, error) {
	out := make([]S, 0, len(a))
	i := 0

	for n, op := range s {
		switch op.Kind {
		case Match:
			if i >= len(a) || a[i] != op.From {
				return nil, fmt.Errorf("apply: op %d: match does not line up with source at %d", n, i)
			}
			out = append(out, a[i])
			i++
		case Insert:
			out = append(out, op.To)
		case Delete:
			if i >= len(a) || a[i] != op.From {
				return nil, fmt.Errorf("apply: op %d: delete does not line up with source at %d", n, i)
			}
			i++
		case Substitute:
			if i >= len(a) || a[i] != op.From {
				return nil, fmt.Errorf("apply: op %d: substitute does not line up with source at %d", n, i)
			}
			out = append(out, op.To)
			i++
		default:
			return nil, fmt.Errorf("apply: op %d: unknown kind %d", n, op.Kind)
		}
	}

	if i != len(a) {
		return nil, fmt.Errorf("apply: script consumed %d of %d source symbols", i, len(a))
	}

	return out, nil
}
