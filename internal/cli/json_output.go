// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - JSON output support for scripting and CI integration.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/levdiff/internal/diff"
)

// JSONResponse is the standardized response format for all CLI commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// PrintJSON writes a successful JSON response to stdout.
func PrintJSON(command string, data interface{}) error {
	resp := &JSONResponse{
		Success:   true,
		Data:      data,
		Error:     nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encoding JSON response: %w", err)
	}
	return nil
}

// =============================================================================
// REPORT DTO
// =============================================================================

// jsonChange is the wire form of a single change.
type jsonChange struct {
	Type   string `json:"type"`
	Old    string `json:"old,omitempty"`
	New    string `json:"new,omitempty"`
	OldPos int    `json:"old_pos,omitempty"`
	NewPos int    `json:"new_pos,omitempty"`
}

// jsonStats is the wire form of comparison statistics.
type jsonStats struct {
	Insertions    int `json:"insertions"`
	Deletions     int `json:"deletions"`
	Substitutions int `json:"substitutions"`
	Distance      int `json:"distance"`
}

// jsonReport is the wire form of a complete report.
type jsonReport struct {
	FileA       string       `json:"file_a"`
	FileB       string       `json:"file_b"`
	EncodingA   string       `json:"encoding_a,omitempty"`
	EncodingB   string       `json:"encoding_b,omitempty"`
	Granularity string       `json:"granularity"`
	Identical   bool         `json:"identical"`
	Stats       jsonStats    `json:"stats"`
	Changes     []jsonChange `json:"changes"`
}

// reportToJSON converts a report to its wire form. Matches are included
// only when showMatches is set, mirroring the text renderer.
func reportToJSON(r *diff.Report, encA, encB string, showMatches bool) jsonReport {
	out := jsonReport{
		FileA:       r.NameA,
		FileB:       r.NameB,
		EncodingA:   encA,
		EncodingB:   encB,
		Granularity: r.Granularity.String(),
		Identical:   r.Identical,
		Stats: jsonStats{
			Insertions:    r.Stats.Insertions,
			Deletions:     r.Stats.Deletions,
			Substitutions: r.Stats.Substitutions,
			Distance:      r.Stats.Distance,
		},
		Changes: make([]jsonChange, 0, len(r.Changes)),
	}

	for _, c := range r.Changes {
		if c.Type == diff.ChangeMatch && !showMatches {
			continue
		}
		out.Changes = append(out.Changes, jsonChange{
			Type:   c.Type.String(),
			Old:    c.Old,
			New:    c.New,
			OldPos: c.OldPos,
			NewPos: c.NewPos,
		})
	}

	return out
}
