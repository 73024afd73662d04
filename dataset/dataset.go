// Copyright 2025 The Voicebench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset loads voice benchmark test cases from NDJSON files.
//
// Each line is one JSON object with the required fields id, utterance,
// expected_tool_calls, expected_response_type, inventory_tier, and
// inventory_file, plus optional alternative_expected_tool_calls and a
// free-form metadata mapping. Blank lines are skipped.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Case is a single benchmark test case.
type Case struct {
	// ID uniquely identifies the case within its file.
	ID string `json:"id"`

	// Utterance is the natural-language input given to the assistant.
	Utterance string `json:"utterance"`

	// Target is the JSON-encoded primary expected call array, kept in
	// its raw form so the scoring engine owns decoding (and decode
	// failures score rather than abort).
	Target string `json:"target"`

	// ResponseType is the expected response kind for the sample.
	ResponseType string `json:"expected_response_type"`

	// InventoryTier names the entity-inventory size class of the case.
	InventoryTier string `json:"inventory_tier"`

	// InventoryFile is the path of the inventory YAML, relative to the
	// benchmark base directory.
	InventoryFile string `json:"inventory_file"`

	// Alternatives is the raw alternative_expected_tool_calls value, if
	// any. Decoded by the scoring engine.
	Alternatives json.RawMessage `json:"alternative_expected_tool_calls,omitempty"`

	// Metadata carries any extra per-case annotations from the file.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Set is an ordered collection of test cases loaded from one file.
type Set struct {
	Name  string
	Cases []Case
}

// rawCase distinguishes absent fields (nil) from present-but-empty ones.
type rawCase struct {
	ID            *string         `json:"id"`
	Utterance     *string         `json:"utterance"`
	Target        json.RawMessage `json:"expected_tool_calls"`
	ResponseType  *string         `json:"expected_response_type"`
	InventoryTier *string         `json:"inventory_tier"`
	InventoryFile *string         `json:"inventory_file"`
	Alternatives  json.RawMessage `json:"alternative_expected_tool_calls"`
	Metadata      map[string]any  `json:"metadata"`
}

func (r *rawCase) missingFields() []string {
	var missing []string
	if r.ID == nil {
		missing = append(missing, "id")
	}
	if r.Utterance == nil {
		missing = append(missing, "utterance")
	}
	if r.Target == nil {
		missing = append(missing, "expected_tool_calls")
	}
	if r.ResponseType == nil {
		missing = append(missing, "expected_response_type")
	}
	if r.InventoryTier == nil {
		missing = append(missing, "inventory_tier")
	}
	if r.InventoryFile == nil {
		missing = append(missing, "inventory_file")
	}
	sort.Strings(missing)
	return missing
}

// Load reads every test case from an NDJSON file.
func Load(path string) (*Set, error) {
	return LoadTier(path, "")
}

// LoadTier reads test cases from an NDJSON file, keeping only cases
// whose inventory_tier matches tier when tier is non-empty. An empty
// result set is an error so a typo'd filter cannot silently produce a
// perfect benchmark run.
func LoadTier(path, tier string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open test case file: %w", err)
	}
	defer f.Close()

	var cases []Case
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw rawCase
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, fmt.Errorf("dataset: invalid JSON on line %d of %s: %w", lineNum, path, err)
		}
		if missing := raw.missingFields(); len(missing) > 0 {
			return nil, fmt.Errorf("dataset: missing fields %v on line %d of %s", missing, lineNum, path)
		}

		if tier != "" && *raw.InventoryTier != tier {
			continue
		}

		cases = append(cases, Case{
			ID:            *raw.ID,
			Utterance:     *raw.Utterance,
			Target:        string(raw.Target),
			ResponseType:  *raw.ResponseType,
			InventoryTier: *raw.InventoryTier,
			InventoryFile: *raw.InventoryFile,
			Alternatives:  raw.Alternatives,
			Metadata:      raw.Metadata,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	if len(cases) == 0 {
		if tier != "" {
			return nil, fmt.Errorf("dataset: no test cases loaded from %s (filter: tier=%s)", path, tier)
		}
		return nil, fmt.Errorf("dataset: no test cases loaded from %s", path)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Set{Name: "ha-voice-" + stem, Cases: cases}, nil
}
