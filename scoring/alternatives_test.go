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

package scoring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/homebench/voicebench/scoring"
)

func TestDecodeAlternatives_Nil(t *testing.T) {
	alts, err := scoring.DecodeAlternatives(nil)
	if err != nil {
		t.Fatalf("DecodeAlternatives(nil) error = %v", err)
	}
	if len(alts) != 0 {
		t.Errorf("expected no alternatives, got %d", len(alts))
	}
}

func TestDecodeAlternatives_JSONString(t *testing.T) {
	raw := `[
		[{"name": "HassTurnOn", "arguments": {"name": "Lamp"}}],
		{"tool_calls": [{"name": "HassTurnOff", "arguments": {}}], "quality": "optimal", "reason": "equally valid"}
	]`

	alts, err := scoring.DecodeAlternatives(raw)
	if err != nil {
		t.Fatalf("DecodeAlternatives() error = %v", err)
	}

	want := []scoring.Alternative{
		{
			ToolCalls: []scoring.ToolCall{{Name: "HassTurnOn", Arguments: map[string]any{"name": "Lamp"}}},
			Quality:   scoring.QualityAcceptable,
		},
		{
			ToolCalls: []scoring.ToolCall{{Name: "HassTurnOff", Arguments: map[string]any{}}},
			Quality:   scoring.QualityOptimal,
			Reason:    "equally valid",
		},
	}
	if diff := cmp.Diff(want, alts); diff != "" {
		t.Errorf("alternatives mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAlternatives_DecodedList(t *testing.T) {
	raw := []any{
		[]any{map[string]any{"name": "HassTurnOn", "arguments": map[string]any{"name": "Lamp"}}},
		map[string]any{
			"tool_calls": []any{map[string]any{"name": "HassTurnOff"}},
			"reason":     "device was already on",
		},
	}

	alts, err := scoring.DecodeAlternatives(raw)
	if err != nil {
		t.Fatalf("DecodeAlternatives() error = %v", err)
	}

	if len(alts) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(alts))
	}
	if alts[0].Quality != scoring.QualityAcceptable {
		t.Errorf("legacy form quality = %q, want %q", alts[0].Quality, scoring.QualityAcceptable)
	}
	if alts[1].Reason != "device was already on" {
		t.Errorf("reason = %q, want %q", alts[1].Reason, "device was already on")
	}
	if alts[1].Quality != scoring.QualityAcceptable {
		t.Errorf("record without quality = %q, want default %q", alts[1].Quality, scoring.QualityAcceptable)
	}
}

func TestDecodeAlternatives_MalformedJSON(t *testing.T) {
	if _, err := scoring.DecodeAlternatives(`{not json`); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestResolve_PrimaryPasses(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	primary := []scoring.ToolCall{call("HassTurnOn", map[string]any{"name": "Lamp"})}
	actual := []scoring.ToolCall{call("HassTurnOn", map[string]any{"name": "lamp"})}
	alts := []scoring.Alternative{
		{ToolCalls: []scoring.ToolCall{call("HassTurnOff", nil)}, Quality: scoring.QualityAcceptable},
	}

	res := e.Resolve(primary, alts, actual, "action_done")
	if res.Overall != scoring.Correct {
		t.Errorf("Overall = %v, want Correct", res.Overall)
	}
	if res.Quality != scoring.QualityOptimal {
		t.Errorf("Quality = %q, want %q", res.Quality, scoring.QualityOptimal)
	}
	if res.Reason != "" {
		t.Errorf("Reason = %q, want empty", res.Reason)
	}
}

func TestResolve_FirstPassingAlternativeAdopted(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	primary := []scoring.ToolCall{call("HassTurnOn", map[string]any{"name": "Ceiling Light"})}
	actual := []scoring.ToolCall{call("HassLightSet", map[string]any{"name": "Ceiling Light", "brightness": 100})}
	alts := []scoring.Alternative{
		{
			// Still fails: wrong tool.
			ToolCalls: []scoring.ToolCall{call("HassTurnOff", map[string]any{"name": "Ceiling Light"})},
			Quality:   scoring.QualityAcceptable,
			Reason:    "should not be adopted",
		},
		{
			ToolCalls: []scoring.ToolCall{call("HassLightSet", map[string]any{"name": "Ceiling Light", "brightness": 100})},
			Quality:   scoring.QualityAcceptable,
			Reason:    "full brightness equals on",
		},
	}

	res := e.Resolve(primary, alts, actual, "action_done")
	if res.Overall != scoring.Correct {
		t.Fatalf("Overall = %v, want Correct", res.Overall)
	}
	if res.Quality != scoring.QualityAcceptable {
		t.Errorf("Quality = %q, want %q", res.Quality, scoring.QualityAcceptable)
	}
	if res.Reason != "full brightness equals on" {
		t.Errorf("Reason = %q: first failing alternative must be discarded, not merged", res.Reason)
	}
	if got := res.Results[scoring.DimensionToolName]; got != scoring.Correct {
		t.Errorf("adopted results tool_name = %v, want Correct", got)
	}
}

func TestResolve_NoAlternativePasses(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	primary := []scoring.ToolCall{call("HassTurnOn", map[string]any{"name": "Lamp"})}
	actual := []scoring.ToolCall{call("HassNevermind", nil)}
	alts := []scoring.Alternative{
		{ToolCalls: []scoring.ToolCall{call("HassTurnOff", nil)}, Quality: scoring.QualityAcceptable},
	}

	res := e.Resolve(primary, alts, actual, "action_done")
	if res.Overall != scoring.Incorrect {
		t.Errorf("Overall = %v, want Incorrect", res.Overall)
	}
	// The primary's failing results stand, quality keeps its default.
	if res.Quality != scoring.QualityOptimal {
		t.Errorf("Quality = %q, want %q", res.Quality, scoring.QualityOptimal)
	}
	if got := res.Results[scoring.DimensionToolName]; got != scoring.Incorrect {
		t.Errorf("tool_name = %v, want the primary's Incorrect", got)
	}
}
