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

var testConfig = scoring.Config{
	ValidTools: []string{
		"HassTurnOn", "HassTurnOff", "HassLightSet", "HassSetPosition",
		"HassGetState", "HassClimateSetTemperature", "HassClimateGetTemperature",
		"HassGetCurrentTime", "HassGetCurrentDate", "HassGetWeather", "HassNevermind",
	},
	QueryTools: []string{
		"HassGetState", "HassClimateGetTemperature", "HassGetWeather",
		"HassGetCurrentTime", "HassGetCurrentDate",
	},
}

func call(name string, args map[string]any) scoring.ToolCall {
	return scoring.ToolCall{Name: name, Arguments: args}
}

func TestEvaluate_ResponseType(t *testing.T) {
	tests := []struct {
		name         string
		responseType string
		actual       []scoring.ToolCall
		want         scoring.Verdict
	}{
		{"action done with calls", "action_done", []scoring.ToolCall{call("HassTurnOn", nil)}, scoring.Correct},
		{"action done without calls", "action_done", nil, scoring.Incorrect},
		{"query with query tool", "query_response", []scoring.ToolCall{call("HassGetState", nil)}, scoring.Correct},
		{"query with time tool", "query_response", []scoring.ToolCall{call("HassGetCurrentTime", nil)}, scoring.Correct},
		{"query with action tool only", "query_response", []scoring.ToolCall{call("HassTurnOn", nil)}, scoring.Incorrect},
		{"text response without calls", "text_response", nil, scoring.Correct},
		{"text response with calls", "text_response", []scoring.ToolCall{call("HassTurnOn", nil)}, scoring.Incorrect},
		{"error without calls", "error", nil, scoring.Correct},
		{"error with calls", "error", []scoring.ToolCall{call("HassTurnOn", nil)}, scoring.Incorrect},
		{"clarification without calls", "clarification", nil, scoring.Correct},
		{"unknown type", "something_else", nil, scoring.NotApplicable},
		{"empty type", "", nil, scoring.NotApplicable},
	}

	e := scoring.NewEvaluator(testConfig)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := e.Evaluate(nil, tt.actual, tt.responseType)
			if got := results[scoring.DimensionResponseType]; got != tt.want {
				t.Errorf("response_type = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_FormatValid(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	tests := []struct {
		name   string
		actual []scoring.ToolCall
		want   scoring.Verdict
	}{
		{"no calls", nil, scoring.NotApplicable},
		{"well formed", []scoring.ToolCall{call("HassTurnOn", map[string]any{"name": "Light"})}, scoring.Correct},
		{"empty name", []scoring.ToolCall{call("", nil)}, scoring.Incorrect},
		{"raw sentinel", []scoring.ToolCall{call("HassTurnOn", map[string]any{"_raw": "{bad json"})}, scoring.Incorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := e.Evaluate(nil, tt.actual, "action_done")
			if got := results[scoring.DimensionFormatValid]; got != tt.want {
				t.Errorf("format_valid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_CallCount(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	one := []scoring.ToolCall{call("HassTurnOn", nil)}

	results := e.Evaluate(one, one, "action_done")
	if got := results[scoring.DimensionCallCount]; got != scoring.Correct {
		t.Errorf("equal lengths: call_count = %v, want Correct", got)
	}

	results = e.Evaluate(one, nil, "action_done")
	if got := results[scoring.DimensionCallCount]; got != scoring.Incorrect {
		t.Errorf("different lengths: call_count = %v, want Incorrect", got)
	}

	// Zero expected and zero actual is a meaningful match, not a gap.
	results = e.Evaluate(nil, nil, "text_response")
	if got := results[scoring.DimensionCallCount]; got != scoring.Correct {
		t.Errorf("both empty: call_count = %v, want Correct", got)
	}
}

func TestEvaluate_ToolNames(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	tests := []struct {
		name     string
		expected []scoring.ToolCall
		actual   []scoring.ToolCall
		want     scoring.Verdict
	}{
		{
			"single match",
			[]scoring.ToolCall{call("HassTurnOn", nil)},
			[]scoring.ToolCall{call("HassTurnOn", nil)},
			scoring.Correct,
		},
		{
			"single mismatch",
			[]scoring.ToolCall{call("HassTurnOn", nil)},
			[]scoring.ToolCall{call("HassTurnOff", nil)},
			scoring.Incorrect,
		},
		{
			"permutation matches",
			[]scoring.ToolCall{call("HassTurnOff", nil), call("HassTurnOn", nil)},
			[]scoring.ToolCall{call("HassTurnOn", nil), call("HassTurnOff", nil)},
			scoring.Correct,
		},
		{
			"duplicates matter",
			[]scoring.ToolCall{call("HassTurnOn", nil), call("HassTurnOn", nil)},
			[]scoring.ToolCall{call("HassTurnOn", nil), call("HassTurnOff", nil)},
			scoring.Incorrect,
		},
		{
			"no expected is not applicable",
			nil,
			nil,
			scoring.NotApplicable,
		},
		{
			"expected but no actual",
			[]scoring.ToolCall{call("HassTurnOn", nil)},
			nil,
			scoring.Incorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := e.Evaluate(tt.expected, tt.actual, "action_done")
			if got := results[scoring.DimensionToolName]; got != tt.want {
				t.Errorf("tool_name = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Arguments_MultiCallPermutation(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	expected := []scoring.ToolCall{
		call("HassTurnOff", map[string]any{"domain": []any{"light"}}),
		call("HassTurnOn", map[string]any{"name": "Front Door Lock", "domain": []any{"lock"}}),
	}
	actual := []scoring.ToolCall{
		call("HassTurnOn", map[string]any{"name": "front door lock", "domain": []any{"lock"}}),
		call("HassTurnOff", map[string]any{"domain": []any{"light"}}),
	}

	results := e.Evaluate(expected, actual, "action_done")
	if got := results[scoring.DimensionArguments]; got != scoring.Correct {
		t.Errorf("args = %v, want Correct", got)
	}
	if got := results[scoring.DimensionToolName]; got != scoring.Correct {
		t.Errorf("tool_name = %v, want Correct", got)
	}
}

func TestEvaluate_Arguments_EachActualClaimedOnce(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	// Two identical expected calls cannot both be satisfied by the same
	// single actual partner.
	expected := []scoring.ToolCall{
		call("HassTurnOn", map[string]any{"name": "Lamp"}),
		call("HassTurnOn", map[string]any{"name": "Lamp"}),
	}
	actual := []scoring.ToolCall{
		call("HassTurnOn", map[string]any{"name": "Lamp"}),
		call("HassTurnOn", map[string]any{"name": "Other"}),
	}

	results := e.Evaluate(expected, actual, "action_done")
	if got := results[scoring.DimensionArguments]; got != scoring.Incorrect {
		t.Errorf("args = %v, want Incorrect", got)
	}
}

func TestEvaluate_Arguments_LengthMismatch(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	expected := []scoring.ToolCall{call("HassTurnOn", nil), call("HassTurnOff", nil)}
	actual := []scoring.ToolCall{call("HassTurnOn", nil)}

	results := e.Evaluate(expected, actual, "action_done")
	if got := results[scoring.DimensionArguments]; got != scoring.Incorrect {
		t.Errorf("args = %v, want Incorrect", got)
	}
}

func TestEvaluate_NoHallucinatedTools(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)

	tests := []struct {
		name   string
		actual []scoring.ToolCall
		want   scoring.Verdict
	}{
		{"no calls", nil, scoring.NotApplicable},
		{"all valid", []scoring.ToolCall{call("HassTurnOn", nil), call("HassTurnOff", nil)}, scoring.Correct},
		{"made up tool", []scoring.ToolCall{call("MadeUpTool", map[string]any{"name": "Light"})}, scoring.Incorrect},
		{"valid then hallucinated", []scoring.ToolCall{call("HassTurnOn", nil), call("HassExplode", nil)}, scoring.Incorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := e.Evaluate(nil, tt.actual, "action_done")
			if got := results[scoring.DimensionNoHallucinatedTools]; got != tt.want {
				t.Errorf("no_hallucinated_tools = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResults_Overall(t *testing.T) {
	tests := []struct {
		name    string
		results scoring.Results
		want    scoring.Verdict
	}{
		{
			"all correct",
			scoring.Results{scoring.DimensionCallCount: scoring.Correct},
			scoring.Correct,
		},
		{
			"one incorrect",
			scoring.Results{
				scoring.DimensionCallCount: scoring.Correct,
				scoring.DimensionToolName:  scoring.Incorrect,
			},
			scoring.Incorrect,
		},
		{
			"not applicable excluded",
			scoring.Results{
				scoring.DimensionCallCount: scoring.Correct,
				scoring.DimensionToolName:  scoring.NotApplicable,
			},
			scoring.Correct,
		},
		{
			"vacuously correct",
			scoring.Results{scoring.DimensionToolName: scoring.NotApplicable},
			scoring.Correct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.results.Overall(); got != tt.want {
				t.Errorf("Overall() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_CoversEveryDimension(t *testing.T) {
	e := scoring.NewEvaluator(testConfig)
	results := e.Evaluate(nil, nil, "text_response")

	got := make([]scoring.Dimension, 0, len(results))
	for _, dim := range scoring.Dimensions() {
		if _, ok := results[dim]; ok {
			got = append(got, dim)
		}
	}
	if diff := cmp.Diff(scoring.Dimensions(), got); diff != "" {
		t.Errorf("Evaluate() dimension coverage mismatch (-want +got):\n%s", diff)
	}
}
