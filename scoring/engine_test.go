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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/homebench/voicebench/scoring"
)

func TestEngineScore_CaseInsensitiveMatch(t *testing.T) {
	engine := scoring.NewEngine(testConfig)

	target := `[{"name": "HassTurnOn", "arguments": {"name": "Kitchen Light"}}]`
	actual := []scoring.ToolCall{call("HassTurnOn", map[string]any{"name": "kitchen light"})}

	score := engine.Score(target, actual, "action_done", nil)
	if score.Overall != scoring.Correct {
		t.Errorf("Overall = %v, want Correct\n%s", score.Overall, score.Explanation)
	}
	if diff := cmp.Diff(actual, score.Actual); diff != "" {
		t.Errorf("Actual mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineScore_UnexpectedCall(t *testing.T) {
	engine := scoring.NewEngine(testConfig)

	score := engine.Score(`[]`, []scoring.ToolCall{call("HassTurnOn", nil)}, "text_response", nil)
	if score.Overall != scoring.Incorrect {
		t.Errorf("Overall = %v, want Incorrect", score.Overall)
	}
	if got := score.Results[scoring.DimensionResponseType]; got != scoring.Incorrect {
		t.Errorf("response_type = %v, want Incorrect", got)
	}
}

func TestEngineScore_EmptyExpectedEmptyActual(t *testing.T) {
	engine := scoring.NewEngine(testConfig)

	score := engine.Score(`[]`, nil, "clarification", nil)
	if score.Overall != scoring.Correct {
		t.Errorf("Overall = %v, want Correct\n%s", score.Overall, score.Explanation)
	}
	if score.Actual == nil || len(score.Actual) != 0 {
		t.Errorf("Actual = %#v, want empty non-nil list", score.Actual)
	}
}

func TestEngineScore_MalformedTarget(t *testing.T) {
	engine := scoring.NewEngine(testConfig)

	for _, target := range []string{"", "not json", `{"name": "HassTurnOn"}`, `42`} {
		score := engine.Score(target, nil, "action_done", nil)
		if score.Overall != scoring.Incorrect {
			t.Errorf("target %q: Overall = %v, want Incorrect", target, score.Overall)
		}
		if !strings.Contains(score.Explanation, "Scoring error") {
			t.Errorf("target %q: Explanation = %q, want diagnostic", target, score.Explanation)
		}
		if score.Actual == nil || len(score.Actual) != 0 {
			t.Errorf("target %q: Actual = %#v, want empty non-nil list", target, score.Actual)
		}
	}
}

func TestEngineScore_AlternativeFallback(t *testing.T) {
	engine := scoring.NewEngine(testConfig)

	target := `[{"name": "HassTurnOn", "arguments": {"name": "Thermostat"}}]`
	actual := []scoring.ToolCall{
		call("HassClimateSetTemperature", map[string]any{"name": "Thermostat", "temperature": 21.5}),
	}
	alternatives := `[
		[{"name": "HassTurnOff", "arguments": {}}],
		{"tool_calls": [{"name": "HassClimateSetTemperature", "arguments": {"name": "Thermostat", "temperature": 21.5}}],
		 "quality": "acceptable", "reason": "setting a target temperature implies heating on"}
	]`

	score := engine.Score(target, actual, "action_done", alternatives)
	if score.Overall != scoring.Correct {
		t.Fatalf("Overall = %v, want Correct\n%s", score.Overall, score.Explanation)
	}
	if score.Quality != scoring.QualityAcceptable {
		t.Errorf("Quality = %q, want acceptable", score.Quality)
	}
	if score.Reason == "" {
		t.Error("Reason should come from the adopted alternative")
	}
	if !strings.Contains(score.Explanation, "MATCH_REASON: setting a target temperature") {
		t.Errorf("Explanation missing reason line:\n%s", score.Explanation)
	}
}

func TestEngineScore_UndecodableAlternativesIgnored(t *testing.T) {
	engine := scoring.NewEngine(testConfig)

	target := `[{"name": "HassTurnOn", "arguments": {}}]`
	actual := []scoring.ToolCall{call("HassTurnOff", nil)}

	score := engine.Score(target, actual, "action_done", `{broken`)
	if score.Overall != scoring.Incorrect {
		t.Errorf("Overall = %v, want the primary's Incorrect", score.Overall)
	}
}

func TestEngineScore_NumericToleranceEndToEnd(t *testing.T) {
	engine := scoring.NewEngine(testConfig)

	target := `[{"name": "HassClimateSetTemperature", "arguments": {"temperature": 21}}]`
	actual := []scoring.ToolCall{
		call("HassClimateSetTemperature", map[string]any{"temperature": 21.005}),
	}

	score := engine.Score(target, actual, "action_done", nil)
	if score.Overall != scoring.Correct {
		t.Errorf("Overall = %v, want Correct (0.005 within tolerance)\n%s", score.Overall, score.Explanation)
	}
}

func TestEngineScore_DeterministicExplanation(t *testing.T) {
	engine := scoring.NewEngine(testConfig)

	target := `[{"name": "HassTurnOn", "arguments": {"name": "Kitchen Light"}}]`
	actual := []scoring.ToolCall{call("HassTurnOn", map[string]any{"name": "kitchen light"})}

	want := strings.Join([]string{
		"MATCH_QUALITY: optimal",
		"Expected 1 call(s):",
		`  HassTurnOn({"name":"Kitchen Light"})`,
		"Got 1 call(s):",
		`  HassTurnOn({"name":"kitchen light"})`,
		"",
		"Checks:",
		"  C response_type: correct",
		"  C format_valid: correct",
		"  C call_count: correct",
		"  C tool_name: correct",
		"  C args: correct",
		"  C no_hallucinated_tools: correct",
	}, "\n")

	for range 3 {
		score := engine.Score(target, actual, "action_done", nil)
		if diff := cmp.Diff(want, score.Explanation); diff != "" {
			t.Fatalf("Explanation mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestExplain_NotApplicableLetter(t *testing.T) {
	results := scoring.Results{
		scoring.DimensionResponseType:        scoring.NotApplicable,
		scoring.DimensionFormatValid:         scoring.NotApplicable,
		scoring.DimensionCallCount:           scoring.Correct,
		scoring.DimensionToolName:            scoring.NotApplicable,
		scoring.DimensionArguments:           scoring.NotApplicable,
		scoring.DimensionNoHallucinatedTools: scoring.NotApplicable,
	}

	text := scoring.Explain(nil, nil, results, scoring.QualityOptimal, "")
	if !strings.Contains(text, "- response_type: not_applicable") {
		t.Errorf("Explain() missing - marker for not applicable:\n%s", text)
	}
	if !strings.Contains(text, "Expected 0 call(s):") {
		t.Errorf("Explain() missing expected count line:\n%s", text)
	}
}
