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

package scoring

import (
	"encoding/json"
	"slices"
)

// targetParseExplanation is the fixed diagnostic for a malformed
// expected-calls encoding.
const targetParseExplanation = "Scoring error: target parse error"

// Score is the settled outcome for one sample.
type Score struct {
	// Overall is Correct iff every applicable dimension passed against
	// the adopted expected set.
	Overall Verdict `json:"overall"`

	// Results holds the per-dimension verdicts of the adopted set.
	Results Results `json:"results,omitempty"`

	// Quality and Reason describe which expected set was adopted:
	// "optimal" for the primary, the alternative's own quality and
	// reason otherwise.
	Quality string `json:"quality,omitempty"`
	Reason  string `json:"reason,omitempty"`

	// Actual is the scored call list, projected to name and arguments.
	Actual []ToolCall `json:"actual_tool_calls"`

	// Explanation is the deterministic report from Explain.
	Explanation string `json:"explanation"`
}

// Engine scores one sample at a time: a pure, synchronous computation
// with no shared mutable state, safe to call concurrently across
// samples.
type Engine struct {
	eval *Evaluator
}

// NewEngine creates a scoring engine for the given tool configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{eval: NewEvaluator(cfg)}
}

// Score evaluates one sample. targetJSON is the JSON-encoded primary
// expected call array; alternatives is the raw alternative-set value in
// any form DecodeAlternatives accepts.
//
// Every failure mode resolves to a normal Score. A malformed target
// encoding short-circuits to a terminal Incorrect score with a fixed
// diagnostic; undecodable alternatives are treated as absent, leaving
// the primary verdict in place.
func (e *Engine) Score(targetJSON string, actual []ToolCall, responseType string, alternatives any) Score {
	var expected []ToolCall
	if err := json.Unmarshal([]byte(targetJSON), &expected); err != nil {
		return Score{
			Overall:     Incorrect,
			Quality:     QualityOptimal,
			Actual:      []ToolCall{},
			Explanation: targetParseExplanation,
		}
	}

	alts, err := DecodeAlternatives(alternatives)
	if err != nil {
		alts = nil
	}

	res := e.eval.Resolve(expected, alts, actual, responseType)

	return Score{
		Overall:     res.Overall,
		Results:     res.Results,
		Quality:     res.Quality,
		Reason:      res.Reason,
		Actual:      serializeActual(actual),
		Explanation: Explain(expected, actual, res.Results, res.Quality, res.Reason),
	}
}

// serializeActual projects calls to their name and arguments. Extraction
// metadata beyond the _raw sentinel never reaches ToolCall, so a shallow
// copy suffices; the copy keeps the Score independent of caller slices.
func serializeActual(actual []ToolCall) []ToolCall {
	if actual == nil {
		return []ToolCall{}
	}
	return slices.Clone(actual)
}
