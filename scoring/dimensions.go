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

import "slices"

// Dimension identifies one independently-scored axis of correctness.
type Dimension string

const (
	// DimensionResponseType checks that the shape of the response (tool
	// calls vs. plain text) matches the expected response type.
	DimensionResponseType Dimension = "response_type"

	// DimensionFormatValid checks that every emitted call is well-formed:
	// a non-empty name and parseable arguments.
	DimensionFormatValid Dimension = "format_valid"

	// DimensionCallCount checks that the number of calls matches.
	DimensionCallCount Dimension = "call_count"

	// DimensionToolName checks that the multiset of called tool names
	// matches the expected names, order-independent.
	DimensionToolName Dimension = "tool_name"

	// DimensionArguments checks that every expected call is satisfied by
	// a distinct actual call under the argument tolerance rules.
	DimensionArguments Dimension = "args"

	// DimensionNoHallucinatedTools checks that every called tool is in
	// the valid-tool allow-list.
	DimensionNoHallucinatedTools Dimension = "no_hallucinated_tools"
)

// Dimensions returns all dimensions in their canonical reporting order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionResponseType,
		DimensionFormatValid,
		DimensionCallCount,
		DimensionToolName,
		DimensionArguments,
		DimensionNoHallucinatedTools,
	}
}

// Results maps each dimension to its verdict for one sample.
type Results map[Dimension]Verdict

// Overall aggregates the per-dimension verdicts: Correct iff every
// applicable dimension is Correct, vacuously Correct when every
// dimension is NotApplicable.
func (r Results) Overall() Verdict {
	for _, v := range r {
		if v == Incorrect {
			return Incorrect
		}
	}
	return Correct
}

// Response types recognized by the response_type dimension. Any other
// value is treated as "no opinion" and scores NotApplicable.
const (
	ResponseTypeActionDone    = "action_done"
	ResponseTypeQueryResponse = "query_response"
	ResponseTypeTextResponse  = "text_response"
	ResponseTypeError         = "error"
	ResponseTypeClarification = "clarification"
)

// Config carries the tool-registry knowledge the evaluator needs. Both
// sets are injected rather than read from a global so that different
// tool tiers can be scored side by side.
type Config struct {
	// ValidTools is the allow-list for the no_hallucinated_tools
	// dimension: every tool name the assistant is permitted to call.
	ValidTools []string

	// QueryTools is the subset of tools that answer a question rather
	// than perform an action, used by the response_type dimension.
	QueryTools []string
}

// Evaluator runs the six dimension checks for one sample.
type Evaluator struct {
	valid map[string]bool
	query map[string]bool
}

// NewEvaluator creates an evaluator for the given tool configuration.
func NewEvaluator(cfg Config) *Evaluator {
	e := &Evaluator{
		valid: make(map[string]bool, len(cfg.ValidTools)),
		query: make(map[string]bool, len(cfg.QueryTools)),
	}
	for _, name := range cfg.ValidTools {
		e.valid[name] = true
	}
	for _, name := range cfg.QueryTools {
		e.query[name] = true
	}
	return e
}

// Evaluate runs every dimension check against one sample. An empty
// expected list is a meaningful state ("no tool call expected"), not an
// error.
func (e *Evaluator) Evaluate(expected, actual []ToolCall, responseType string) Results {
	return Results{
		DimensionResponseType:        e.checkResponseType(responseType, actual),
		DimensionFormatValid:         checkFormatValid(actual),
		DimensionCallCount:           checkCallCount(expected, actual),
		DimensionToolName:            checkToolNames(expected, actual),
		DimensionArguments:           checkArguments(expected, actual),
		DimensionNoHallucinatedTools: e.checkNoHallucinatedTools(actual),
	}
}

func (e *Evaluator) checkResponseType(responseType string, actual []ToolCall) Verdict {
	switch responseType {
	case ResponseTypeActionDone:
		if len(actual) > 0 {
			return Correct
		}
		return Incorrect
	case ResponseTypeQueryResponse:
		for _, call := range actual {
			if e.query[call.Name] {
				return Correct
			}
		}
		return Incorrect
	case ResponseTypeTextResponse, ResponseTypeError, ResponseTypeClarification:
		if len(actual) == 0 {
			return Correct
		}
		return Incorrect
	default:
		return NotApplicable
	}
}

func checkFormatValid(actual []ToolCall) Verdict {
	if len(actual) == 0 {
		return NotApplicable
	}
	for _, call := range actual {
		if call.Name == "" {
			return Incorrect
		}
		if call.HasRawArguments() {
			return Incorrect
		}
	}
	return Correct
}

func checkCallCount(expected, actual []ToolCall) Verdict {
	if len(expected) == len(actual) {
		return Correct
	}
	return Incorrect
}

func checkToolNames(expected, actual []ToolCall) Verdict {
	if len(expected) == 0 {
		return NotApplicable
	}
	if len(actual) == 0 {
		return Incorrect
	}
	expectedNames := make([]string, len(expected))
	for i, call := range expected {
		expectedNames[i] = call.Name
	}
	actualNames := make([]string, len(actual))
	for i, call := range actual {
		actualNames[i] = call.Name
	}
	slices.Sort(expectedNames)
	slices.Sort(actualNames)
	if slices.Equal(expectedNames, actualNames) {
		return Correct
	}
	return Incorrect
}

// checkArguments pairs expected calls with actual calls greedily: each
// expected call, in order, claims the first unclaimed actual call that
// Matches accepts. Greedy first-fit can miss a pairing a maximum
// matching would find when one actual call satisfies several expected
// calls; existing result sets depend on the greedy pairing, so it
// stays.
func checkArguments(expected, actual []ToolCall) Verdict {
	if len(expected) == 0 {
		return NotApplicable
	}
	if len(expected) != len(actual) {
		return Incorrect
	}

	unmatched := make([]int, len(actual))
	for i := range unmatched {
		unmatched[i] = i
	}
	for _, exp := range expected {
		matched := false
		for pos, idx := range unmatched {
			if Matches(exp, actual[idx]) {
				unmatched = slices.Delete(unmatched, pos, pos+1)
				matched = true
				break
			}
		}
		if !matched {
			return Incorrect
		}
	}
	return Correct
}

func (e *Evaluator) checkNoHallucinatedTools(actual []ToolCall) Verdict {
	if len(actual) == 0 {
		return NotApplicable
	}
	for _, call := range actual {
		if call.Name != "" && !e.valid[call.Name] {
			return Incorrect
		}
	}
	return Correct
}
