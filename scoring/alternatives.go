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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Match qualities. The primary expected set is "optimal"; alternatives
// default to "acceptable" unless the test case says otherwise.
const (
	QualityOptimal    = "optimal"
	QualityAcceptable = "acceptable"
)

// Alternative is one additional acceptable answer for a sample,
// considered only after the primary expected set fails. The source file
// may write it as a bare call array (legacy) or as a structured record;
// both normalize to this shape.
type Alternative struct {
	ToolCalls []ToolCall `json:"tool_calls" mapstructure:"tool_calls"`
	Quality   string     `json:"quality" mapstructure:"quality"`
	Reason    string     `json:"reason" mapstructure:"reason"`
}

// DecodeAlternatives normalizes the raw alternative-expected-calls
// value from a test case. The value may be a JSON-encoded string, an
// already-decoded []any, or nil. Each element is either a bare array of
// {name, arguments} objects or a {tool_calls, quality, reason} record.
func DecodeAlternatives(raw any) ([]Alternative, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []Alternative:
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return decodeAlternativesJSON([]byte(v))
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return decodeAlternativesJSON(v)
	case json.RawMessage:
		if len(v) == 0 {
			return nil, nil
		}
		return decodeAlternativesJSON(v)
	case []any:
		return decodeAlternativesList(v)
	default:
		return nil, fmt.Errorf("scoring: unsupported alternatives type %T", raw)
	}
}

func decodeAlternativesJSON(data []byte) ([]Alternative, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("scoring: decode alternatives: %w", err)
	}

	alts := make([]Alternative, 0, len(elems))
	for i, elem := range elems {
		trimmed := bytes.TrimLeft(elem, " \t\r\n")
		var alt Alternative
		if len(trimmed) > 0 && trimmed[0] == '[' {
			// Legacy flat-array form.
			if err := json.Unmarshal(elem, &alt.ToolCalls); err != nil {
				return nil, fmt.Errorf("scoring: decode alternative %d: %w", i, err)
			}
		} else {
			if err := json.Unmarshal(elem, &alt); err != nil {
				return nil, fmt.Errorf("scoring: decode alternative %d: %w", i, err)
			}
		}
		if alt.Quality == "" {
			alt.Quality = QualityAcceptable
		}
		alts = append(alts, alt)
	}
	return alts, nil
}

func decodeAlternativesList(elems []any) ([]Alternative, error) {
	alts := make([]Alternative, 0, len(elems))
	for i, elem := range elems {
		var alt Alternative
		switch e := elem.(type) {
		case map[string]any:
			if err := mapstructure.Decode(e, &alt); err != nil {
				return nil, fmt.Errorf("scoring: decode alternative %d: %w", i, err)
			}
		case []any:
			// Legacy flat-array form.
			if err := mapstructure.Decode(e, &alt.ToolCalls); err != nil {
				return nil, fmt.Errorf("scoring: decode alternative %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("scoring: alternative %d has unsupported type %T", i, elem)
		}
		if alt.Quality == "" {
			alt.Quality = QualityAcceptable
		}
		alts = append(alts, alt)
	}
	return alts, nil
}

// Resolution is the settled outcome of scoring a sample against its
// primary expected set and, if needed, its alternatives.
type Resolution struct {
	Results Results
	Overall Verdict
	Quality string
	Reason  string
}

// Resolve scores the primary expected set and, when it fails, retries
// each alternative in file order. The first alternative whose
// applicable dimensions all pass is adopted wholesale — results,
// quality, and reason; earlier alternatives' partial results are
// discarded. Order in the test case is therefore a scoring contract.
//
// When nothing passes, the primary's failing results stand and the
// quality keeps its "optimal" default; the label carries no meaning on
// a failing score.
func (e *Evaluator) Resolve(primary []ToolCall, alternatives []Alternative, actual []ToolCall, responseType string) Resolution {
	res := Resolution{
		Results: e.Evaluate(primary, actual, responseType),
		Quality: QualityOptimal,
	}
	res.Overall = res.Results.Overall()
	if res.Overall == Correct {
		return res
	}

	for _, alt := range alternatives {
		altResults := e.Evaluate(alt.ToolCalls, actual, responseType)
		if altResults.Overall() == Correct {
			res.Results = altResults
			res.Overall = Correct
			res.Quality = alt.Quality
			res.Reason = alt.Reason
			break
		}
	}
	return res
}
