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

// Package extract converts model output into scoring tool calls.
//
// Native function-call parts carry already-parsed arguments. The text
// fallback recovers tool calls models emit as JSON in plain text; an
// arguments payload that cannot be parsed is preserved under the
// scoring.RawArgumentsKey sentinel so the format_valid dimension can
// flag it.
package extract

import (
	"encoding/json"
	"strings"

	"google.golang.org/genai"

	"github.com/homebench/voicebench/scoring"
)

// FromContent collects the function calls of a response content block,
// in part order. Returns nil when the content carries none.
func FromContent(content *genai.Content) []scoring.ToolCall {
	if content == nil {
		return nil
	}
	var calls []scoring.ToolCall
	for _, part := range content.Parts {
		if part == nil || part.FunctionCall == nil {
			continue
		}
		calls = append(calls, scoring.ToolCall{
			Name:      part.FunctionCall.Name,
			Arguments: part.FunctionCall.Args,
		})
	}
	return calls
}

// wireCall is the shape models emit in text: arguments may be a JSON
// object or a string containing encoded JSON.
type wireCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// FromText recovers tool calls from a plain-text response containing a
// JSON call object or array, optionally inside a ```json fence. Returns
// nil when the text holds no parseable call structure — plain prose is
// a valid response, not an extraction failure.
func FromText(text string) []scoring.ToolCall {
	body := stripFence(strings.TrimSpace(text))
	if body == "" {
		return nil
	}

	var wire []wireCall
	if err := json.Unmarshal([]byte(body), &wire); err != nil {
		var single wireCall
		if err := json.Unmarshal([]byte(body), &single); err != nil || single.Name == "" {
			return nil
		}
		wire = []wireCall{single}
	}

	calls := make([]scoring.ToolCall, 0, len(wire))
	for _, w := range wire {
		calls = append(calls, scoring.ToolCall{
			Name:      w.Name,
			Arguments: decodeArguments(w.Arguments),
		})
	}
	return calls
}

// decodeArguments parses a raw arguments payload. A JSON object passes
// through; a string is treated as encoded JSON and re-parsed. Anything
// unparseable lands under the _raw sentinel.
func decodeArguments(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var args map[string]any
	if err := json.Unmarshal(raw, &args); err == nil {
		return args
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &args); err == nil {
			return args
		}
		return map[string]any{scoring.RawArgumentsKey: encoded}
	}

	return map[string]any{scoring.RawArgumentsKey: string(raw)}
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
