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
	"fmt"
)

// RawArgumentsKey marks a tool call whose arguments could not be parsed.
// A call carrying this key holds the unparsed original text under it and
// fails the format_valid dimension.
const RawArgumentsKey = "_raw"

// ToolCall is a single structured tool invocation: a tool name plus a
// mapping of argument names to values. Argument values are the JSON
// value types: string, number, bool, or a sequence of those.
type ToolCall struct {
	Name      string         `json:"name" mapstructure:"name"`
	Arguments map[string]any `json:"arguments,omitempty" mapstructure:"arguments"`
}

// HasRawArguments reports whether the call carries the unparsed-arguments
// sentinel.
func (c ToolCall) HasRawArguments() bool {
	_, ok := c.Arguments[RawArgumentsKey]
	return ok
}

// render formats the call as name(arguments) for explanations. Argument
// maps are JSON-encoded, which sorts keys and keeps output deterministic.
func (c ToolCall) render() string {
	name := c.Name
	if name == "" {
		name = "?"
	}
	args, err := json.Marshal(c.Arguments)
	if err != nil {
		return fmt.Sprintf("%s(%v)", name, c.Arguments)
	}
	if string(args) == "null" {
		args = []byte("{}")
	}
	return fmt.Sprintf("%s(%s)", name, args)
}
