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
	"fmt"
	"strings"
)

// Explain renders a human-auditable report of one scored sample. Output
// is byte-identical for identical inputs: calls are listed in their
// given order, dimensions in the order of Dimensions(), and argument
// maps are rendered with sorted keys. Safe to snapshot-test.
func Explain(expected, actual []ToolCall, results Results, quality, reason string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "MATCH_QUALITY: %s\n", quality)
	if reason != "" {
		fmt.Fprintf(&b, "MATCH_REASON: %s\n", reason)
	}

	fmt.Fprintf(&b, "Expected %d call(s):\n", len(expected))
	for _, call := range expected {
		fmt.Fprintf(&b, "  %s\n", call.render())
	}
	fmt.Fprintf(&b, "Got %d call(s):\n", len(actual))
	for _, call := range actual {
		fmt.Fprintf(&b, "  %s\n", call.render())
	}

	b.WriteString("\nChecks:\n")
	for _, dim := range Dimensions() {
		v := results[dim]
		fmt.Fprintf(&b, "  %s %s: %s\n", v.Letter(), dim, v)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
