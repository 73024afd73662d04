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

import "fmt"

// Verdict is the outcome of a single dimension check.
type Verdict int

const (
	// NotApplicable means the dimension has no defined answer for the
	// sample. It is excluded from overall aggregation.
	NotApplicable Verdict = iota

	// Correct means the check passed.
	Correct

	// Incorrect means the check failed.
	Incorrect
)

// String returns the serialized form of the verdict.
func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case NotApplicable:
		return "not_applicable"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Letter returns the single-character form used in explanations:
// C for Correct, I for Incorrect, - for NotApplicable.
func (v Verdict) Letter() string {
	switch v {
	case Correct:
		return "C"
	case Incorrect:
		return "I"
	default:
		return "-"
	}
}

// MarshalJSON implements json.Marshaler.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Verdict) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"correct"`:
		*v = Correct
	case `"incorrect"`:
		*v = Incorrect
	case `"not_applicable"`:
		*v = NotApplicable
	default:
		return fmt.Errorf("scoring: unknown verdict %s", data)
	}
	return nil
}
