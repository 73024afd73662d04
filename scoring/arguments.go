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
	"math"
	"reflect"
	"slices"
	"strings"
)

// numericTolerance is the absolute tolerance for comparing numeric
// argument values. It absorbs unit conversion and rounding drift in
// model output.
const numericTolerance = 0.01

// anyOfSuffix marks an expected argument key that accepts any one of a
// list of values for the base key.
const anyOfSuffix = "_any_of"

// Matches reports whether an actual tool call satisfies an expected one.
//
// Names must be equal exactly. An expected call with no argument
// constraints matches any arguments. Otherwise every expected key must
// be present in the actual arguments and compare equal under the
// tolerance rules: numbers within numericTolerance, sequences as
// multisets of normalized elements, everything else by normalized
// string equality. Keys ending in "_any_of" accept any listed value for
// the base key.
func Matches(expected, actual ToolCall) bool {
	if expected.Name != actual.Name {
		return false
	}

	if len(expected.Arguments) == 0 {
		return true
	}

	for key, expectedValue := range expected.Arguments {
		if base, ok := strings.CutSuffix(key, anyOfSuffix); ok {
			actualValue, present := actual.Arguments[base]
			if !present || actualValue == nil {
				return false
			}
			if options, ok := asSequence(expectedValue); ok {
				if !slices.ContainsFunc(options, func(opt any) bool {
					return normalize(actualValue) == normalize(opt)
				}) {
					return false
				}
			}
			continue
		}

		actualValue, present := actual.Arguments[key]
		if !present || actualValue == nil {
			return false
		}

		if !valueMatches(expectedValue, actualValue) {
			return false
		}
	}

	return true
}

func valueMatches(expected, actual any) bool {
	if ev, ok := asNumber(expected); ok {
		if av, ok := asNumber(actual); ok {
			return math.Abs(ev-av) <= numericTolerance
		}
	}

	if es, ok := asSequence(expected); ok {
		if as, ok := asSequence(actual); ok {
			return multisetEqual(es, as)
		}
	}

	return normalize(expected) == normalize(actual)
}

func multisetEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	an := make([]string, len(a))
	bn := make([]string, len(b))
	for i, v := range a {
		an[i] = strings.ToLower(fmt.Sprint(v))
	}
	for i, v := range b {
		bn[i] = strings.ToLower(fmt.Sprint(v))
	}
	slices.Sort(an)
	slices.Sort(bn)
	return slices.Equal(an, bn)
}

// normalize stringifies a value, trims whitespace, and lower-cases it,
// making comparisons case- and whitespace-insensitive.
func normalize(v any) string {
	return strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
}

// asNumber converts integer and floating-point values, including the
// types produced by JSON decoding, to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// asSequence converts any slice or array value (except byte slices) to
// []any. JSON decoding yields []any directly; hand-constructed expected
// values may use typed slices like []string.
func asSequence(v any) ([]any, bool) {
	if seq, ok := v.([]any); ok {
		return seq, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	seq := make([]any, rv.Len())
	for i := range seq {
		seq[i] = rv.Index(i).Interface()
	}
	return seq, true
}
