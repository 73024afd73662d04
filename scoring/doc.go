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

// Package scoring evaluates an assistant's emitted tool calls against
// the expected calls of a benchmark sample.
//
// Each sample is scored along six independent dimensions, every one a
// ternary verdict (Correct, Incorrect, NotApplicable):
//
//   - response_type: did the response shape match the expected kind
//     (action, query, plain text, error, clarification)?
//   - format_valid: was every call well-formed?
//   - call_count: did the number of calls match?
//   - tool_name: did the multiset of tool names match?
//   - args: does every expected call find a distinct actual call whose
//     arguments match under the tolerance rules?
//   - no_hallucinated_tools: is every called tool in the allow-list?
//
// The overall verdict is Correct iff every applicable dimension is
// Correct. Argument matching is tolerant: case- and whitespace-
// insensitive strings, numbers within an absolute tolerance of 0.01,
// sequences as order-free multisets, and an "_any_of" key suffix that
// accepts any listed value.
//
// A sample may carry alternative expected call sets. When the primary
// set fails, alternatives are retried in file order and the first fully
// passing one is adopted together with its quality label and reason.
//
// Scoring is a pure function of its inputs. NewEngine wires the pieces
// together:
//
//	engine := scoring.NewEngine(scoring.Config{
//	    ValidTools: intents.Names(intents.TierMVP),
//	    QueryTools: intents.QueryTools(),
//	})
//	score := engine.Score(target, actual, responseType, alternatives)
//
// Malformed target encodings never surface as errors; they produce a
// terminal Incorrect score, so one bad sample cannot abort a run.
package scoring
