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

package bench

import (
	"time"

	"github.com/homebench/voicebench/scoring"
)

// RunStatus summarizes a completed benchmark run.
type RunStatus string

const (
	// RunStatusPassed means every case scored Correct.
	RunStatusPassed RunStatus = "PASSED"

	// RunStatusFailed means at least one case scored Incorrect.
	RunStatusFailed RunStatus = "FAILED"

	// RunStatusError means at least one case could not be generated.
	RunStatusError RunStatus = "ERROR"
)

// RunResult aggregates the outcome of one benchmark run.
type RunResult struct {
	RunID    string `json:"run_id"`
	SetName  string `json:"set_name"`
	Model    string `json:"model"`
	ToolTier string `json:"tool_tier"`

	// Accuracy is the fraction of cases scoring Correct.
	Accuracy float64   `json:"accuracy"`
	Status   RunStatus `json:"status"`

	Cases []CaseResult `json:"case_results"`

	CreatedAt   time.Time `json:"creation_timestamp"`
	CompletedAt time.Time `json:"completed_timestamp"`
}

// CaseResult records the scored outcome of a single test case.
type CaseResult struct {
	CaseID       string `json:"case_id"`
	Utterance    string `json:"utterance"`
	ResponseType string `json:"expected_response_type"`

	Overall    scoring.Verdict `json:"overall"`
	Dimensions scoring.Results `json:"dimensions,omitempty"`
	Quality    string          `json:"quality,omitempty"`
	Reason     string          `json:"reason,omitempty"`

	ActualToolCalls []scoring.ToolCall `json:"actual_tool_calls"`
	Explanation     string             `json:"explanation,omitempty"`

	// Error is set when the sample could not be generated or prompted;
	// such cases count as Incorrect in the accuracy aggregate.
	Error string `json:"error,omitempty"`

	ProcessingTimeMs int64 `json:"processing_time_ms"`
}
