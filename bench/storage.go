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
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the requested run was not found.
	ErrNotFound = errors.New("bench: not found")

	// ErrInvalidInput indicates invalid input parameters.
	ErrInvalidInput = errors.New("bench: invalid input")
)

// Storage persists benchmark run results. Implementations live in
// bench/storage.
type Storage interface {
	// SaveRun stores a run result, overwriting any run with the same ID.
	SaveRun(ctx context.Context, run *RunResult) error

	// GetRun retrieves a run result by ID.
	GetRun(ctx context.Context, runID string) (*RunResult, error)

	// ListRuns returns all stored runs for a test set, oldest first.
	// An empty setName returns every run.
	ListRuns(ctx context.Context, setName string) ([]RunResult, error)
}
