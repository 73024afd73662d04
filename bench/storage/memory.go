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

// Package storage provides persistence backends for benchmark run
// results: in-memory for tests and development, JSON files for local
// runs, and sqlite for querying across many runs.
package storage

import (
	"context"
	"sync"

	"github.com/homebench/voicebench/bench"
)

// MemoryStorage keeps run results in memory. Suitable for testing.
type MemoryStorage struct {
	mu sync.RWMutex

	// runs maps runID -> RunResult.
	runs map[string]*bench.RunResult

	// order preserves insertion order for listing.
	order []string
}

var _ bench.Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{runs: make(map[string]*bench.RunResult)}
}

// SaveRun stores a run result.
func (m *MemoryStorage) SaveRun(ctx context.Context, run *bench.RunResult) error {
	if run == nil || run.RunID == "" {
		return bench.ErrInvalidInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.runs[run.RunID]; !exists {
		m.order = append(m.order, run.RunID)
	}
	// Copy to keep the store independent of caller mutations.
	copied := *run
	m.runs[run.RunID] = &copied
	return nil
}

// GetRun retrieves a run result by ID.
func (m *MemoryStorage) GetRun(ctx context.Context, runID string) (*bench.RunResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, exists := m.runs[runID]
	if !exists {
		return nil, bench.ErrNotFound
	}
	copied := *run
	return &copied, nil
}

// ListRuns returns stored runs in insertion order, optionally filtered
// by set name.
func (m *MemoryStorage) ListRuns(ctx context.Context, setName string) ([]bench.RunResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]bench.RunResult, 0, len(m.order))
	for _, id := range m.order {
		run := m.runs[id]
		if setName != "" && run.SetName != setName {
			continue
		}
		results = append(results, *run)
	}
	return results, nil
}
