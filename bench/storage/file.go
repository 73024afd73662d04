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

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/homebench/voicebench/bench"
)

// FileStorage persists run results as JSON files under a base
// directory, one file per run at runs/<runID>.json.
type FileStorage struct {
	baseDir string
}

var _ bench.Storage = (*FileStorage)(nil)

// NewFileStorage creates a file-backed store rooted at baseDir. The
// directory is created if it does not exist.
func NewFileStorage(baseDir string) (*FileStorage, error) {
	dir := filepath.Join(baseDir, "runs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStorage{baseDir: baseDir}, nil
}

func (f *FileStorage) runPath(runID string) string {
	return filepath.Join(f.baseDir, "runs", runID+".json")
}

// SaveRun writes the run result to disk, overwriting any run with the
// same ID.
func (f *FileStorage) SaveRun(ctx context.Context, run *bench.RunResult) error {
	if run == nil || run.RunID == "" {
		return bench.ErrInvalidInput
	}
	if strings.ContainsAny(run.RunID, `/\`) {
		return fmt.Errorf("%w: run ID %q contains a path separator", bench.ErrInvalidInput, run.RunID)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run %s: %w", run.RunID, err)
	}
	if err := os.WriteFile(f.runPath(run.RunID), data, 0o644); err != nil {
		return fmt.Errorf("write run %s: %w", run.RunID, err)
	}
	return nil
}

// GetRun reads a run result back from disk.
func (f *FileStorage) GetRun(ctx context.Context, runID string) (*bench.RunResult, error) {
	if strings.ContainsAny(runID, `/\`) {
		return nil, fmt.Errorf("%w: run ID %q contains a path separator", bench.ErrInvalidInput, runID)
	}

	data, err := os.ReadFile(f.runPath(runID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, bench.ErrNotFound
		}
		return nil, fmt.Errorf("read run %s: %w", runID, err)
	}

	var run bench.RunResult
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("unmarshal run %s: %w", runID, err)
	}
	return &run, nil
}

// ListRuns reads every stored run and returns those matching setName,
// oldest first. Files that fail to parse are skipped.
func (f *FileStorage) ListRuns(ctx context.Context, setName string) ([]bench.RunResult, error) {
	dir := filepath.Join(f.baseDir, "runs")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read storage directory: %w", err)
	}

	var results []bench.RunResult
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		var run bench.RunResult
		if err := json.Unmarshal(data, &run); err != nil {
			continue
		}
		if setName != "" && run.SetName != setName {
			continue
		}
		results = append(results, run)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}
