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
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/homebench/voicebench/bench"
)

// caseResultList serializes the per-case results as a JSON column.
type caseResultList []bench.CaseResult

func (caseResultList) GormDataType() string {
	return "text"
}

func (caseResultList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	case "mysql":
		return "LONGTEXT"
	default:
		return ""
	}
}

// Value implements driver.Valuer.
func (l caseResultList) Value() (driver.Value, error) {
	if l == nil {
		l = caseResultList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *caseResultList) Scan(value any) error {
	if value == nil {
		*l = caseResultList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSON value: %T", value)
	}

	if len(bytes) == 0 {
		*l = caseResultList{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// runRow is the gorm model for a stored benchmark run.
type runRow struct {
	RunID       string         `gorm:"primaryKey;column:run_id"`
	SetName     string         `gorm:"index;column:set_name"`
	Model       string         `gorm:"column:model"`
	ToolTier    string         `gorm:"column:tool_tier"`
	Accuracy    float64        `gorm:"column:accuracy"`
	Status      string         `gorm:"column:status"`
	Cases       caseResultList `gorm:"column:cases"`
	CreatedAt   int64          `gorm:"column:created_at"`
	CompletedAt int64          `gorm:"column:completed_at"`
}

func (runRow) TableName() string {
	return "bench_runs"
}

// SQLiteStorage persists run results in a sqlite database.
type SQLiteStorage struct {
	db *gorm.DB
}

var _ bench.Storage = (*SQLiteStorage)(nil)

// NewSQLiteStorage opens (or creates) the sqlite database at path and
// migrates the run table.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&runRow{}); err != nil {
		return nil, fmt.Errorf("migrate run table: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

// SaveRun upserts the run result keyed by run ID.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *bench.RunResult) error {
	if run == nil || run.RunID == "" {
		return bench.ErrInvalidInput
	}

	row := toRow(run)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "run_id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.RunID, err)
	}
	return nil
}

// GetRun retrieves a run result by ID.
func (s *SQLiteStorage) GetRun(ctx context.Context, runID string) (*bench.RunResult, error) {
	var row runRow
	err := s.db.WithContext(ctx).First(&row, "run_id = ?", runID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bench.ErrNotFound
		}
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	return fromRow(&row), nil
}

// ListRuns returns stored runs oldest first, optionally filtered by
// set name.
func (s *SQLiteStorage) ListRuns(ctx context.Context, setName string) ([]bench.RunResult, error) {
	query := s.db.WithContext(ctx).Order("created_at ASC")
	if setName != "" {
		query = query.Where("set_name = ?", setName)
	}

	var rows []runRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	results := make([]bench.RunResult, 0, len(rows))
	for i := range rows {
		results = append(results, *fromRow(&rows[i]))
	}
	return results, nil
}

func toRow(run *bench.RunResult) runRow {
	return runRow{
		RunID:       run.RunID,
		SetName:     run.SetName,
		Model:       run.Model,
		ToolTier:    run.ToolTier,
		Accuracy:    run.Accuracy,
		Status:      string(run.Status),
		Cases:       caseResultList(run.Cases),
		CreatedAt:   run.CreatedAt.UnixMilli(),
		CompletedAt: run.CompletedAt.UnixMilli(),
	}
}

func fromRow(row *runRow) *bench.RunResult {
	return &bench.RunResult{
		RunID:       row.RunID,
		SetName:     row.SetName,
		Model:       row.Model,
		ToolTier:    row.ToolTier,
		Accuracy:    row.Accuracy,
		Status:      bench.RunStatus(row.Status),
		Cases:       []bench.CaseResult(row.Cases),
		CreatedAt:   timeFromMilli(row.CreatedAt),
		CompletedAt: timeFromMilli(row.CompletedAt),
	}
}

func timeFromMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
