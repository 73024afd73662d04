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
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/homebench/voicebench/dataset"
	"github.com/homebench/voicebench/extract"
	"github.com/homebench/voicebench/model"
	"github.com/homebench/voicebench/scoring"
)

// Runner executes a benchmark task. Samples are independent, so they
// run concurrently up to Concurrency; scoring itself is pure and needs
// no synchronization.
type Runner struct {
	// Concurrency bounds the number of in-flight samples. Values below
	// one run sequentially.
	Concurrency int

	// Storage optionally persists the run result on completion.
	Storage Storage

	tracer trace.Tracer
}

// NewRunner creates a runner with sequential execution by default.
func NewRunner() *Runner {
	return &Runner{
		Concurrency: 1,
		tracer:      otel.Tracer("github.com/homebench/voicebench/bench"),
	}
}

// Run executes every case of the task and aggregates the outcome.
// Per-case failures (generation errors, missing inventories) are
// recorded on the case and count as Incorrect; only infrastructure
// failures (context cancellation, storage) abort the run.
func (r *Runner) Run(ctx context.Context, task *Task) (*RunResult, error) {
	run := &RunResult{
		RunID:     uuid.NewString(),
		SetName:   task.Set.Name,
		Model:     task.Model.Name(),
		ToolTier:  string(task.toolTier),
		CreatedAt: time.Now().UTC(),
		Cases:     make([]CaseResult, len(task.Set.Cases)),
	}

	ctx, span := r.tracer.Start(ctx, "bench.run",
		trace.WithAttributes(
			attribute.String("run.id", run.RunID),
			attribute.String("run.set", run.SetName),
			attribute.Int("run.cases", len(task.Set.Cases)),
		))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.Concurrency))
	for i, c := range task.Set.Cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run.Cases[i] = r.runCase(gctx, task, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	correct := 0
	run.Status = RunStatusPassed
	for _, c := range run.Cases {
		switch {
		case c.Error != "":
			run.Status = RunStatusError
		case c.Overall == scoring.Correct:
			correct++
		default:
			if run.Status == RunStatusPassed {
				run.Status = RunStatusFailed
			}
		}
	}
	if len(run.Cases) > 0 {
		run.Accuracy = float64(correct) / float64(len(run.Cases))
	}
	run.CompletedAt = time.Now().UTC()

	span.SetAttributes(attribute.Float64("run.accuracy", run.Accuracy))

	if r.Storage != nil {
		if err := r.Storage.SaveRun(ctx, run); err != nil {
			return nil, err
		}
	}
	return run, nil
}

func (r *Runner) runCase(ctx context.Context, task *Task, c dataset.Case) CaseResult {
	ctx, span := r.tracer.Start(ctx, "bench.case",
		trace.WithAttributes(attribute.String("case.id", c.ID)))
	defer span.End()

	start := time.Now()
	result := CaseResult{
		CaseID:       c.ID,
		Utterance:    c.Utterance,
		ResponseType: c.ResponseType,
	}

	system, err := task.Prompt.SystemPrompt(c.InventoryFile)
	if err != nil {
		result.Error = err.Error()
		result.Overall = scoring.Incorrect
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
		return result
	}

	resp, err := task.Model.Generate(ctx, &model.Request{
		System:    system,
		Utterance: c.Utterance,
		Tools:     task.Tools,
	})
	if err != nil {
		result.Error = err.Error()
		result.Overall = scoring.Incorrect
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
		return result
	}

	calls := extract.FromContent(resp.Content)
	if calls == nil {
		calls = extract.FromText(resp.Text)
	}

	score := task.Engine.Score(c.Target, calls, c.ResponseType, c.Alternatives)
	result.Overall = score.Overall
	result.Dimensions = score.Results
	result.Quality = score.Quality
	result.Reason = score.Reason
	result.ActualToolCalls = score.Actual
	result.Explanation = score.Explanation
	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	span.SetAttributes(attribute.String("case.verdict", score.Overall.String()))
	return result
}
