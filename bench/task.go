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

// Package bench wires the benchmark together: dataset, prompt builder,
// intent tools, model, and scoring engine, plus a concurrent runner
// producing persistent run results.
package bench

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/homebench/voicebench/dataset"
	"github.com/homebench/voicebench/intents"
	"github.com/homebench/voicebench/model"
	"github.com/homebench/voicebench/prompt"
	"github.com/homebench/voicebench/scoring"
)

// TaskConfig configures a benchmark task.
type TaskConfig struct {
	// TestData is the path of the NDJSON test case file.
	TestData string

	// BaseDir resolves relative inventory paths. Defaults to ".".
	BaseDir string

	// ToolTier selects the intent tool set. Defaults to intents.TierMVP.
	ToolTier intents.Tier

	// InventoryTier optionally filters the dataset to one tier.
	InventoryTier string

	// Model generates the responses under test.
	Model model.Model
}

// Task is a fully wired benchmark: everything Runner.Run needs.
type Task struct {
	Set    *dataset.Set
	Prompt *prompt.Builder
	Tools  []*genai.FunctionDeclaration
	Engine *scoring.Engine
	Model  model.Model

	toolTier intents.Tier
}

// NewTask loads the dataset and wires the benchmark components. The
// scoring allow-list is the tool tier exposed to the model, so a call
// to a tool the model was never offered scores as hallucinated.
func NewTask(cfg TaskConfig) (*Task, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("bench: %w: a model is required", ErrInvalidInput)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = "."
	}
	if cfg.ToolTier == "" {
		cfg.ToolTier = intents.TierMVP
	}

	set, err := dataset.LoadTier(cfg.TestData, cfg.InventoryTier)
	if err != nil {
		return nil, err
	}

	tools, err := intents.Tools(cfg.ToolTier)
	if err != nil {
		return nil, err
	}
	names, err := intents.Names(cfg.ToolTier)
	if err != nil {
		return nil, err
	}

	return &Task{
		Set:    set,
		Prompt: prompt.NewBuilder(cfg.BaseDir),
		Tools:  tools,
		Engine: scoring.NewEngine(scoring.Config{
			ValidTools: names,
			QueryTools: intents.QueryTools(),
		}),
		Model:    cfg.Model,
		toolTier: cfg.ToolTier,
	}, nil
}
