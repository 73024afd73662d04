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

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/homebench/voicebench/bench"
	"github.com/homebench/voicebench/bench/storage"
	"github.com/homebench/voicebench/intents"
	"github.com/homebench/voicebench/model"
	"github.com/homebench/voicebench/scoring"
)

type runFlags struct {
	testData      string
	baseDir       string
	toolTier      string
	inventoryTier string
	modelName     string
	concurrency   int
	outputDir     string
	dbPath        string
	verbose       bool
}

var runCmdFlags runFlags

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark against a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCmdFlags.run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runCmdFlags.testData, "data", "d", "", "Path to the NDJSON test case file (required)")
	runCmd.Flags().StringVarP(&runCmdFlags.baseDir, "base-dir", "b", "", "Base directory for inventory files (defaults to the data file's directory)")
	runCmd.Flags().StringVarP(&runCmdFlags.toolTier, "tool-tier", "t", string(intents.TierMVP), "Intent tool tier: mvp or full")
	runCmd.Flags().StringVar(&runCmdFlags.inventoryTier, "inventory-tier", "", "Only run cases of this inventory tier")
	runCmd.Flags().StringVarP(&runCmdFlags.modelName, "model", "m", "gemini-2.0-flash", "Gemini model to benchmark")
	runCmd.Flags().IntVarP(&runCmdFlags.concurrency, "concurrency", "c", 4, "Number of cases generated in parallel")
	runCmd.Flags().StringVarP(&runCmdFlags.outputDir, "output", "o", "", "Directory for JSON run results")
	runCmd.Flags().StringVar(&runCmdFlags.dbPath, "db", "", "SQLite database for run results")
	runCmd.Flags().BoolVarP(&runCmdFlags.verbose, "verbose", "v", false, "Print the scoring explanation of every failed case")

	cobra.CheckErr(runCmd.MarkFlagRequired("data"))
}

func (f *runFlags) run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	store, err := f.openStorage()
	if err != nil {
		return err
	}

	gemini, err := model.NewGeminiModel(ctx, f.modelName, nil)
	if err != nil {
		return err
	}

	baseDir := f.baseDir
	if baseDir == "" {
		baseDir = filepath.Dir(f.testData)
	}

	task, err := bench.NewTask(bench.TaskConfig{
		TestData:      f.testData,
		BaseDir:       baseDir,
		ToolTier:      intents.Tier(f.toolTier),
		InventoryTier: f.inventoryTier,
		Model:         gemini,
	})
	if err != nil {
		return err
	}

	runner := bench.NewRunner()
	runner.Concurrency = f.concurrency
	runner.Storage = store

	fmt.Printf("Running %s: %d cases, tier %s, model %s\n",
		task.Set.Name, len(task.Set.Cases), f.toolTier, f.modelName)

	run, err := runner.Run(ctx, task)
	if err != nil {
		return err
	}

	printSummary(run, f.verbose)
	return nil
}

func (f *runFlags) openStorage() (bench.Storage, error) {
	switch {
	case f.dbPath != "":
		return storage.NewSQLiteStorage(f.dbPath)
	case f.outputDir != "":
		return storage.NewFileStorage(f.outputDir)
	default:
		return nil, nil
	}
}

func printSummary(run *bench.RunResult, verbose bool) {
	fmt.Printf("\nRun %s: %s\n", run.RunID, run.Status)
	fmt.Printf("Accuracy: %.1f%% (%d/%d)\n",
		run.Accuracy*100, correctCount(run), len(run.Cases))

	for _, c := range run.Cases {
		if c.Error != "" {
			fmt.Printf("\nERROR %s: %s\n", c.CaseID, c.Error)
			continue
		}
		if verbose && c.Overall == scoring.Incorrect {
			fmt.Printf("\nFAIL %s: %q\n%s\n", c.CaseID, c.Utterance, c.Explanation)
		}
	}
}

func correctCount(run *bench.RunResult) int {
	n := 0
	for _, c := range run.Cases {
		if c.Error == "" && c.Overall == scoring.Correct {
			n++
		}
	}
	return n
}
