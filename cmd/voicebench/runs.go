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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/homebench/voicebench/bench"
	"github.com/homebench/voicebench/bench/storage"
)

type runsFlags struct {
	outputDir string
	dbPath    string
	setName   string
}

var runsCmdFlags runsFlags

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored benchmark runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runsCmdFlags.list(cmd)
	},
}

var showCmd = &cobra.Command{
	Use:   "show RUN_ID",
	Short: "Print one stored run as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runsCmdFlags.show(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(showCmd)

	runsCmd.PersistentFlags().StringVarP(&runsCmdFlags.outputDir, "output", "o", "", "Directory of JSON run results")
	runsCmd.PersistentFlags().StringVar(&runsCmdFlags.dbPath, "db", "", "SQLite database of run results")
	runsCmd.Flags().StringVarP(&runsCmdFlags.setName, "set", "s", "", "Only list runs of this test set")
}

func (f *runsFlags) openStorage() (bench.Storage, error) {
	switch {
	case f.dbPath != "":
		return storage.NewSQLiteStorage(f.dbPath)
	case f.outputDir != "":
		return storage.NewFileStorage(f.outputDir)
	default:
		return nil, fmt.Errorf("either --output or --db is required")
	}
}

func (f *runsFlags) list(cmd *cobra.Command) error {
	store, err := f.openStorage()
	if err != nil {
		return err
	}

	runs, err := store.ListRuns(cmd.Context(), f.setName)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s  %-6s  %5.1f%%  %s  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.RunID, run.Status, run.Accuracy*100, run.Model, run.SetName)
	}
	return nil
}

func (f *runsFlags) show(cmd *cobra.Command, runID string) error {
	store, err := f.openStorage()
	if err != nil {
		return err
	}

	run, err := store.GetRun(cmd.Context(), runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}
