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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/homebench/voicebench/dataset"
	"github.com/homebench/voicebench/intents"
	"github.com/homebench/voicebench/prompt"
	"github.com/homebench/voicebench/scoring"
)

type validateFlags struct {
	testData string
	baseDir  string
	toolTier string
}

var validateCmdFlags validateFlags

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a test case file without calling a model",
	Long: `validate loads the test case file and reports problems a run would
hit: unparseable expected tool calls, undecodable alternatives, tool
names outside the selected tier, and missing inventory files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateCmdFlags.validate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateCmdFlags.testData, "data", "d", "", "Path to the NDJSON test case file (required)")
	validateCmd.Flags().StringVarP(&validateCmdFlags.baseDir, "base-dir", "b", "", "Base directory for inventory files (defaults to the data file's directory)")
	validateCmd.Flags().StringVarP(&validateCmdFlags.toolTier, "tool-tier", "t", string(intents.TierMVP), "Intent tool tier: mvp or full")

	cobra.CheckErr(validateCmd.MarkFlagRequired("data"))
}

func (f *validateFlags) validate() error {
	set, err := dataset.Load(f.testData)
	if err != nil {
		return err
	}

	names, err := intents.Names(intents.Tier(f.toolTier))
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	baseDir := f.baseDir
	if baseDir == "" {
		baseDir = filepath.Dir(f.testData)
	}

	problems := 0
	report := func(caseID, format string, args ...any) {
		problems++
		fmt.Printf("%s: %s\n", caseID, fmt.Sprintf(format, args...))
	}

	tiers := map[string]int{}
	for _, c := range set.Cases {
		tiers[c.InventoryTier]++

		var expected []scoring.ToolCall
		if err := json.Unmarshal([]byte(c.Target), &expected); err != nil {
			report(c.ID, "expected_tool_calls does not parse: %v", err)
		}
		for _, call := range expected {
			if !known[call.Name] {
				report(c.ID, "expected tool %q is not in tier %s", call.Name, f.toolTier)
			}
		}

		alternatives, err := scoring.DecodeAlternatives(c.Alternatives)
		if err != nil {
			report(c.ID, "alternative_expected_tool_calls does not decode: %v", err)
		}
		for _, alt := range alternatives {
			for _, call := range alt.ToolCalls {
				if !known[call.Name] {
					report(c.ID, "alternative tool %q is not in tier %s", call.Name, f.toolTier)
				}
			}
		}

		if _, err := os.Stat(filepath.Join(baseDir, c.InventoryFile)); err != nil {
			report(c.ID, "inventory file %s: %v", c.InventoryFile, err)
		}
	}

	// Make sure every referenced inventory also formats.
	builder := prompt.NewBuilder(baseDir)
	seen := map[string]bool{}
	for _, c := range set.Cases {
		if seen[c.InventoryFile] {
			continue
		}
		seen[c.InventoryFile] = true
		if _, err := builder.SystemPrompt(c.InventoryFile); err != nil {
			report(c.ID, "inventory file %s does not format: %v", c.InventoryFile, err)
		}
	}

	fmt.Printf("%s: %d cases", set.Name, len(set.Cases))
	for tier, n := range tiers {
		fmt.Printf(", %d %s", n, tier)
	}
	fmt.Println()

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Println("OK")
	return nil
}
