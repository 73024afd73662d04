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

// Package prompt assembles Home Assistant style system prompts for the
// benchmark solver.
//
// The prompt order is cache-friendly for the model side: the static
// instruction block first, then the entity inventory, then the variable
// timestamp last so it invalidates as little of the provider's KV cache
// as possible. Time and date are fixed for benchmarking determinism.
package prompt

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Fixed clock values keep prompts byte-identical across runs.
const (
	FixedTime = "12:00:00"
	FixedDate = "2026-03-01"
)

// defaultInstructions mirrors Home Assistant's default conversation
// agent instructions.
const defaultInstructions = "You are a voice assistant for Home Assistant.\n" +
	"Answer questions about the world truthfully.\n" +
	"Answer in plain text. Keep it simple and to the point.\n" +
	"When controlling Home Assistant always call the intent tools.\n" +
	"Use HassTurnOn to lock and HassTurnOff to unlock a lock.\n" +
	"When controlling a device, prefer passing just name and domain.\n" +
	"When controlling an area, prefer passing just area name and domain.\n" +
	"When a user asks to turn on all devices of a specific type, " +
	"ask user to specify an area, unless there is only one device of that type."

// Builder assembles system prompts, caching formatted inventories by
// absolute file path. Safe for concurrent use.
type Builder struct {
	// OmitTimestamp drops the trailing time/date line.
	OmitTimestamp bool

	baseDir string

	mu    sync.RWMutex
	cache map[string]string
}

// NewBuilder creates a prompt builder resolving inventory paths
// relative to baseDir.
func NewBuilder(baseDir string) *Builder {
	return &Builder{
		baseDir: baseDir,
		cache:   make(map[string]string),
	}
}

// SystemPrompt assembles the full system prompt for one inventory file.
func (b *Builder) SystemPrompt(inventoryFile string) (string, error) {
	entityContext, err := b.inventoryContext(inventoryFile)
	if err != nil {
		return "", err
	}

	parts := []string{
		defaultInstructions,
		"",
		"An overview of the areas and the devices in this smart home:",
		entityContext,
	}

	if !b.OmitTimestamp {
		parts = append(parts, "",
			fmt.Sprintf("The current time is %s. Today's date is %s.", FixedTime, FixedDate))
	}

	return strings.Join(parts, "\n"), nil
}

// ClearCache drops all cached inventories.
func (b *Builder) ClearCache() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache = make(map[string]string)
}

func (b *Builder) inventoryContext(inventoryFile string) (string, error) {
	path, err := filepath.Abs(filepath.Join(b.baseDir, inventoryFile))
	if err != nil {
		return "", fmt.Errorf("prompt: resolve inventory path: %w", err)
	}

	b.mu.RLock()
	formatted, ok := b.cache[path]
	b.mu.RUnlock()
	if ok {
		return formatted, nil
	}

	inv, err := loadInventory(path)
	if err != nil {
		return "", err
	}
	formatted = inv.format()

	b.mu.Lock()
	b.cache[path] = formatted
	b.mu.Unlock()

	return formatted, nil
}
