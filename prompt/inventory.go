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

package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// inventory describes the smart home exposed to the assistant: areas
// plus the entities assigned to them.
type inventory struct {
	Areas    []area   `yaml:"areas"`
	Entities []entity `yaml:"entities"`
}

type area struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type entity struct {
	EntityID string `yaml:"entity_id"`
	Name     string `yaml:"name"`
	State    string `yaml:"state"`
	Area     string `yaml:"area"`

	// Attributes is kept as a yaml.Node so the file's key order
	// survives into the rendered prompt.
	Attributes yaml.Node `yaml:"attributes"`
}

func loadInventory(path string) (*inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prompt: read inventory: %w", err)
	}

	var inv inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("prompt: parse inventory %s: %w", path, err)
	}
	return &inv, nil
}

// format renders the inventory in the entity-serialization layout Home
// Assistant feeds its conversation agents:
//
//	light.kitchen:
//	  names: Kitchen Light
//	  state: 'off'
//	  areas: Kitchen
//	  attributes:
//	    brightness: 128
func (inv *inventory) format() string {
	areaNames := make(map[string]string, len(inv.Areas))
	for _, a := range inv.Areas {
		areaNames[a.ID] = a.Name
	}

	var lines []string
	for _, e := range inv.Entities {
		lines = append(lines, e.EntityID+":")
		lines = append(lines, "  names: "+e.Name)

		state := e.State
		if state == "" {
			state = "unknown"
		}
		lines = append(lines, fmt.Sprintf("  state: '%s'", state))

		if name, ok := areaNames[e.Area]; ok && e.Area != "" {
			lines = append(lines, "  areas: "+name)
		}

		if e.Attributes.Kind == yaml.MappingNode && len(e.Attributes.Content) > 0 {
			lines = append(lines, "  attributes:")
			for i := 0; i+1 < len(e.Attributes.Content); i += 2 {
				key := e.Attributes.Content[i]
				value := e.Attributes.Content[i+1]
				if value.Tag == "!!null" {
					lines = append(lines, fmt.Sprintf("    %s:", key.Value))
					continue
				}
				lines = append(lines, fmt.Sprintf("    %s: %s", key.Value, renderAttr(value)))
			}
		}
	}

	return strings.Join(lines, "\n")
}

func renderAttr(n *yaml.Node) string {
	if n.Kind == yaml.SequenceNode {
		items := make([]string, len(n.Content))
		for i, item := range n.Content {
			items[i] = item.Value
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return n.Value
}
