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

// Package intents declares the Home Assistant intent tools the
// benchmark exposes to the model.
//
// Declarations match HA's built-in intent inventory
// (https://developers.home-assistant.io/docs/intent_builtin/). The
// tools are declared to the model but never executed; the benchmark
// captures the calls instead.
//
// Two tiers are available: TierMVP (7 core + 4 utility = 11 tools) and
// TierFull (mvp + 9 media + 9 household + 2 utility = 31 tools).
package intents

import (
	"fmt"

	"google.golang.org/genai"
)

// Tier selects which tool set the model is offered.
type Tier string

const (
	TierMVP  Tier = "mvp"
	TierFull Tier = "full"
)

// Tools returns the function declarations for a tier.
func Tools(tier Tier) ([]*genai.FunctionDeclaration, error) {
	switch tier {
	case TierMVP:
		return mvpTools(), nil
	case TierFull:
		return append(mvpTools(), extendedTools()...), nil
	default:
		return nil, fmt.Errorf("intents: unknown tool tier %q", tier)
	}
}

// Names returns the tool names of a tier, in declaration order. This is
// the scoring allow-list for runs using that tier.
func Names(tier Tier) ([]string, error) {
	tools, err := Tools(tier)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names, nil
}

// QueryTools returns the tools that answer a question rather than
// perform an action. The response_type dimension accepts any of these
// for query samples.
func QueryTools() []string {
	return []string{
		"HassGetState",
		"HassClimateGetTemperature",
		"HassGetWeather",
		"HassGetCurrentTime",
		"HassGetCurrentDate",
	}
}

func str(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func integer(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Description: description}
}

func number(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description}
}

func strArray(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Items:       &genai.Schema{Type: genai.TypeString},
		Description: description,
	}
}

func params(properties map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: properties}
}

// entitySlots returns a fresh copy of the slot set shared by the
// generic device-control intents.
func entitySlots() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"name":         str("Name of the entity"),
		"area":         str("Name of the area"),
		"floor":        str("Name of the floor"),
		"domain":       strArray("Domain of the entity"),
		"device_class": strArray("Device class of the entity"),
	}
}

func mediaSlots() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"name": str("Name of the media player"),
		"area": str("Name of the area"),
	}
}

func declare(name, description string, properties map[string]*genai.Schema) *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        name,
		Description: description,
		Parameters:  params(properties),
	}
}

func mvpTools() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		// Core device control.
		declare("HassTurnOn", "Turns on/opens a device or entity", entitySlots()),
		declare("HassTurnOff", "Turns off/closes a device or entity", entitySlots()),
		declare("HassLightSet", "Sets the brightness or color of a light", map[string]*genai.Schema{
			"name":       str("Name of the entity"),
			"area":       str("Name of the area"),
			"floor":      str("Name of the floor"),
			"brightness": integer("Brightness percentage from 0 to 100"),
			"color":      str("Name of color"),
		}),
		declare("HassSetPosition", "Sets the position of an entity", map[string]*genai.Schema{
			"name":         str("Name of the entity"),
			"area":         str("Name of the area"),
			"floor":        str("Name of the floor"),
			"domain":       strArray("Domain of the entity"),
			"device_class": strArray("Device class of the entity"),
			"position":     integer("Position from 0 to 100"),
		}),
		declare("HassGetState", "Gets or checks the state of an entity", map[string]*genai.Schema{
			"name":         str("Name of the entity"),
			"area":         str("Name of the area"),
			"floor":        str("Name of the floor"),
			"domain":       strArray("Domain of the entity"),
			"device_class": strArray("Device class of the entity"),
			"state":        str("Name of state to match"),
		}),
		declare("HassClimateSetTemperature", "Sets the desired indoor temperature", map[string]*genai.Schema{
			"name":        str("Name of the entity"),
			"area":        str("Name of the area"),
			"floor":       str("Name of the floor"),
			"temperature": number("Temperature in degrees"),
		}),
		declare("HassClimateGetTemperature", "Gets the actual indoor temperature", map[string]*genai.Schema{
			"name":  str("Name of the entity"),
			"area":  str("Name of the area"),
			"floor": str("Name of the floor"),
		}),

		// Utility intents.
		declare("HassGetCurrentTime", "Gets the current time", nil),
		declare("HassGetCurrentDate", "Gets the current date", nil),
		declare("HassGetWeather", "Gets the current weather", map[string]*genai.Schema{
			"name": str("Name of the weather entity"),
		}),
		declare("HassNevermind", "Cancels the current request", nil),
	}
}

func extendedTools() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		// Media control.
		declare("HassMediaPause", "Pauses a media player", mediaSlots()),
		declare("HassMediaUnpause", "Unpauses a media player", mediaSlots()),
		declare("HassMediaNext", "Skips to the next item on a media player", mediaSlots()),
		declare("HassMediaPrevious", "Skips to the previous item on a media player", mediaSlots()),
		declare("HassSetVolume", "Sets the volume of a media player", map[string]*genai.Schema{
			"name":         str("Name of the media player"),
			"area":         str("Name of the area"),
			"volume_level": integer("Volume level from 0 to 100"),
		}),
		declare("HassMediaPlayerMute", "Mutes a media player", map[string]*genai.Schema{
			"name": str("Name of the media player"),
		}),
		declare("HassMediaPlayerUnmute", "Unmutes a media player", map[string]*genai.Schema{
			"name": str("Name of the media player"),
		}),
		declare("HassSetVolumeRelative", "Increases or decreases the volume of a media player", map[string]*genai.Schema{
			"name":        str("Name of the media player"),
			"area":        str("Name of the area"),
			"volume_step": integer("Volume step from -100 to 100 (negative to decrease)"),
		}),
		declare("HassMediaSearchAndPlay", "Searches for and plays media on a media player", map[string]*genai.Schema{
			"name":         str("Name of the media player"),
			"area":         str("Name of the area"),
			"search_query": str("Search query for the media to play"),
			"media_class":  str("Type of media (album, artist, track, playlist, etc.)"),
		}),

		// Household.
		declare("HassFanSetSpeed", "Sets the speed of a fan", map[string]*genai.Schema{
			"name":       str("Name of the fan"),
			"area":       str("Name of the area"),
			"floor":      str("Name of the floor"),
			"percentage": integer("Fan speed percentage from 0 to 100"),
		}),
		declare("HassVacuumStart", "Starts a vacuum cleaner", map[string]*genai.Schema{
			"name":  str("Name of the vacuum"),
			"area":  str("Name of the area"),
			"floor": str("Name of the floor"),
		}),
		declare("HassVacuumReturnToBase", "Returns a vacuum cleaner to its base", map[string]*genai.Schema{
			"name": str("Name of the vacuum"),
			"area": str("Name of the area"),
		}),
		declare("HassLawnMowerStartMowing", "Starts a lawn mower", map[string]*genai.Schema{
			"name": str("Name of the lawn mower"),
		}),
		declare("HassLawnMowerDock", "Sends a lawn mower to its dock", map[string]*genai.Schema{
			"name": str("Name of the lawn mower"),
		}),
		declare("HassListAddItem", "Adds an item to a todo list", map[string]*genai.Schema{
			"item": str("The item to add to the list"),
			"name": str("Name of the todo list"),
		}),
		declare("HassListCompleteItem", "Checks off an item on a todo list", map[string]*genai.Schema{
			"item": str("The item to check off"),
			"name": str("Name of the todo list"),
		}),
		declare("HassShoppingListAddItem", "Adds an item to the shopping list", map[string]*genai.Schema{
			"item": str("The item to add to the shopping list"),
		}),
		declare("HassShoppingListCompleteItem", "Checks off an item on the shopping list", map[string]*genai.Schema{
			"item": str("The item to check off"),
		}),

		// Additional utility.
		declare("HassRespond", "Returns a response to the user without taking any action", map[string]*genai.Schema{
			"response": str("The response text to return"),
		}),
		declare("HassBroadcast", "Announces a message on other voice satellites", map[string]*genai.Schema{
			"message": str("The message to broadcast"),
		}),
	}
}
