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

package model

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

var _ Model = (*GeminiModel)(nil)

// GeminiModel generates responses through the Gemini API.
type GeminiModel struct {
	client *genai.Client
	name   string
}

// NewGeminiModel creates a Gemini-backed model. cfg may be nil, in
// which case credentials come from the environment.
func NewGeminiModel(ctx context.Context, model string, cfg *genai.ClientConfig) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("model: create gemini client: %w", err)
	}
	return &GeminiModel{client: client, name: model}, nil
}

// Name returns the Gemini model identifier.
func (m *GeminiModel) Name() string {
	return m.name
}

// Generate sends one utterance with the benchmark's system prompt and
// tool declarations.
func (m *GeminiModel) Generate(ctx context.Context, req *Request) (*Response, error) {
	if m.client == nil {
		return nil, fmt.Errorf("model: gemini client uninitialized")
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
	}
	if len(req.Tools) > 0 {
		config.Tools = []*genai.Tool{{FunctionDeclarations: req.Tools}}
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.name, genai.Text(req.Utterance), config)
	if err != nil {
		return nil, fmt.Errorf("model: generate: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("model: empty response")
	}

	content := resp.Candidates[0].Content
	out := &Response{Content: content}
	if content != nil {
		for _, part := range content.Parts {
			if part != nil {
				out.Text += part.Text
			}
		}
	}
	return out, nil
}
