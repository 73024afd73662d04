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

// Package model is the generation boundary of the benchmark: one
// utterance in, one response out. Tools are declared to the model so
// they appear in the request, but the benchmark never executes them.
package model

import (
	"context"

	"google.golang.org/genai"
)

// Request is a single benchmark generation.
type Request struct {
	// System is the assembled system prompt.
	System string

	// Utterance is the user's voice command.
	Utterance string

	// Tools are the intent declarations exposed to the model.
	Tools []*genai.FunctionDeclaration
}

// Response is the model's reply to one utterance.
type Response struct {
	// Content is the raw response content, carrying any function-call
	// parts.
	Content *genai.Content

	// Text is the concatenated text of the response, for models that
	// answer (or emit calls) in plain text.
	Text string
}

// Model generates responses for benchmark samples.
type Model interface {
	// Name identifies the model for result records.
	Name() string

	// Generate produces the response for one request.
	Generate(ctx context.Context, req *Request) (*Response, error)
}
