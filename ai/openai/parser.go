// Copyright 2026 Namankura Authors
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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/namankura/namankura/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// WishParser implements ai.WishParser using OpenAI-compatible chat APIs.
type WishParser struct {
	client llms.Model
	logger *slog.Logger
}

// wish is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM; fields absent from the
// response stay nil, and extra fields are ignored.
type wish struct {
	Gender       *string  `json:"gender"`
	Syllables    *int     `json:"syllables"`
	Deity        *string  `json:"deity"`
	Sources      []string `json:"sources"`
	StartLetters []string `json:"start_letters"`
	Vibe         *string  `json:"vibe"`
}

// newWishParser is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newWishParser(config *ai.Config) (*WishParser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/parsing
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ParserHost),
		openai.WithToken("none"),
		openai.WithModel(config.ParserModel),
	)
	if err != nil {
		return nil, err
	}

	return &WishParser{
		client: client,
		logger: slog.Default().With("component", "openai-parser"),
	}, nil
}

// NewWishParser creates a new wish parser using the provided configuration.
//
// Returns ai.WishParser interface to enforce abstraction.
func NewWishParser(config *ai.Config) (ai.WishParser, error) {
	return newWishParser(config)
}

// ParseWish extracts a filter fragment from a free-text wish using an LLM.
// Model output that cannot be structured after retries is returned via the
// Raw field of the fragment, never as constraints.
func (p *WishParser) ParseWish(ctx context.Context, text string) (*ai.ParsedWish, error) {
	text = strings.TrimSpace(text)

	systemPrompt := buildSystemPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var parsed wish
	var lastErr error
	var lastResponse string
	for attempt := 0; attempt < 3; attempt++ {
		response, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			p.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			p.logger.Debug("no choices returned from model")
			return &ai.ParsedWish{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)
		lastResponse = responseText

		parsed = wish{}
		if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
			lastErr = err
			p.logger.Warn("error parsing model response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		// Non-parseable output is not a transport failure: hand the raw text
		// back so the caller can see what the model said, with no constraints.
		p.logger.Warn("model response unparseable after retries, returning raw payload", "err", lastErr)
		return &ai.ParsedWish{Raw: lastResponse}, nil
	}

	return p.toFragment(&parsed), nil
}

// toFragment converts the unmarshaled payload to an ai.ParsedWish, dropping
// values the schema does not recognize.
func (p *WishParser) toFragment(w *wish) *ai.ParsedWish {
	frag := &ai.ParsedWish{}

	if w.Gender != nil {
		gender := strings.ToLower(strings.TrimSpace(*w.Gender))
		if slices.Contains(ai.Genders, gender) {
			frag.Gender = &gender
		} else {
			p.logger.Debug("dropping unrecognized gender from parsed wish", "gender", *w.Gender)
		}
	}

	if w.Syllables != nil && *w.Syllables > 0 {
		frag.Syllables = w.Syllables
	}

	if w.Deity != nil {
		deity := strings.TrimSpace(*w.Deity)
		if deity != "" {
			frag.Deity = &deity
		}
	}

	frag.Sources = cleanList(w.Sources)
	frag.StartLetters = cleanList(w.StartLetters)

	if w.Vibe != nil {
		vibe := strings.ToLower(strings.TrimSpace(*w.Vibe))
		if vibe != "" {
			frag.Vibe = &vibe
		}
	}

	return frag
}

// cleanList trims entries and drops empties, preserving nil for "not expressed".
func cleanList(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
