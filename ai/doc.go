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


// Package ai provides abstractions for the AI services used in Namankura.
//
// This package defines interfaces for wish parsing and text embeddings.
// It follows the dependency inversion principle, allowing the discovery
// pipeline to depend on abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - WishParser: Extracts a structured filter fragment from a free-text wish
//   - Embedder: Generates vector embeddings from meaning text
//   - Provider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewWishParser, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Test utility constructors (mock.NewMockWishParser, mock.NewMockEmbedder)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public fields and methods (CallCount, ParseWishFunc, Reset).
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	frag, err := provider.WishParser().ParseWish(ctx, "a short modern boy name meaning light")
//
// A fragment returned by ParseWish is best-effort: fields the wish never
// mentioned stay nil, and output the model failed to structure is surfaced
// through the Raw field rather than as invented constraints.
package ai
