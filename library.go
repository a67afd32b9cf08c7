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


package namankura

import (
	"io"
	"log/slog"

	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/ai/openai"
	"github.com/namankura/namankura/astro"
	"github.com/namankura/namankura/discovery"
	"github.com/namankura/namankura/refresh"
	"github.com/namankura/namankura/seeding"
	"github.com/namankura/namankura/storage"
	"github.com/namankura/namankura/storage/badger"
)

// Library bundles the corpus database, the AI provider, and the astrology
// calculator behind a single open/close lifecycle.
type Library struct {
	backend    *badger.Backend
	nameRepo   storage.NameRepository
	provider   ai.Provider
	calculator astro.Calculator
	logger     *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	aiConfig   *ai.Config
	provider   ai.Provider
	calculator astro.Calculator
	inMemory   bool
}

// WithAIConfig selects the AI endpoints and models.
func WithAIConfig(config *ai.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a pre-built AI provider instead of the default
// OpenAI-compatible one. The library takes ownership and closes it.
func WithProvider(provider ai.Provider) LibraryOption {
	return func(o *libraryOptions) {
		o.provider = provider
	}
}

// WithCalculator replaces the default panchanga calculator.
func WithCalculator(calc astro.Calculator) LibraryOption {
	return func(o *libraryOptions) {
		o.calculator = calc
	}
}

// WithInMemory opens the corpus database in memory, discarded on close.
func WithInMemory() LibraryOption {
	return func(o *libraryOptions) {
		o.inMemory = true
	}
}

// OpenLibrary opens the corpus database at filePath and wires up the AI
// provider and astrology calculator.
func OpenLibrary(filePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		aiConfig:   ai.DefaultConfig(),
		calculator: astro.NewPanchanga(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	nameRepo, err := badger.NewNameRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			nameRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Library{
		backend:    backend,
		nameRepo:   nameRepo,
		provider:   provider,
		calculator: options.calculator,
		logger:     slog.Default(),
	}, nil
}

// Close releases the AI provider, repositories, and storage backend.
func (l *Library) Close() error {
	if err := l.provider.Close(); err != nil {
		l.logger.Error("error closing AI provider", "err", err)
	}

	if err := l.nameRepo.Close(); err != nil {
		l.logger.Error("error closing name repository", "err", err)
		return err
	}

	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// NameRepository exposes the corpus repository.
func (l *Library) NameRepository() storage.NameRepository {
	return l.nameRepo
}

// NewDiscoverer creates a discoverer bound to this library's corpus,
// provider, and calculator.
func (l *Library) NewDiscoverer(opts ...discovery.Option) (*discovery.Discoverer, error) {
	merged := append([]discovery.Option{discovery.WithCalculator(l.calculator)}, opts...)
	return discovery.NewDiscoverer(l.nameRepo, l.provider, merged...)
}

// NewSeedingPipeline creates a seeding pipeline bound to this library.
func (l *Library) NewSeedingPipeline(opts ...seeding.Option) (*seeding.Pipeline, error) {
	return seeding.NewPipeline(l.nameRepo, l.provider, opts...)
}

// NewRefresher creates a corpus refresher writing progress to the given
// writer.
func (l *Library) NewRefresher(config *refresh.Config, progress io.Writer) *refresh.Refresher {
	return refresh.NewRefresher(l.nameRepo, l.provider.Embedder(), config, progress)
}
