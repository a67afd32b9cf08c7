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


// Package storage provides the storage abstraction layer for the name corpus.
//
// This package defines the repository interface that decouples the storage
// implementation from the discovery pipeline, so different backends
// (BadgerDB, in-memory) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the storage.NameRepository
// interface to enforce abstraction:
//
//	repo, err := badger.NewNameRepository(backend)  // returns storage.NameRepository
//
// Internal constructors may return concrete types since they're only used
// within the implementation package.
//
// # Corpus Order
//
// The corpus is an ordered collection: match results are emitted in the
// order records were first added. Implementations maintain an insertion
// sequence index and ListNames walks it.
//
// # Serialization
//
// Records are serialized with the MUS binary format. The serializers are
// generated into the core package (see cmd/musgen) and wrapped here with
// byte-slice helpers for the backends.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. All methods accept
// context.Context for cancellation and timeout support.
package storage
