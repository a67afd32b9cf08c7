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


// Package seeding loads name records into the corpus and enriches them.
//
// Seeding is the only write path into the corpus. Records are validated and
// stored synchronously so corpus order is deterministic; meaning embeddings
// are generated afterwards on a worker pool, since discovery works without
// vectors and kindred search simply skips records that lack them.
package seeding
