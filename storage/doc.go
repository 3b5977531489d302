// Copyright 2025 Poiesic Systems
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


// Package storage defines the ingestion manifest repository and its
// serialization format.
//
// The manifest is local bookkeeping only: the search index remains the
// source of truth, and losing the manifest merely means the next run
// re-ingests everything. Public constructors in backend packages return
// the ManifestRepository interface so alternative backends can be
// swapped in without touching the pipeline.
//
// All repository methods accept context.Context for cancellation and
// must be safe for concurrent use.
package storage
