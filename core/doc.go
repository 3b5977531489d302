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


// Package core contains the domain model for document ingestion: documents,
// text chunks, index records, and the overlapping-window chunker.
//
// The chunker is the only piece of computation in this module that is not a
// call into an external service. It is a pure function: SplitText validates
// its configuration up front and then produces a lazy, restartable sequence
// of chunks in document order. Adjacent chunks share a fixed number of
// trailing/leading runes so that no semantic unit is cut without context on
// at least one side.
//
// Everything else here is small and stateless: identifier derivation from
// blob names, content hashing for change detection, and text normalization
// applied before chunking.
package core
