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


// Package blob provides the document source for ingestion: listing and
// downloading PDF blobs from Azure Blob Storage, and extracting their
// plain text.
//
// The Source and Extractor interfaces keep the pipeline independent of
// Azure and of any particular PDF library, so tests can feed documents
// from memory.
package blob
