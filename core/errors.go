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


package core

import "errors"

// Domain errors
var (
	// ErrInvalidChunkConfig indicates chunking parameters that cannot
	// produce a terminating sequence of chunks.
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")

	// ErrEmptyDocument indicates a document whose extracted text is empty.
	// Such documents are skipped rather than chunked.
	ErrEmptyDocument = errors.New("document text is empty")

	// ErrDimensionMismatch indicates an embedding whose length differs
	// from the dimension the index was provisioned with.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
