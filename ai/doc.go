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


// Package ai provides the embedding abstraction used by the ingestion
// pipeline.
//
// The Embedder interface decouples the pipeline from any particular
// embedding provider. Two implementations ship with this module:
//
//   - ai/openai: production implementation against an Azure OpenAI
//     embedding deployment
//   - ai/mock: deterministic test double for unit testing without an
//     external service
//
// Public constructors in the implementation packages return the ai.Embedder
// interface to enforce the abstraction; the mock constructor returns the
// concrete type so tests can inject behavior and make assertions.
package ai
