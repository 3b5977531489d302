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


package searchindex

import "errors"

var (
	// ErrEndpointRequired is returned when no search endpoint is provided.
	ErrEndpointRequired = errors.New("search endpoint required")

	// ErrKeyRequired is returned when no search API key is provided.
	ErrKeyRequired = errors.New("search key required")

	// ErrIndexNameRequired is returned when no index name is provided.
	ErrIndexNameRequired = errors.New("index name required")

	// ErrUnauthorized indicates the service rejected the API key.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the API key lacks the required permissions.
	ErrForbidden = errors.New("forbidden")

	// ErrNoSupportedAPIVersion indicates no probed API version was
	// accepted by the service.
	ErrNoSupportedAPIVersion = errors.New("no supported API version found")

	// ErrAPIVersionUnresolved indicates an operation was attempted before
	// ResolveAPIVersion succeeded.
	ErrAPIVersionUnresolved = errors.New("API version not resolved")

	// ErrInvalidDimension indicates a non-positive embedding dimension.
	ErrInvalidDimension = errors.New("invalid embedding dimension")
)
