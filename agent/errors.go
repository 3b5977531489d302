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


package agent

import "errors"

var (
	// ErrMissingEndpoint indicates no project endpoint was provided.
	ErrMissingEndpoint = errors.New("project endpoint is required")

	// ErrMissingAPIKey indicates no API key was provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingAgentID indicates no orchestrator agent id was provided.
	ErrMissingAgentID = errors.New("agent id is required")

	// ErrNoThread indicates Ask was called before Start.
	ErrNoThread = errors.New("no active thread; call Start first")

	// ErrRunFailed indicates the agent run ended in a terminal failure
	// state.
	ErrRunFailed = errors.New("agent run failed")

	// ErrEmptyReply indicates the run completed but produced no
	// assistant text.
	ErrEmptyReply = errors.New("agent returned no reply")
)
