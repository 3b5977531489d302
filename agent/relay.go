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

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultPollInterval is how often a pending run is re-checked.
const DefaultPollInterval = 500 * time.Millisecond

// DefaultAPIVersion is the Azure OpenAI API version used for agent
// calls unless configured otherwise.
const DefaultAPIVersion = "2024-05-01-preview"

// conversation is the subset of the Azure OpenAI assistants surface the
// relay needs. *openai.Client satisfies it.
type conversation interface {
	CreateThread(ctx context.Context, request openai.ThreadRequest) (openai.Thread, error)
	CreateMessage(ctx context.Context, threadID string, request openai.MessageRequest) (openai.Message, error)
	CreateRun(ctx context.Context, threadID string, request openai.RunRequest) (openai.Run, error)
	RetrieveRun(ctx context.Context, threadID, runID string) (openai.Run, error)
	ListMessage(ctx context.Context, threadID string, limit *int, order *string, after *string, before *string, runID *string) (openai.MessagesList, error)
}

// Relay holds one conversation with a hosted orchestrator agent. All
// questions asked through the same Relay share a thread, so the agent
// keeps context across turns.
type Relay struct {
	client       conversation
	agentID      string
	threadID     string
	pollInterval time.Duration
	logger       *slog.Logger
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

// WithPollInterval sets how often a pending run is polled.
func WithPollInterval(interval time.Duration) RelayOption {
	return func(r *Relay) {
		if interval > 0 {
			r.pollInterval = interval
		}
	}
}

// WithLogger sets the relay's logger.
func WithLogger(logger *slog.Logger) RelayOption {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger.With("component", "agent")
		}
	}
}

// NewRelay creates a relay talking to the agent hosted at endpoint.
// apiVersion may be empty, in which case DefaultAPIVersion is used.
func NewRelay(endpoint, apiKey, agentID, apiVersion string, opts ...RelayOption) (*Relay, error) {
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if agentID == "" {
		return nil, ErrMissingAgentID
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	cfg := openai.DefaultAzureConfig(apiKey, strings.TrimSuffix(endpoint, "/"))
	cfg.APIVersion = apiVersion

	r := &Relay{
		client:       openai.NewClientWithConfig(cfg),
		agentID:      agentID,
		pollInterval: DefaultPollInterval,
		logger:       slog.Default().With("component", "agent"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// newRelayWithClient is the test seam.
func newRelayWithClient(client conversation, agentID string, opts ...RelayOption) *Relay {
	r := &Relay{
		client:       client,
		agentID:      agentID,
		pollInterval: DefaultPollInterval,
		logger:       slog.Default().With("component", "agent"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start opens the conversation thread. It must be called once before
// Ask.
func (r *Relay) Start(ctx context.Context) error {
	thread, err := r.client.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		return fmt.Errorf("error creating thread: %w", err)
	}
	r.threadID = thread.ID
	r.logger.Debug("thread created", "thread", r.threadID)
	return nil
}

// Ask posts one user message, runs the agent over the thread, and
// returns the assistant's reply for that run.
func (r *Relay) Ask(ctx context.Context, text string) (string, error) {
	if r.threadID == "" {
		return "", ErrNoThread
	}

	_, err := r.client.CreateMessage(ctx, r.threadID, openai.MessageRequest{
		Role:    string(openai.ThreadMessageRoleUser),
		Content: text,
	})
	if err != nil {
		return "", fmt.Errorf("error posting message: %w", err)
	}

	run, err := r.client.CreateRun(ctx, r.threadID, openai.RunRequest{
		AssistantID: r.agentID,
	})
	if err != nil {
		return "", fmt.Errorf("error starting run: %w", err)
	}

	run, err = r.waitForRun(ctx, run)
	if err != nil {
		return "", err
	}

	return r.replyForRun(ctx, run.ID)
}

// waitForRun polls until the run reaches a terminal state.
func (r *Relay) waitForRun(ctx context.Context, run openai.Run) (openai.Run, error) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		switch run.Status {
		case openai.RunStatusCompleted:
			return run, nil
		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired:
			if run.LastError != nil {
				return run, fmt.Errorf("%w: %s: %s", ErrRunFailed, run.Status, run.LastError.Message)
			}
			return run, fmt.Errorf("%w: %s", ErrRunFailed, run.Status)
		case openai.RunStatusQueued, openai.RunStatusInProgress:
			// keep polling
		default:
			return run, fmt.Errorf("%w: unexpected status %s", ErrRunFailed, run.Status)
		}

		select {
		case <-ctx.Done():
			return run, ctx.Err()
		case <-ticker.C:
		}

		var err error
		run, err = r.client.RetrieveRun(ctx, r.threadID, run.ID)
		if err != nil {
			return run, fmt.Errorf("error polling run: %w", err)
		}
	}
}

// replyForRun fetches the assistant messages produced by one run and
// joins their text parts.
func (r *Relay) replyForRun(ctx context.Context, runID string) (string, error) {
	order := "asc"
	list, err := r.client.ListMessage(ctx, r.threadID, nil, &order, nil, nil, &runID)
	if err != nil {
		return "", fmt.Errorf("error listing messages: %w", err)
	}

	var parts []string
	for _, msg := range list.Messages {
		if msg.Role != string(openai.ChatMessageRoleAssistant) {
			continue
		}
		for _, content := range msg.Content {
			if content.Text != nil && content.Text.Value != "" {
				parts = append(parts, content.Text.Value)
			}
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyReply
	}
	return strings.Join(parts, "\n"), nil
}
