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


package ai

import (
	"errors"
	"strings"
)

// DefaultAPIVersion is the Azure OpenAI data-plane API version the
// embedder pins when none is configured.
const DefaultAPIVersion = "2024-02-15-preview"

// Config holds configuration for the embedding service.
type Config struct {
	// Endpoint is the base URL of the Azure OpenAI resource.
	// Example: "https://my-resource.openai.azure.com"
	Endpoint string

	// APIKey authenticates requests against the resource.
	APIKey string

	// Model is the embedding deployment name.
	// Example: "text-embedding-ada-002", "text-embedding-3-small"
	Model string

	// APIVersion selects the Azure OpenAI API version.
	// Defaults to DefaultAPIVersion when empty.
	APIVersion string

	// Dimension is the vector length the search index was provisioned
	// with. Every embedding is checked against it before upload.
	Dimension int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEndpoint sets the Azure OpenAI resource endpoint.
func WithEndpoint(endpoint string) ConfigOption {
	return func(c *Config) {
		c.Endpoint = endpoint
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithModel sets the embedding deployment name.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithAPIVersion overrides the Azure OpenAI API version.
func WithAPIVersion(version string) ConfigOption {
	return func(c *Config) {
		c.APIVersion = version
	}
}

// WithDimension sets the expected embedding vector length.
func WithDimension(dim int) ConfigOption {
	return func(c *Config) {
		c.Dimension = dim
	}
}

// DefaultDimension matches the output width of the ada-002 family of
// embedding models.
const DefaultDimension = 1536

// NewConfig creates a Config with defaults applied and then the provided
// options on top.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := &Config{
		APIVersion: DefaultAPIVersion,
		Dimension:  DefaultDimension,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize brings the configuration into canonical form: the endpoint
// loses its trailing slash and an empty API version falls back to the
// default.
func (c *Config) Normalize() {
	c.Endpoint = strings.TrimSuffix(c.Endpoint, "/")
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
}

// Validate checks that the configuration is complete.
// It normalizes the configuration before validating.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Endpoint == "" {
		return errors.New("ai config: Endpoint is required")
	}
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Dimension <= 0 {
		return errors.New("ai config: Dimension must be positive")
	}
	return nil
}
