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


package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SearchConfig configures the Azure AI Search connection.
type SearchConfig struct {
	Endpoint   string
	APIKey     string
	IndexName  string
	Dimension  int
	APIVersion string // optional; empty means probe the service
}

// BlobConfig configures the source blob container.
type BlobConfig struct {
	ConnectionString string
	Container        string
}

// EmbeddingConfig configures the Azure OpenAI embedding deployment.
type EmbeddingConfig struct {
	Endpoint   string
	APIKey     string
	Model      string
	APIVersion string
}

// IngestConfig is everything the ingest binary needs.
type IngestConfig struct {
	Search    SearchConfig
	Blob      BlobConfig
	Embedding EmbeddingConfig
}

// ChatConfig is everything the chat binary needs.
type ChatConfig struct {
	ProjectEndpoint string
	APIKey          string
	AgentID         string
	APIVersion      string // optional
}

// LoadIngest reads the ingestion configuration from the environment.
// Required variables that are unset fail fast with ErrMissingVariable
// naming the variable.
func LoadIngest() (*IngestConfig, error) {
	cfg := &IngestConfig{
		Search: SearchConfig{
			IndexName:  getEnv("AZURE_SEARCH_INDEX", "team2-legal-doc-inde-2"),
			Dimension:  getEnvInt("AZURE_EMBED_DIM", 1536),
			APIVersion: os.Getenv("AZURE_SEARCH_API_VERSION"),
		},
	}

	var err error
	if cfg.Search.Endpoint, err = requireEnv("AZURE_SEARCH_ENDPOINT"); err != nil {
		return nil, err
	}
	cfg.Search.Endpoint = strings.TrimSuffix(cfg.Search.Endpoint, "/")
	if cfg.Search.APIKey, err = requireEnv("AZURE_SEARCH_KEY"); err != nil {
		return nil, err
	}
	if cfg.Blob.ConnectionString, err = requireEnv("AZURE_BLOB_CONNECTION_STRING"); err != nil {
		return nil, err
	}
	if cfg.Blob.Container, err = requireEnv("AZURE_BLOB_CONTAINER"); err != nil {
		return nil, err
	}
	if cfg.Embedding.Endpoint, err = requireEnv("AZURE_OPENAI_ENDPOINT"); err != nil {
		return nil, err
	}
	if cfg.Embedding.APIKey, err = requireEnv("AZURE_OPENAI_KEY"); err != nil {
		return nil, err
	}
	if cfg.Embedding.Model, err = requireEnv("AZURE_OPENAI_EMBEDDING_MODEL"); err != nil {
		return nil, err
	}
	cfg.Embedding.APIVersion = getEnv("AZURE_OPENAI_API_VERSION", "2024-02-15-preview")

	if cfg.Search.Dimension <= 0 {
		return nil, fmt.Errorf("AZURE_EMBED_DIM must be positive, got %d", cfg.Search.Dimension)
	}
	return cfg, nil
}

// LoadChat reads the chat relay configuration from the environment.
func LoadChat() (*ChatConfig, error) {
	cfg := &ChatConfig{
		APIVersion: os.Getenv("AGENT_API_VERSION"),
	}

	var err error
	if cfg.ProjectEndpoint, err = requireEnv("PROJECT_ENDPOINT"); err != nil {
		return nil, err
	}
	cfg.ProjectEndpoint = strings.TrimSuffix(cfg.ProjectEndpoint, "/")
	if cfg.APIKey, err = requireEnv("AGENT_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.AgentID, err = requireEnv("ORCHESTRATOR_AGENT_ID"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingVariable, key)
	}
	return v, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
