package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setIngestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AZURE_SEARCH_ENDPOINT", "https://search.example.net/")
	t.Setenv("AZURE_SEARCH_KEY", "search-key")
	t.Setenv("AZURE_BLOB_CONNECTION_STRING", "UseDevelopmentStorage=true")
	t.Setenv("AZURE_BLOB_CONTAINER", "documents")
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://aoai.example.net")
	t.Setenv("AZURE_OPENAI_KEY", "openai-key")
	t.Setenv("AZURE_OPENAI_EMBEDDING_MODEL", "text-embedding-ada-002")

	// Optional variables cleared so defaults are observable.
	t.Setenv("AZURE_SEARCH_INDEX", "")
	t.Setenv("AZURE_EMBED_DIM", "")
	t.Setenv("AZURE_SEARCH_API_VERSION", "")
	t.Setenv("AZURE_OPENAI_API_VERSION", "")
}

func TestLoadIngest(t *testing.T) {
	setIngestEnv(t)

	cfg, err := LoadIngest()
	require.NoError(t, err)

	assert.Equal(t, "https://search.example.net", cfg.Search.Endpoint, "trailing slash stripped")
	assert.Equal(t, "team2-legal-doc-inde-2", cfg.Search.IndexName)
	assert.Equal(t, 1536, cfg.Search.Dimension)
	assert.Empty(t, cfg.Search.APIVersion)
	assert.Equal(t, "documents", cfg.Blob.Container)
	assert.Equal(t, "2024-02-15-preview", cfg.Embedding.APIVersion)
}

func TestLoadIngestOverrides(t *testing.T) {
	setIngestEnv(t)
	t.Setenv("AZURE_SEARCH_INDEX", "custom-index")
	t.Setenv("AZURE_EMBED_DIM", "3072")
	t.Setenv("AZURE_SEARCH_API_VERSION", "2023-11-01")
	t.Setenv("AZURE_OPENAI_API_VERSION", "2024-06-01")

	cfg, err := LoadIngest()
	require.NoError(t, err)

	assert.Equal(t, "custom-index", cfg.Search.IndexName)
	assert.Equal(t, 3072, cfg.Search.Dimension)
	assert.Equal(t, "2023-11-01", cfg.Search.APIVersion)
	assert.Equal(t, "2024-06-01", cfg.Embedding.APIVersion)
}

func TestLoadIngestMissingVariable(t *testing.T) {
	setIngestEnv(t)
	t.Setenv("AZURE_SEARCH_KEY", "")

	_, err := LoadIngest()
	require.ErrorIs(t, err, ErrMissingVariable)
	assert.Contains(t, err.Error(), "AZURE_SEARCH_KEY")
}

func TestLoadIngestRejectsBadDimension(t *testing.T) {
	setIngestEnv(t)
	t.Setenv("AZURE_EMBED_DIM", "-5")

	_, err := LoadIngest()
	assert.Error(t, err)
}

func TestLoadChat(t *testing.T) {
	t.Setenv("PROJECT_ENDPOINT", "https://project.example.net/")
	t.Setenv("AGENT_API_KEY", "agent-key")
	t.Setenv("ORCHESTRATOR_AGENT_ID", "asst_123")

	cfg, err := LoadChat()
	require.NoError(t, err)

	assert.Equal(t, "https://project.example.net", cfg.ProjectEndpoint)
	assert.Equal(t, "asst_123", cfg.AgentID)
	assert.Empty(t, cfg.APIVersion)
}

func TestLoadChatMissingAgentID(t *testing.T) {
	t.Setenv("PROJECT_ENDPOINT", "https://project.example.net")
	t.Setenv("AGENT_API_KEY", "agent-key")
	t.Setenv("ORCHESTRATOR_AGENT_ID", "")

	_, err := LoadChat()
	require.ErrorIs(t, err, ErrMissingVariable)
	assert.Contains(t, err.Error(), "ORCHESTRATOR_AGENT_ID")
}
