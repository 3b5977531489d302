package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, DefaultAPIVersion, cfg.APIVersion)
		assert.Equal(t, DefaultDimension, cfg.Dimension)
		assert.Empty(t, cfg.Endpoint)
	})

	t.Run("with endpoint and key", func(t *testing.T) {
		cfg := NewConfig(
			WithEndpoint("https://res.openai.azure.com"),
			WithAPIKey("secret"),
		)

		assert.Equal(t, "https://res.openai.azure.com", cfg.Endpoint)
		assert.Equal(t, "secret", cfg.APIKey)
	})

	t.Run("with model and version", func(t *testing.T) {
		cfg := NewConfig(
			WithModel("text-embedding-3-small"),
			WithAPIVersion("2024-06-01"),
		)

		assert.Equal(t, "text-embedding-3-small", cfg.Model)
		assert.Equal(t, "2024-06-01", cfg.APIVersion)
	})

	t.Run("with dimension", func(t *testing.T) {
		cfg := NewConfig(WithDimension(1024))

		assert.Equal(t, 1024, cfg.Dimension)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("strips trailing slash", func(t *testing.T) {
		cfg := NewConfig(WithEndpoint("https://res.openai.azure.com/"))
		cfg.Normalize()

		assert.Equal(t, "https://res.openai.azure.com", cfg.Endpoint)
	})

	t.Run("restores default api version", func(t *testing.T) {
		cfg := NewConfig()
		cfg.APIVersion = ""
		cfg.Normalize()

		assert.Equal(t, DefaultAPIVersion, cfg.APIVersion)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return NewConfig(
			WithEndpoint("https://res.openai.azure.com"),
			WithAPIKey("secret"),
			WithModel("text-embedding-ada-002"),
		)
	}

	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing endpoint", func(t *testing.T) {
		cfg := valid()
		cfg.Endpoint = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := valid()
		cfg.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := valid()
		cfg.Model = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive dimension", func(t *testing.T) {
		cfg := valid()
		cfg.Dimension = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("validate normalizes", func(t *testing.T) {
		cfg := valid()
		cfg.Endpoint = "https://res.openai.azure.com/"
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "https://res.openai.azure.com", cfg.Endpoint)
	})
}
