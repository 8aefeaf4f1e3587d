package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marktplaats/client/internal/config"
)

func TestLoadWithoutConfigFile(t *testing.T) {
	// a missing config.yaml falls back to the built-in defaults
	cfg, err := config.Load()
	require.NoError(t, err)

	defaults := config.DefaultMarktplaats()
	assert.Equal(t, defaults.SearchURL, cfg.Marktplaats.SearchURL)
	assert.Equal(t, defaults.LinkBaseURL, cfg.Marktplaats.LinkBaseURL)
	assert.Equal(t, defaults.SellerProfileURL, cfg.Marktplaats.SellerProfileURL)
	assert.Equal(t, 15, cfg.Marktplaats.Timeout)
	assert.Equal(t, 5, cfg.Search.Limit)
}

func TestDefaultMarktplaats(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultMarktplaats()
	assert.Equal(t, "https://www.marktplaats.nl/lrp/api/search", cfg.SearchURL)
	assert.Equal(t, "https://link.marktplaats.nl", cfg.LinkBaseURL)
	assert.Equal(t, "https://www.marktplaats.nl/v/api/seller-profile", cfg.SellerProfileURL)
	assert.Positive(t, cfg.Timeout)
}
