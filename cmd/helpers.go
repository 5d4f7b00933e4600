package cmd

import (
	"fmt"

	"github.com/partchat/partchat/internal/catalog"
	"github.com/partchat/partchat/internal/config"
	"github.com/partchat/partchat/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `partchat init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createProviderFromConfig creates an inference provider based on config
// settings, wrapping it in a rate limiter when one is configured.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	if cfg.RequestsPerMinute > 0 {
		provider = llm.NewRateLimitedProvider(provider, cfg.RequestsPerMinute)
	}
	return provider, nil
}

// buildCatalog loads part data from the configured directory, or the
// embedded seed catalog when no directory is set.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogDir == "" {
		return catalog.LoadEmbedded()
	}
	return catalog.LoadDir(cfg.CatalogDir, cfg.CatalogInclude)
}
