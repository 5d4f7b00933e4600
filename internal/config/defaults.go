package config

// defaultModels maps each provider to its default chat model.
var defaultModels = map[ProviderType]string{
	ProviderDeepSeek: "deepseek-chat",
	ProviderOpenAI:   "gpt-4o-mini",
	ProviderOllama:   "llama3",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderDeepSeek,
		Model:             "deepseek-chat",
		CatalogInclude:    []string{"**/*.json"},
		RequestsPerMinute: 0,
		Server: ServerConfig{
			Port:     8080,
			AllowAll: false,
		},
	}
}

// DefaultModel returns the default chat model for the given provider.
// Falls back to the DeepSeek default for unknown providers.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderDeepSeek]
}
