package config

// ProviderType identifies an inference provider.
type ProviderType string

const (
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderOpenAI   ProviderType = "openai"
	ProviderOllama   ProviderType = "ollama"
)

// Config is the top-level partchat configuration, corresponding to
// .partchat.yml.
type Config struct {
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`

	// CatalogDir points at a directory of part data files; when empty the
	// embedded seed catalog is used. CatalogInclude selects the data files
	// within the directory.
	CatalogDir     string   `yaml:"catalog_dir" koanf:"catalog_dir"`
	CatalogInclude []string `yaml:"catalog_include" koanf:"catalog_include"`

	// RequestsPerMinute caps outbound inference calls; 0 disables limiting.
	RequestsPerMinute int `yaml:"requests_per_minute" koanf:"requests_per_minute"`

	Server ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
