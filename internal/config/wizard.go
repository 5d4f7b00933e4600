package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .partchat.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to partchat! Let's configure your assistant.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select inference provider",
		Items: []string{"deepseek", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Chat model",
		Default: DefaultModel(provider),
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 3. Catalog directory. Blank keeps the embedded seed catalog.
	catalogPrompt := promptui.Prompt{
		Label:   "Catalog data directory (leave blank for the built-in catalog)",
		Default: "",
	}
	catalogDir, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: "8080",
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// Build the config.
	cfg := DefaultConfig()
	cfg.Provider = provider
	cfg.Model = strings.TrimSpace(model)
	cfg.CatalogDir = strings.TrimSpace(catalogDir)
	cfg.Server.Port = port

	// Check for API key.
	envVar := APIKeyEnvVar(provider)
	if envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running partchat.\n", envVar)
		}
	}

	// Save to .partchat.yml.
	configPath := ".partchat.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
