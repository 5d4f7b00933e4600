package cmd

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "partchat",
	Short: "Conversational assistant for appliance parts",
	Long: `Partchat answers questions about refrigerator and dishwasher parts:
installation guidance, model compatibility, troubleshooting, and part
search. It pairs an LLM with a deterministic catalog so every answer
is grounded in real part data, and serves the conversation over HTTP,
WebSocket, a terminal REPL, or MCP.`,
}

func Execute() error {
	loadDotEnv()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".partchat.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadDotEnv loads a .env file from the working directory if present, so
// API keys can live alongside the config file during development.
func loadDotEnv() {
	path := filepath.Join(".", ".env")
	if _, err := os.Stat(path); err == nil {
		_ = godotenv.Load(path)
	}
}
