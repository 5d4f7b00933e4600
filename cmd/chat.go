package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/partchat/partchat/internal/chat"
	"github.com/partchat/partchat/internal/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the parts assistant in your terminal",
	Long:  `Starts an interactive terminal session with the parts assistant. Type a question and press enter; type "exit" or press Ctrl+C to quit.`,
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	provider, err := createProviderFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("creating provider: %w", err)
	}

	pipeline := chat.NewPipeline(provider, cfg.Model, cat)

	fmt.Printf("partchat %s — ask about refrigerator and dishwasher parts.\n", Version)
	fmt.Println(`Type "exit" to quit.`)
	fmt.Println()

	ctx := context.Background()
	conversationID := ""

	prompt := promptui.Prompt{
		Label: "you",
	}

	for {
		input, err := prompt.Run()
		if err != nil {
			// Ctrl+C or Ctrl+D ends the session.
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("Bye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Println("Bye!")
			return nil
		}

		envelope, err := pipeline.Process(ctx, input, conversationID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		conversationID = envelope.ConversationID

		fmt.Printf("\n%s\n\n", envelope.Message)

		if verbose {
			inTokens := llm.EstimateTokens(input)
			outTokens := llm.EstimateTokens(envelope.Message)
			cost := llm.EstimateCost(cfg.Model, inTokens, outTokens)
			fmt.Fprintf(os.Stderr, "[intent=%s tokens~%d/%d cost~$%.5f]\n",
				envelope.Type, inTokens, outTokens, cost)
		}
	}
}
