package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/partchat/partchat/internal/llm"
)

// synthesizeTimeout bounds the generation call, mirroring the classifier's
// ceiling but allowing for the longer reply.
const synthesizeTimeout = 30 * time.Second

// OutOfScopeMessage is the fixed refusal for queries outside the assistant's
// domain. Out-of-scope replies never touch the inference provider.
const OutOfScopeMessage = "I'm here to help with refrigerator and dishwasher parts only. I can assist with finding parts, checking compatibility, installation instructions, and troubleshooting appliance issues. How can I help you with your refrigerator or dishwasher?"

const synthesizeSystemPrompt = `You are a helpful appliance parts customer support assistant specializing in refrigerator and dishwasher parts.

Your job is to:
1. Provide clear, friendly responses
2. Use the tool results to give accurate information
3. Format responses with proper structure (bullet points, numbered steps)
4. Always stay helpful and professional
5. If showing installation steps, format them as numbered steps
6. If showing multiple parts, briefly describe each one

Context from tools: %s

Respond in a conversational way, but keep it concise and actionable.`

// Synthesizer produces the user-facing reply from the original message, the
// classified intent, and the tool output.
type Synthesizer struct {
	provider llm.Provider
	model    string
}

// NewSynthesizer creates a new response synthesizer.
func NewSynthesizer(provider llm.Provider, model string) *Synthesizer {
	return &Synthesizer{
		provider: provider,
		model:    model,
	}
}

// Synthesize returns the reply message and the data payload to attach to
// the envelope. For out-of-scope intents it short-circuits to the canned
// refusal with nil data. Provider failures surface as ErrGeneration.
func (s *Synthesizer) Synthesize(ctx context.Context, userText string, intent *Intent, toolResult any) (string, any, error) {
	if intent.Type == IntentOutOfScope {
		return OutOfScopeMessage, nil, nil
	}

	grounding, err := json.Marshal(toolResult)
	if err != nil {
		return "", nil, fmt.Errorf("%w: serializing tool result: %v", ErrGeneration, err)
	}

	ctx, cancel := context.WithTimeout(ctx, synthesizeTimeout)
	defer cancel()

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: fmt.Sprintf(synthesizeSystemPrompt, grounding)},
			{Role: llm.RoleUser, Content: userText},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return strings.TrimSpace(resp.Content), toolResult, nil
}
