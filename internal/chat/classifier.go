package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/partchat/partchat/internal/llm"
)

// classifyTimeout bounds the classification call so a slow provider cannot
// stall the request indefinitely.
const classifyTimeout = 10 * time.Second

const classifySystemPrompt = `You are an intent classifier for an appliance parts chat assistant.

Classify user queries into one of these intents:

1. "installation" - User asks how to install a part (e.g., "how do I install PS11752778?")
2. "compatibility" - User asks if a part works with their model (e.g., "does this work with WDT780SAEM1?")
3. "troubleshooting" - User describes a problem/symptom (e.g., "ice maker not working")
4. "product_search" - User wants to find parts (e.g., "show me dishwasher spray arms")
5. "out_of_scope" - ONLY if NOT about refrigerator/dishwasher parts (e.g., washing machines, ovens, general questions)

IMPORTANT: Be helpful! If it's about refrigerators or dishwashers, it's IN SCOPE.

Respond in JSON format:
{
  "type": "installation",
  "parameters": {
    "part_number": "PS11752778",
    "model_number": null,
    "symptom": null,
    "search_query": null
  },
  "confidence": 0.95
}`

// Classifier turns free-text user messages into structured intents using
// the inference provider.
type Classifier struct {
	provider llm.Provider
	model    string
}

// NewClassifier creates a new intent classifier.
func NewClassifier(provider llm.Provider, model string) *Classifier {
	return &Classifier{
		provider: provider,
		model:    model,
	}
}

// Classify sends the user message to the inference provider and parses the
// returned intent. Provider failures and unparseable output both surface as
// ErrClassification; no retry is performed.
func (c *Classifier) Classify(ctx context.Context, userText string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Model: c.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: classifySystemPrompt},
			{Role: llm.RoleUser, Content: userText},
		},
		MaxTokens:   500,
		Temperature: 0.1,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}

	intent, err := parseIntent(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}
	return intent, nil
}

// parseIntent decodes the provider output. It tries a direct decode first;
// if the model wrapped the JSON in prose or a code fence, it falls back to
// the first brace-delimited span. Total parse failure is an error, never a
// guess.
func parseIntent(content string) (*Intent, error) {
	var intent Intent
	if err := json.Unmarshal([]byte(content), &intent); err == nil {
		return normalizeIntent(&intent), nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in classifier output")
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &intent); err != nil {
		return nil, fmt.Errorf("decoding classifier output: %v", err)
	}
	return normalizeIntent(&intent), nil
}

func normalizeIntent(intent *Intent) *Intent {
	intent.Type = IntentType(strings.TrimSpace(strings.ToLower(string(intent.Type))))
	if intent.Confidence < 0 {
		intent.Confidence = 0
	}
	if intent.Confidence > 1 {
		intent.Confidence = 1
	}
	return intent
}
