package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

const deepseekBaseURL = "https://api.deepseek.com"

// DeepSeekProvider implements Provider using the DeepSeek chat completions
// API, which is OpenAI-compatible.
type DeepSeekProvider struct {
	client *openai.Client
	model  string
}

// NewDeepSeekProvider creates a new DeepSeek provider.
func NewDeepSeekProvider(apiKey string, model string) *DeepSeekProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = deepseekBaseURL
	client := openai.NewClientWithConfig(cfg)
	return &DeepSeekProvider{
		client: client,
		model:  model,
	}
}

func (p *DeepSeekProvider) Name() string {
	return "deepseek"
}

func (p *DeepSeekProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	resp, err := p.client.CreateChatCompletion(ctx, toChatCompletionRequest(req, p.model))
	if err != nil {
		return nil, err
	}
	return fromChatCompletionResponse(resp), nil
}

// toChatCompletionRequest converts a CompletionRequest into the wire request
// shared by all OpenAI-compatible providers.
func toChatCompletionRequest(req CompletionRequest, defaultModel string) openai.ChatCompletionRequest {
	model := req.Model
	if model == "" {
		model = defaultModel
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	var messages []openai.ChatCompletionMessage
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: float32(req.Temperature),
	}

	if req.JSONMode {
		apiReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	return apiReq
}

func fromChatCompletionResponse(resp openai.ChatCompletionResponse) *CompletionResponse {
	var content, finishReason string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
		finishReason = string(resp.Choices[0].FinishReason)
	}

	return &CompletionResponse{
		Content:      content,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
		FinishReason: finishReason,
	}
}
