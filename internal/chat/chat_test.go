package chat

import (
	"context"
	"sync"
	"testing"

	"github.com/partchat/partchat/internal/catalog"
	"github.com/partchat/partchat/internal/llm"
)

// scriptedProvider returns canned completions in call order. A nil error
// with an empty script entry yields an empty completion.
type scriptedProvider struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     []llm.CompletionRequest
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := len(p.calls)
	p.calls = append(p.calls, req)

	if i < len(p.errs) && p.errs[i] != nil {
		return nil, p.errs[i]
	}

	var content string
	if i < len(p.responses) {
		content = p.responses[i]
	}
	return &llm.CompletionResponse{
		Content:      content,
		InputTokens:  10,
		OutputTokens: 20,
		Model:        "test-model",
		FinishReason: "stop",
	}, nil
}

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func (p *scriptedProvider) call(t *testing.T, i int) llm.CompletionRequest {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	if i >= len(p.calls) {
		t.Fatalf("provider call %d not recorded (have %d)", i, len(p.calls))
	}
	return p.calls[i]
}

// hangingProvider blocks until the context is done, simulating a provider
// timeout.
type hangingProvider struct {
	mu    sync.Mutex
	calls int
}

func (p *hangingProvider) Name() string { return "hanging" }

func (p *hangingProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	<-ctx.Done()
	return nil, ctx.Err()
}

func (p *hangingProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return c
}
