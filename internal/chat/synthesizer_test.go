package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSynthesizeOutOfScopeShortCircuits(t *testing.T) {
	provider := &scriptedProvider{}
	s := NewSynthesizer(provider, "test-model")

	intent := &Intent{Type: IntentOutOfScope}
	msg, data, err := s.Synthesize(context.Background(), "what's the weather today", intent, &PartsResult{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if msg != OutOfScopeMessage {
		t.Errorf("message = %q, want canned refusal", msg)
	}
	if data != nil {
		t.Errorf("data = %v, want nil", data)
	}
	if provider.callCount() != 0 {
		t.Errorf("provider called %d times, want 0", provider.callCount())
	}
}

func TestSynthesizeGroundsToolResult(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"Here is how to install it."}}
	s := NewSynthesizer(provider, "test-model")

	cat := testCatalog(t)
	part, _ := cat.FindByPartNumber("PS11752778")
	tool := &InstallationResult{Part: part, InstallationSteps: part.InstallInstructions}

	intent := &Intent{Type: IntentInstallation}
	msg, data, err := s.Synthesize(context.Background(), "how do I install PS11752778", intent, tool)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if msg != "Here is how to install it." {
		t.Errorf("message = %q", msg)
	}
	if data != tool {
		t.Error("data should be the original tool result")
	}

	req := provider.call(t, 0)
	if !strings.Contains(req.Messages[0].Content, "PS11752778") {
		t.Error("system prompt should embed the serialized tool result")
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %f, want 0.7", req.Temperature)
	}
	if req.MaxTokens != 1000 {
		t.Errorf("max tokens = %d, want 1000", req.MaxTokens)
	}
}

func TestSynthesizeNilToolResult(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"reply"}}
	s := NewSynthesizer(provider, "test-model")

	intent := &Intent{Type: IntentProductSearch}
	_, data, err := s.Synthesize(context.Background(), "hi", intent, nil)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if data != nil {
		t.Errorf("data = %v, want nil", data)
	}
	req := provider.call(t, 0)
	if !strings.Contains(req.Messages[0].Content, "null") {
		t.Error("nil tool result should serialize as null in the prompt")
	}
}

func TestSynthesizeProviderFailure(t *testing.T) {
	provider := &scriptedProvider{errs: []error{fmt.Errorf("upstream 500")}}
	s := NewSynthesizer(provider, "test-model")

	intent := &Intent{Type: IntentTroubleshooting}
	_, _, err := s.Synthesize(context.Background(), "ice maker not working", intent, &PartsResult{})
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}
