package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/partchat/partchat/internal/catalog"
	"github.com/partchat/partchat/internal/llm"
)

// Pipeline sequences the three message-processing stages: intent
// classification, tool dispatch, and response synthesis.
type Pipeline struct {
	classifier  *Classifier
	dispatcher  *Dispatcher
	synthesizer *Synthesizer
}

// NewPipeline wires the pipeline stages over the given provider and catalog.
func NewPipeline(provider llm.Provider, model string, cat *catalog.Catalog) *Pipeline {
	return &Pipeline{
		classifier:  NewClassifier(provider, model),
		dispatcher:  NewDispatcher(cat),
		synthesizer: NewSynthesizer(provider, model),
	}
}

// Process runs one user message through the pipeline and returns the result
// envelope. Stages run strictly in order; a stage failure propagates to the
// caller with the failing stage identifiable via errors.Is against
// ErrClassification or ErrGeneration. A fresh conversation id is assigned
// only when the caller supplied none; ids are opaque and never stored.
func (p *Pipeline) Process(ctx context.Context, message, conversationID string) (*Envelope, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	intent, err := p.classifier.Classify(ctx, message)
	if err != nil {
		return nil, err
	}

	toolResult := p.dispatcher.Dispatch(intent.Type, message, intent.Parameters)

	reply, data, err := p.synthesizer.Synthesize(ctx, message, intent, toolResult)
	if err != nil {
		return nil, err
	}

	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	return &Envelope{
		Type:           string(intent.Type),
		Message:        reply,
		Data:           data,
		ConversationID: conversationID,
	}, nil
}
