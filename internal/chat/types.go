package chat

import (
	"errors"

	"github.com/partchat/partchat/internal/catalog"
)

// IntentType is the fixed set of query categories the classifier produces.
type IntentType string

const (
	IntentInstallation    IntentType = "installation"
	IntentCompatibility   IntentType = "compatibility"
	IntentTroubleshooting IntentType = "troubleshooting"
	IntentProductSearch   IntentType = "product_search"
	IntentOutOfScope      IntentType = "out_of_scope"
)

// IntentParams holds the parameters the classifier extracted from the user
// message. All fields are optional.
type IntentParams struct {
	PartNumber  string `json:"part_number"`
	ModelNumber string `json:"model_number"`
	Symptom     string `json:"symptom"`
	SearchQuery string `json:"search_query"`
}

// Intent is the classifier's structured reading of a user message.
type Intent struct {
	Type       IntentType   `json:"type"`
	Parameters IntentParams `json:"parameters"`
	// Confidence is advisory only; it does not gate any behavior.
	Confidence float64 `json:"confidence"`
}

// Tool results. The shape varies by intent type; the dispatcher returns one
// of these (or nil for out-of-scope) and the synthesizer serializes it as
// grounding context.

// ErrorResult reports a lookup miss or a missing parameter. It is data, not
// a failure: the synthesizer narrates it conversationally.
type ErrorResult struct {
	Error      string `json:"error"`
	PartNumber string `json:"part_number,omitempty"`
}

// InstallationResult carries a part together with its installation steps.
type InstallationResult struct {
	Part              *catalog.PartRecord         `json:"part"`
	InstallationSteps catalog.InstallInstructions `json:"installation_steps"`
}

// CompatibilityResult reports whether a part fits a model.
type CompatibilityResult struct {
	Part             *catalog.PartRecord `json:"part"`
	ModelNumber      string              `json:"model_number"`
	IsCompatible     bool                `json:"is_compatible"`
	CompatibleModels []string            `json:"compatible_models"`
}

// PartsResult carries zero or more matching parts.
type PartsResult struct {
	Symptom string               `json:"symptom,omitempty"`
	Parts   []catalog.PartRecord `json:"parts"`
}

// Envelope is the pipeline's final result, returned to the transport layer.
type Envelope struct {
	Type           string `json:"type"`
	Message        string `json:"message"`
	Data           any    `json:"data"`
	ConversationID string `json:"conversation_id"`
}

// Sentinel errors identifying the failing pipeline stage.
var (
	// ErrEmptyMessage marks blank input; the transport layer rejects it
	// before the pipeline runs.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrClassification marks an inference failure or unparseable output
	// during intent classification.
	ErrClassification = errors.New("intent classification failed")
	// ErrGeneration marks an inference failure during response synthesis.
	ErrGeneration = errors.New("response generation failed")
)
