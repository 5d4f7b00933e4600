package catalog

import (
	"encoding/json"
	"regexp"
	"strings"
)

// PartRecord is a single replacement part as loaded from the catalog source.
// Records are immutable after load.
type PartRecord struct {
	PartNumber          string              `json:"part_number"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	Brand               string              `json:"brand"`
	Price               float64             `json:"price"`
	ApplianceType       string              `json:"appliance_type,omitempty"`
	CompatibleModels    []string            `json:"compatible_models"`
	SymptomsFixed       []string            `json:"symptoms_fixed"`
	InstallInstructions InstallInstructions `json:"install_instructions"`
	ProductURL          string              `json:"product_url"`
}

// CompatibleWith reports whether the given model number appears in the
// part's compatible-models list. Matching is case-insensitive and exact.
func (p *PartRecord) CompatibleWith(modelNumber string) bool {
	for _, m := range p.CompatibleModels {
		if strings.EqualFold(m, modelNumber) {
			return true
		}
	}
	return false
}

// InstallInstructions is an ordered list of installation steps. Catalog
// sources store instructions either as a JSON array of steps or as a single
// block of numbered text; both decode into the same normalized form.
type InstallInstructions []string

func (ii *InstallInstructions) UnmarshalJSON(data []byte) error {
	var steps []string
	if err := json.Unmarshal(data, &steps); err == nil {
		*ii = steps
		return nil
	}

	var block string
	if err := json.Unmarshal(data, &block); err != nil {
		return err
	}
	*ii = splitSteps(block)
	return nil
}

var (
	// stepMarker matches inline step numbers like " 2. " in one-line blocks.
	stepMarker = regexp.MustCompile(`\s*\d+[.)]\s+`)
	// leadingStep matches a step number at the start of a line.
	leadingStep = regexp.MustCompile(`^\d+[.)]\s*`)
)

// splitSteps breaks a block of numbered text into individual steps. Blocks
// may use newlines, numbered markers, or both.
func splitSteps(block string) []string {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}

	var raw []string
	if strings.Contains(block, "\n") {
		raw = strings.Split(block, "\n")
	} else {
		raw = stepMarker.Split(block, -1)
	}

	steps := make([]string, 0, len(raw))
	for _, s := range raw {
		s = leadingStep.ReplaceAllString(strings.TrimSpace(s), "")
		if s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}
