package chat

import (
	"strings"

	"github.com/partchat/partchat/internal/catalog"
)

// Dispatcher maps a classified intent to exactly one catalog operation.
type Dispatcher struct {
	catalog *catalog.Catalog
}

// NewDispatcher creates a dispatcher over the given catalog.
func NewDispatcher(cat *catalog.Catalog) *Dispatcher {
	return &Dispatcher{catalog: cat}
}

// Dispatch routes the intent to a catalog lookup and returns the tool
// result. It is total: out_of_scope returns nil (no tool invoked), and any
// unrecognized intent type falls back to a general search over the raw user
// text, so malformed classifier output still resolves to a defined action.
func (d *Dispatcher) Dispatch(intentType IntentType, userText string, params IntentParams) any {
	switch intentType {
	case IntentInstallation:
		return d.installationSteps(params)

	case IntentCompatibility:
		return d.checkCompatibility(params)

	case IntentTroubleshooting:
		return d.troubleshoot(params)

	case IntentProductSearch:
		return d.searchParts(params)

	case IntentOutOfScope:
		return nil

	default:
		return d.searchParts(IntentParams{SearchQuery: userText})
	}
}

func (d *Dispatcher) installationSteps(params IntentParams) any {
	if params.PartNumber == "" {
		return &ErrorResult{Error: "Part number not specified"}
	}

	part, ok := d.catalog.FindByPartNumber(params.PartNumber)
	if !ok {
		return &ErrorResult{Error: "Part not found", PartNumber: params.PartNumber}
	}

	return &InstallationResult{
		Part:              part,
		InstallationSteps: part.InstallInstructions,
	}
}

func (d *Dispatcher) checkCompatibility(params IntentParams) any {
	if params.PartNumber == "" || params.ModelNumber == "" {
		return &ErrorResult{Error: "Both part number and model number are required"}
	}

	res, ok := d.catalog.CheckCompatibility(params.PartNumber, params.ModelNumber)
	if !ok {
		return &ErrorResult{Error: "Part not found", PartNumber: params.PartNumber}
	}

	return &CompatibilityResult{
		Part:             res.Part,
		ModelNumber:      params.ModelNumber,
		IsCompatible:     res.IsCompatible,
		CompatibleModels: res.CompatibleModels,
	}
}

func (d *Dispatcher) troubleshoot(params IntentParams) any {
	query := params.Symptom
	if query == "" {
		query = params.SearchQuery
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return &PartsResult{Parts: []catalog.PartRecord{}}
	}

	parts := d.catalog.FindBySymptom(query)
	if parts == nil {
		parts = []catalog.PartRecord{}
	}
	return &PartsResult{Symptom: strings.ToLower(query), Parts: parts}
}

func (d *Dispatcher) searchParts(params IntentParams) any {
	if params.PartNumber != "" {
		if part, ok := d.catalog.FindByPartNumber(params.PartNumber); ok {
			return &PartsResult{Parts: []catalog.PartRecord{*part}}
		}
		return &PartsResult{Parts: []catalog.PartRecord{}}
	}

	if params.SearchQuery != "" {
		parts := d.catalog.Search(params.SearchQuery)
		if parts == nil {
			parts = []catalog.PartRecord{}
		}
		return &PartsResult{Parts: parts}
	}

	return &PartsResult{Parts: []catalog.PartRecord{}}
}
