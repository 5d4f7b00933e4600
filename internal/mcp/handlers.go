package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/partchat/partchat/internal/catalog"
)

// handleSearchParts runs a free-text search over the part catalog.
func (s *Server) handleSearchParts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	parts := s.catalog.Search(query)
	if len(parts) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No parts found matching %q.", query)), nil
	}

	return mcp.NewToolResultText(formatParts(parts)), nil
}

// handleGetInstallationGuide returns the installation steps for a part.
func (s *Server) handleGetInstallationGuide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	partNumber, err := request.RequireString("part_number")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: part_number"), nil
	}

	part, ok := s.catalog.FindByPartNumber(partNumber)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("part %q not found in the catalog", partNumber)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Installation guide for %s (%s):\n", part.Name, part.PartNumber))
	if len(part.InstallInstructions) == 0 {
		sb.WriteString("No installation instructions are available for this part.\n")
	}
	for i, step := range part.InstallInstructions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	if part.ProductURL != "" {
		sb.WriteString(fmt.Sprintf("\nProduct page: %s\n", part.ProductURL))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleCheckCompatibility checks a part against an appliance model number.
func (s *Server) handleCheckCompatibility(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	partNumber, err := request.RequireString("part_number")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: part_number"), nil
	}
	modelNumber, err := request.RequireString("model_number")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: model_number"), nil
	}

	result, ok := s.catalog.CheckCompatibility(partNumber, modelNumber)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("part %q not found in the catalog", partNumber)), nil
	}

	if result.IsCompatible {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Yes: %s (%s) is compatible with model %s.",
			result.Part.Name, result.Part.PartNumber, modelNumber,
		)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"No: %s (%s) is not listed as compatible with model %s. Known compatible models: %s.",
		result.Part.Name, result.Part.PartNumber, modelNumber,
		strings.Join(result.CompatibleModels, ", "),
	)), nil
}

// handleFindPartsBySymptom searches parts by the symptom they fix.
func (s *Server) handleFindPartsBySymptom(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symptom, err := request.RequireString("symptom")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: symptom"), nil
	}

	parts := s.catalog.FindBySymptom(symptom)
	if len(parts) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No parts found that fix %q.", symptom)), nil
	}

	return mcp.NewToolResultText(formatParts(parts)), nil
}

// formatParts converts part records into a text listing for agent consumption.
func formatParts(parts []catalog.PartRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d part(s):\n", len(parts)))

	for i, p := range parts {
		sb.WriteString(fmt.Sprintf("\n--- Part %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Part number: %s\n", p.PartNumber))
		sb.WriteString(fmt.Sprintf("Name: %s\n", p.Name))
		if p.Brand != "" {
			sb.WriteString(fmt.Sprintf("Brand: %s\n", p.Brand))
		}
		if p.ApplianceType != "" {
			sb.WriteString(fmt.Sprintf("Appliance: %s\n", p.ApplianceType))
		}
		if p.Price > 0 {
			sb.WriteString(fmt.Sprintf("Price: $%.2f\n", p.Price))
		}
		if p.Description != "" {
			sb.WriteString(fmt.Sprintf("Description: %s\n", p.Description))
		}
		if len(p.SymptomsFixed) > 0 {
			sb.WriteString(fmt.Sprintf("Fixes: %s\n", strings.Join(p.SymptomsFixed, ", ")))
		}
		if p.ProductURL != "" {
			sb.WriteString(fmt.Sprintf("URL: %s\n", p.ProductURL))
		}
	}

	return sb.String()
}
