package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchPartsTool defines the search_parts MCP tool.
var searchPartsTool = mcp.NewTool("search_parts",
	mcp.WithDescription("Search the appliance part catalog by name, description, part number, or symptom. Returns up to five matching parts."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Free-text search query"),
	),
)

// getInstallationGuideTool defines the get_installation_guide MCP tool.
var getInstallationGuideTool = mcp.NewTool("get_installation_guide",
	mcp.WithDescription("Get the step-by-step installation instructions for a specific part."),
	mcp.WithString("part_number",
		mcp.Required(),
		mcp.Description("Catalog part number, e.g. PS11752778"),
	),
)

// checkCompatibilityTool defines the check_compatibility MCP tool.
var checkCompatibilityTool = mcp.NewTool("check_compatibility",
	mcp.WithDescription("Check whether a part is compatible with an appliance model number."),
	mcp.WithString("part_number",
		mcp.Required(),
		mcp.Description("Catalog part number"),
	),
	mcp.WithString("model_number",
		mcp.Required(),
		mcp.Description("Appliance model number, e.g. WDT780SAEM1"),
	),
)

// findPartsBySymptomTool defines the find_parts_by_symptom MCP tool.
var findPartsBySymptomTool = mcp.NewTool("find_parts_by_symptom",
	mcp.WithDescription("Find parts that fix a described appliance symptom, such as 'ice maker not working'."),
	mcp.WithString("symptom",
		mcp.Required(),
		mcp.Description("Description of the problem the appliance is having"),
	),
)
