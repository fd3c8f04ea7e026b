package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// candidateSchema describes one image candidate argument.
var candidateSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"url": map[string]interface{}{
			"type":        "string",
			"description": "Image URL (opaque, never fetched)",
		},
		"width": map[string]interface{}{
			"type":        "number",
			"description": "Intrinsic width in CSS pixels",
		},
		"height": map[string]interface{}{
			"type":        "number",
			"description": "Intrinsic height in CSS pixels (omit for SVG)",
		},
		"dppx": map[string]interface{}{
			"type":        "number",
			"description": "Device pixel density the asset targets (omit for SVG)",
		},
		"mime": map[string]interface{}{
			"type":        "string",
			"description": "MIME type; image/svg+xml marks a vector candidate",
		},
	},
	"required": []string{"url"},
}

func idProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Picture ID returned by picture_create",
	}
}

func sizeProperties(props map[string]interface{}) map[string]interface{} {
	props["width"] = map[string]interface{}{
		"type":        "number",
		"description": "Rendered width in CSS pixels",
	}
	props["height"] = map[string]interface{}{
		"type":        "number",
		"description": "Rendered height in CSS pixels",
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Lifecycle
		{
			Name:        "picture_create",
			Description: "Create a picture from image candidates (inline or from a manifest file) and return its ID with the provisional selection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"sources": map[string]interface{}{
						"type":        "array",
						"items":       candidateSchema,
						"description": "Image candidates in preference order",
					},
					"manifest": map[string]interface{}{
						"type":        "string",
						"description": "Path to a YAML/JSON manifest; inline arguments override its values",
					},
					"density": map[string]interface{}{
						"type":        "number",
						"description": "Density to target verbatim",
					},
					"device_pixel_ratio": map[string]interface{}{
						"type":        "number",
						"description": "Platform pixel ratio matched against the candidate densities",
					},
					"alt": map[string]interface{}{
						"type":        "string",
						"description": "Alt text passed through to the img element",
					},
					"class_name": map[string]interface{}{
						"type":        []string{"string", "array"},
						"description": "Extra classes for the wrapper div",
					},
					"class_name_image": map[string]interface{}{
						"type":        "string",
						"description": "Extra class for the img element",
					},
					"class_name_object": map[string]interface{}{
						"type":        "string",
						"description": "Extra class for the SVG object element",
					},
					"item_prop": map[string]interface{}{
						"type":        "string",
						"description": "itemprop value. Default \"image\"",
					},
				},
			},
		},
		{
			Name:        "picture_attach",
			Description: "Mount a picture on a host surface: subscribe to its resize reports and fit to the measured size. Omit width/height when the surface cannot be measured yet.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": sizeProperties(map[string]interface{}{
					"id": idProperty(),
					"target": map[string]interface{}{
						"type":        "string",
						"description": "Host surface name for resize reports. Defaults to the picture ID",
					},
				}),
				"required": []string{"id"},
			},
		},
		{
			Name:        "picture_resize",
			Description: "Report that a host surface changed size. Every picture attached to the surface refits.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": sizeProperties(map[string]interface{}{
					"target": map[string]interface{}{
						"type":        "string",
						"description": "Host surface name",
					},
				}),
				"required": []string{"target", "width", "height"},
			},
		},
		{
			Name:        "picture_refit",
			Description: "Measure an attached picture again, completing a pending first fit.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": sizeProperties(map[string]interface{}{
					"id": idProperty(),
				}),
				"required": []string{"id"},
			},
		},
		{
			Name:        "picture_detach",
			Description: "Tear a picture down: release its resize subscription and forget it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
				},
				"required": []string{"id"},
			},
		},

		// Presentation
		{
			Name:        "picture_state",
			Description: "Get a picture's current selection, phase and settled flag.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "picture_render",
			Description: "Render a picture's current selection as HTML markup.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
				},
				"required": []string{"id"},
			},
		},

		// Stateless helpers
		{
			Name:        "picture_select",
			Description: "Run selection once without creating a picture: the initial choice, plus the best fit when width and height are given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": sizeProperties(map[string]interface{}{
					"sources": map[string]interface{}{
						"type":  "array",
						"items": candidateSchema,
					},
					"density": map[string]interface{}{
						"type":        "number",
						"description": "Density to target verbatim",
					},
					"device_pixel_ratio": map[string]interface{}{
						"type":        "number",
						"description": "Platform pixel ratio matched against the candidate densities",
					},
				}),
				"required": []string{"sources"},
			},
		},
		{
			Name:        "picture_load_manifest",
			Description: "Load a manifest file and fill in candidate sizes by probing local image files.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the manifest file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
