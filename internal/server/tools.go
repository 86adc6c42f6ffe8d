package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func thresholdProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Luma below this value counts as dark (0-255). Default 80",
		"minimum":     0,
		"maximum":     255,
		"default":     80,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Low-light Operations
		{
			Name:        "image_low_light_mask",
			Description: "Detect dark regions by luma thresholding. Returns a black/white mask as base64 PNG (white = dark pixel) and the dark-pixel fraction.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_enhance_low_light",
			Description: "Equalize and sharpen the dark regions of an image, leaving well-lit pixels untouched. Returns the enhanced image and mask as base64 PNG, with lightness statistics. Optionally writes the results to a directory.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty(),
					"threshold": thresholdProperty(),
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Optional directory to save <name>_enhanced.png, <name>_mask.png and <name>_compare.png",
					},
					"include_images": map[string]interface{}{
						"type":        "boolean",
						"description": "Return base64 images in the response. Default true",
						"default":     true,
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
