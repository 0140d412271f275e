package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var modeProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"none", "protanopia", "deuteranopia", "tritanopia"},
	"description": "Color-vision deficiency to simulate",
}

// colorSourceProperties describes a color given either as hex or as a tap on
// an image. Exactly one of color or path must be supplied.
func colorSourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"color": map[string]interface{}{
			"type":        "string",
			"description": "Color as #RRGGBB (or #RRGGBBAA). Use instead of path/x/y.",
		},
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to a photo of the test strip or swatch",
		},
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "Tap X coordinate (0-based, from left). Required with path.",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Tap Y coordinate (0-based, from top). Required with path.",
		},
		"radius": map[string]interface{}{
			"type":        "integer",
			"description": "Sampling radius in pixels around the tap. Defaults to the server setting (3); at most 64.",
		},
	}
}

func regionProperties(props map[string]interface{}) map[string]interface{} {
	props["x1"] = map[string]interface{}{
		"type":        "integer",
		"description": "Optional region left edge X coordinate (0-based)",
	}
	props["y1"] = map[string]interface{}{
		"type":        "integer",
		"description": "Optional region top edge Y coordinate (0-based)",
	}
	props["x2"] = map[string]interface{}{
		"type":        "integer",
		"description": "Optional region right edge X coordinate (exclusive)",
	}
	props["y2"] = map[string]interface{}{
		"type":        "integer",
		"description": "Optional region bottom edge Y coordinate (exclusive)",
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	testProps := colorSourceProperties()
	testProps["test"] = map[string]interface{}{
		"type":        "string",
		"description": "Water test: ph, ammonia, nitrite, nitrate or chlorophyll (menu labels such as \"pH Test\" are accepted)",
	}

	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for later taps.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Colorblindness Simulation
		{
			Name:        "colorblind_simulate",
			Description: "Render an image as seen with protanopia, deuteranopia or tritanopia and return it as base64-encoded PNG. An optional region limits the output to part of the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": regionProperties(map[string]interface{}{
					"path": pathProperty,
					"mode": modeProperty,
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied to the output (e.g., 0.5 to halve). Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path", "mode"},
			},
		},
		{
			Name:        "colorblind_simulate_color",
			Description: "Show how a single color appears under a color-vision deficiency. Omit mode to get every deficiency at once.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RRGGBB (or #RRGGBBAA)",
					},
					"mode": modeProperty,
				},
				"required": []string{"color"},
			},
		},

		// Color Naming
		{
			Name:        "color_classify",
			Description: "Name a color using the perceptual palette. Give a hex color, or a photo path and tap coordinates to average the pixels around the tap.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": colorSourceProperties(),
			},
		},

		// Water Testing
		{
			Name:        "water_test_interpret",
			Description: "Interpret a water-test strip or vial color. Classifies the color, then returns the judgment for the selected test.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": testProps,
				"required":   []string{"test"},
			},
		},
		{
			Name:        "water_test_detect_kit",
			Description: "Read the label on a test-kit photo with OCR and report which water test it is for.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": regionProperties(map[string]interface{}{
					"path": pathProperty,
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Defaults to the server setting (eng).",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "water_test_kinds",
			Description: "List the supported water tests with their labels and interpretation rules.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
