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

func ksizeProperty(defaultK int) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Square kernel size k (odd, >= 1)",
		"default":     defaultK,
	}
}

// objectSchema builds an object schema from properties. When withOutput is
// set the optional output_dir and output_prefix arguments are added.
func objectSchema(props map[string]interface{}, required []string, withOutput bool) map[string]interface{} {
	if withOutput {
		props["output_dir"] = map[string]interface{}{
			"type":        "string",
			"description": "Optional directory; result images are also saved there as PNG",
		}
		props["output_prefix"] = map[string]interface{}{
			"type":        "string",
			"description": "Optional file name prefix for saved images",
		}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// GetToolDefinitions returns all available tools. defaultK is advertised as
// the ksize default.
func GetToolDefinitions(defaultK int) []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and channel count. The decoded image is cached for later calls.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProperty(),
			}, []string{"path"}, false),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProperty(),
			}, []string{"path"}, false),
		},
		{
			Name:        "image_grayscale",
			Description: "Convert an image to 8-bit grayscale (BT.601 luminance) and return it as base64-encoded PNG.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProperty(),
			}, []string{"path"}, true),
		},

		// Morphology
		{
			Name:        "image_min_max_filter",
			Description: "Apply k×k max (dilation) and min (erosion) filters to the grayscale image. Optionally include histograms of the original, min and max images.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":  pathProperty(),
				"ksize": ksizeProperty(defaultK),
				"histograms": map[string]interface{}{
					"type":        "boolean",
					"description": "Include 256-bin histograms and means. Default false",
					"default":     false,
				},
			}, []string{"path"}, true),
		},
		{
			Name:        "image_boundary",
			Description: "Compute max, min and boundary (max minus min) images and report per-pixel deltas at sample points. Without samples, the corners, edge midpoints and center are used.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":  pathProperty(),
				"ksize": ksizeProperty(defaultK),
				"samples": map[string]interface{}{
					"type":        "array",
					"description": "Pixel coordinates to sample. Points outside the image are dropped",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x": map[string]interface{}{"type": "integer"},
							"y": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x", "y"},
					},
				},
			}, []string{"path"}, true),
		},
		{
			Name:        "image_boundary_strong_pixels",
			Description: "List the pixels with the strongest boundary (max minus min) response, strongest first.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":  pathProperty(),
				"ksize": ksizeProperty(defaultK),
				"top_n": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of pixels to return; 0 or less returns all. Default 50",
					"default":     defaultTopN,
				},
				"min_boundary": map[string]interface{}{
					"type":        "integer",
					"description": "Only keep pixels whose boundary value is at least this. Default 0",
					"default":     0,
				},
			}, []string{"path"}, false),
		},

		// Smoothing
		{
			Name:        "image_mean_filter",
			Description: "Apply a k×k mean (box) filter to the grayscale image and return it with the absolute difference to the input.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":  pathProperty(),
				"ksize": ksizeProperty(defaultK),
			}, []string{"path"}, true),
		},
		{
			Name:        "image_median_filter",
			Description: "Apply a k×k median filter to the grayscale image and return it with the absolute difference to the input.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":  pathProperty(),
				"ksize": ksizeProperty(defaultK),
			}, []string{"path"}, true),
		},

		// Edges, thresholds and statistics
		{
			Name:        "image_sobel",
			Description: "Compute the Sobel gradient magnitude of the grayscale image, scaled so the strongest edge is 255.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProperty(),
			}, []string{"path"}, true),
		},
		{
			Name:        "image_threshold",
			Description: "Binarize the grayscale image. Pixels above the threshold become 255. Without thresh, Otsu's method picks the level.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProperty(),
				"thresh": map[string]interface{}{
					"type":        "integer",
					"description": "Fixed threshold 0-255 (clamped). Omit for Otsu",
				},
			}, []string{"path"}, true),
		},
		{
			Name:        "image_histogram",
			Description: "Return 256-bin histograms of the grayscale image, each RGB channel and the binarized image, plus channel means and the mean color.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProperty(),
				"thresh": map[string]interface{}{
					"type":        "integer",
					"description": "Fixed threshold for the binary histogram. Omit for Otsu",
				},
			}, []string{"path"}, false),
		},
		{
			Name:        "image_block_stats",
			Description: "Mean, median, Otsu threshold and (for 3×3 blocks) Sobel Gx, Gy and |G| of a small block. Pass block directly, or path with x and y to use the 3×3 neighborhood of that pixel.",
			InputSchema: objectSchema(map[string]interface{}{
				"block": map[string]interface{}{
					"type":        "array",
					"description": "Rows of intensities, all the same length",
					"items": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "number"},
					},
				},
				"path": pathProperty(),
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "Center X coordinate (0-based, from left)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Center Y coordinate (0-based, from top)",
				},
			}, []string{}, false),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(s.cfg.DefaultKernelSize),
		},
	}
}
