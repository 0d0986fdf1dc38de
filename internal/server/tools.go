package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// diagramSchema builds an input schema holding the diagram selection
// properties plus the tool's own. regions is always required.
func diagramSchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"regions": map[string]interface{}{
			"type":        "integer",
			"description": "Number of seed regions (0 gives a blank canvas)",
			"minimum":     0,
		},
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Canvas width in pixels. Default regions*15 when width and height are both omitted",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Canvas height in pixels. Default regions*15 when width and height are both omitted",
		},
		"seed": map[string]interface{}{
			"type":        "string",
			"description": "Seed text. The same seed and parameters always give the same diagram. Omit for a time-based seed (not cached)",
		},
		"blocking": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"per-edge", "single-flag"},
			"description": "per-edge stops only the side that touched; single-flag stops the whole region on first contact. Default per-edge",
			"default":     "per-edge",
		},
		"step": map[string]interface{}{
			"type":        "integer",
			"description": "Pixels each free side grows per tick. Default 1",
			"default":     1,
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"regions"}, required...),
	}
}

var scaleProperty = map[string]interface{}{
	"type":        "number",
	"description": "Optional nearest-neighbour scale factor (e.g., 4.0 to enlarge small diagrams). Default 1.0",
	"default":     1.0,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Generation
		{
			Name:        "voronoi_generate",
			Description: "Generate a square-expansion Voronoi texture: seeds grow as rectangles until they meet each other or the canvas edge. Returns a summary and the base64-encoded image.",
			InputSchema: diagramSchema(map[string]interface{}{
				"scale": scaleProperty,
				"format": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"png", "bmp"},
					"description": "Output image format. Default png",
					"default":     "png",
				},
			}),
		},
		{
			Name:        "voronoi_save",
			Description: "Generate a diagram and write it to a file. The format follows the extension (png, bmp, jpg, gif, tif).",
			InputSchema: diagramSchema(map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path of the output file",
				},
				"scale": scaleProperty,
			}, "path"),
		},

		// Inspection
		{
			Name:        "voronoi_regions",
			Description: "List every region of a diagram with its rectangle (x2,y2 exclusive), size, area and color.",
			InputSchema: diagramSchema(nil),
		},
		{
			Name:        "voronoi_sample_color",
			Description: "Get the color at a pixel of a diagram and the index of the region that painted it (-1 for background).",
			InputSchema: diagramSchema(map[string]interface{}{
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (0-based, from left)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (0-based, from top)",
				},
			}, "x", "y"),
		},
		{
			Name:        "voronoi_coverage",
			Description: "Report how much of the canvas is background, how many pixels each region shows after overlaps, and the dominant colors.",
			InputSchema: diagramSchema(map[string]interface{}{
				"count": map[string]interface{}{
					"type":        "integer",
					"description": "Number of dominant colors to return. Default 5",
					"default":     5,
				},
			}),
		},

		// Rendering
		{
			Name:        "voronoi_outline",
			Description: "Render a diagram with each region's rectangle outlined and optionally labelled with its index.",
			InputSchema: diagramSchema(map[string]interface{}{
				"color": map[string]interface{}{
					"type":        "string",
					"description": "Outline color in hex (#RRGGBB or #RRGGBBAA). Default black",
				},
				"show_labels": map[string]interface{}{
					"type":        "boolean",
					"description": "Draw each region's index at its center. Default false",
					"default":     false,
				},
				"scale": scaleProperty,
			}),
		},
		{
			Name:        "voronoi_edges",
			Description: "Compute a binary boundary map of a diagram: white pixels mark borders between regions and background.",
			InputSchema: diagramSchema(map[string]interface{}{
				"radius": map[string]interface{}{
					"type":        "number",
					"description": "Edge kernel radius. Default 1",
					"default":     1,
				},
				"threshold": map[string]interface{}{
					"type":        "integer",
					"description": "Minimum edge response (0-255) counted as an edge. Default 1",
					"default":     1,
				},
			}),
		},
		{
			Name:        "voronoi_crop",
			Description: "Crop a rectangle or a named area of a diagram and return it as base64-encoded PNG.",
			InputSchema: diagramSchema(map[string]interface{}{
				"x1": map[string]interface{}{
					"type":        "integer",
					"description": "Left edge X coordinate (0-based)",
				},
				"y1": map[string]interface{}{
					"type":        "integer",
					"description": "Top edge Y coordinate (0-based)",
				},
				"x2": map[string]interface{}{
					"type":        "integer",
					"description": "Right edge X coordinate (exclusive)",
				},
				"y2": map[string]interface{}{
					"type":        "integer",
					"description": "Bottom edge Y coordinate (exclusive)",
				},
				"area": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
					"description": "Named area to extract instead of x1,y1,x2,y2",
				},
				"scale": scaleProperty,
			}),
		},
		{
			Name:        "voronoi_grid_overlay",
			Description: "Draw a coordinate grid over a diagram to help locate regions and pixels.",
			InputSchema: diagramSchema(map[string]interface{}{
				"grid_spacing": map[string]interface{}{
					"type":        "integer",
					"description": "Grid line spacing in pixels. Default 15",
					"default":     15,
				},
				"show_coordinates": map[string]interface{}{
					"type":        "boolean",
					"description": "Label grid intersections with their coordinates. Default false",
					"default":     false,
				},
				"grid_color": map[string]interface{}{
					"type":        "string",
					"description": "Grid color in hex (#RRGGBBAA). Default #FF000080",
					"default":     "#FF000080",
				},
			}),
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
