package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/ironsheep/voronoi-mcp/internal/imaging"
	"github.com/ironsheep/voronoi-mcp/internal/voronoi"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "voronoi_generate", "voronoi_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		slog.Info("tool call failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the diagram from cache, generating it if needed
//  4. Calls the appropriate imaging function on its raster
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Generation
	case "voronoi_generate":
		return s.handleGenerate(args)
	case "voronoi_save":
		return s.handleSave(args)

	// Inspection
	case "voronoi_regions":
		return s.handleRegions(args)
	case "voronoi_sample_color":
		return s.handleSampleColor(args)
	case "voronoi_coverage":
		return s.handleCoverage(args)

	// Rendering
	case "voronoi_outline":
		return s.handleOutline(args)
	case "voronoi_edges":
		return s.handleEdges(args)
	case "voronoi_crop":
		return s.handleCrop(args)
	case "voronoi_grid_overlay":
		return s.handleGridOverlay(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared diagram arguments ===

var errRegionsRequired = errors.New("regions is required")

// diagramArgs are accepted by every tool and select the diagram to work on.
type diagramArgs struct {
	Regions  *int   `json:"regions"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Seed     string `json:"seed"`
	Blocking string `json:"blocking"`
	Step     int    `json:"step"`
}

func (a diagramArgs) config() (voronoi.Config, error) {
	if a.Regions == nil {
		return voronoi.Config{}, errRegionsRequired
	}
	mode, err := voronoi.ParseBlockingMode(a.Blocking)
	if err != nil {
		return voronoi.Config{}, err
	}
	return voronoi.Config{
		Regions:  *a.Regions,
		Width:    a.Width,
		Height:   a.Height,
		Seed:     a.Seed,
		Blocking: mode,
		Step:     a.Step,
	}, nil
}

// diagram resolves a to a cached or freshly simulated diagram.
func (s *Server) diagram(a diagramArgs) (*Entry, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	return s.cache.Load(cfg)
}

// DiagramInfo summarizes a simulated diagram.
type DiagramInfo struct {
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	Seed              string  `json:"seed"`
	Blocking          string  `json:"blocking"`
	Regions           int     `json:"regions"`
	Ticks             int     `json:"ticks"`
	BackgroundPercent float64 `json:"background_percent"`
}

func describe(e *Entry) DiagramInfo {
	d := e.Diagram
	return DiagramInfo{
		Width:             d.Width(),
		Height:            d.Height(),
		Seed:              d.Seed(),
		Blocking:          d.Blocking().String(),
		Regions:           d.Len(),
		Ticks:             e.Ticks,
		BackgroundPercent: imaging.Coverage(e.Image, voronoi.Background).BackgroundPercent,
	}
}

func defaultScale(scale float64) float64 {
	if scale == 0 {
		return 1.0
	}
	return scale
}

// === Generation Handlers ===

type generateArgs struct {
	diagramArgs
	Scale  float64 `json:"scale"`
	Format string  `json:"format"`
}

// GenerateResult is a diagram summary with its encoded texture.
type GenerateResult struct {
	Diagram DiagramInfo `json:"diagram"`
	imaging.EncodedImage
}

func (s *Server) handleGenerate(args json.RawMessage) (interface{}, error) {
	var a generateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	format := strings.ToLower(a.Format)
	if format == "" {
		format = "png"
	}
	if format != "png" && format != "bmp" {
		return nil, fmt.Errorf("unsupported format %q: want png or bmp", a.Format)
	}

	e, err := s.diagram(a.diagramArgs)
	if err != nil {
		return nil, err
	}
	if e.Image.Bounds().Empty() {
		// Nothing to encode; report the summary alone
		return &GenerateResult{Diagram: describe(e)}, nil
	}
	enc, err := imaging.Encode(e.Image, format, defaultScale(a.Scale))
	if err != nil {
		return nil, err
	}
	return &GenerateResult{Diagram: describe(e), EncodedImage: *enc}, nil
}

type saveArgs struct {
	diagramArgs
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

// SaveResult reports a diagram written to disk.
type SaveResult struct {
	Diagram DiagramInfo `json:"diagram"`
	imaging.SaveResult
}

func (s *Server) handleSave(args json.RawMessage) (interface{}, error) {
	var a saveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	e, err := s.diagram(a.diagramArgs)
	if err != nil {
		return nil, err
	}
	saved, err := imaging.Save(e.Image, a.Path, defaultScale(a.Scale))
	if err != nil {
		return nil, err
	}
	slog.Info("diagram saved", "path", saved.Path, "seed", e.Diagram.Seed())
	return &SaveResult{Diagram: describe(e), SaveResult: *saved}, nil
}

// === Inspection Handlers ===

// RegionInfo describes one region of a finished diagram.
type RegionInfo struct {
	Index   int                 `json:"index"`
	X1      int                 `json:"x1"`
	Y1      int                 `json:"y1"`
	X2      int                 `json:"x2"`
	Y2      int                 `json:"y2"`
	Width   int                 `json:"width"`
	Height  int                 `json:"height"`
	Area    int                 `json:"area"`
	Growing bool                `json:"growing"`
	Color   imaging.ColorResult `json:"color"`
}

// RegionsResult lists a diagram's regions in insertion order.
type RegionsResult struct {
	Diagram DiagramInfo  `json:"diagram"`
	Regions []RegionInfo `json:"regions"`
}

func (s *Server) handleRegions(args json.RawMessage) (interface{}, error) {
	var a diagramArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	e, err := s.diagram(a)
	if err != nil {
		return nil, err
	}

	regions := e.Diagram.Regions()
	infos := make([]RegionInfo, len(regions))
	for i, r := range regions {
		b := r.Bounds()
		infos[i] = RegionInfo{
			Index:   i,
			X1:      b.Min.X,
			Y1:      b.Min.Y,
			X2:      b.Max.X,
			Y2:      b.Max.Y,
			Width:   b.Dx(),
			Height:  b.Dy(),
			Area:    r.Area(),
			Growing: r.Growing(),
			Color:   imaging.DescribeColor(r.Color()),
		}
	}
	return &RegionsResult{Diagram: describe(e), Regions: infos}, nil
}

type sampleColorArgs struct {
	diagramArgs
	X int `json:"x"`
	Y int `json:"y"`
}

// SampleResult is the colour of one pixel and the region that painted it.
type SampleResult struct {
	X      int                  `json:"x"`
	Y      int                  `json:"y"`
	Color  *imaging.ColorResult `json:"color"`
	Region int                  `json:"region"` // -1 for background
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	e, err := s.diagram(a.diagramArgs)
	if err != nil {
		return nil, err
	}
	c, err := imaging.SampleColor(e.Image, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &SampleResult{X: a.X, Y: a.Y, Color: c, Region: e.Diagram.RegionAt(a.X, a.Y)}, nil
}

type coverageArgs struct {
	diagramArgs
	Count int `json:"count"`
}

// RegionCoverage is how much of a region survives in the raster. Hidden
// counts pixels of the region's rectangle painted over by later regions.
type RegionCoverage struct {
	Index   int     `json:"index"`
	Hex     string  `json:"hex"`
	Area    int     `json:"area"`
	Visible int     `json:"visible"`
	Hidden  int     `json:"hidden"`
	Percent float64 `json:"percent"` // share of the canvas, 0-100
}

// CoverageResult reports background, per-region and per-colour coverage.
type CoverageResult struct {
	Diagram  DiagramInfo                   `json:"diagram"`
	Canvas   *imaging.CoverageResult       `json:"canvas"`
	Regions  []RegionCoverage              `json:"regions"`
	Dominant *imaging.DominantColorsResult `json:"dominant_colors"`
}

func (s *Server) handleCoverage(args json.RawMessage) (interface{}, error) {
	var a coverageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	e, err := s.diagram(a.diagramArgs)
	if err != nil {
		return nil, err
	}

	d := e.Diagram
	visible := make([]int, d.Len())
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			if i := d.RegionAt(x, y); i >= 0 {
				visible[i]++
			}
		}
	}

	canvas := imaging.Coverage(e.Image, voronoi.Background)
	regions := make([]RegionCoverage, d.Len())
	for i, r := range d.Regions() {
		rc := RegionCoverage{
			Index:   i,
			Hex:     imaging.DescribeColor(r.Color()).Hex,
			Area:    r.Area(),
			Visible: visible[i],
			Hidden:  r.Area() - visible[i],
		}
		if canvas.TotalPixels > 0 {
			rc.Percent = float64(visible[i]) / float64(canvas.TotalPixels) * 100
		}
		regions[i] = rc
	}

	dominant, err := imaging.DominantColors(e.Image, a.Count)
	if err != nil {
		return nil, err
	}

	return &CoverageResult{
		Diagram:  describe(e),
		Canvas:   canvas,
		Regions:  regions,
		Dominant: dominant,
	}, nil
}

// === Rendering Handlers ===

type outlineArgs struct {
	diagramArgs
	Color      string  `json:"color"`
	ShowLabels bool    `json:"show_labels"`
	Scale      float64 `json:"scale"`
}

func (s *Server) handleOutline(args json.RawMessage) (interface{}, error) {
	var a outlineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	scale := defaultScale(a.Scale)
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", scale)
	}
	e, err := s.diagram(a.diagramArgs)
	if err != nil {
		return nil, err
	}

	img := imaging.Scale(e.Image, scale)
	if img == image.Image(e.Image) {
		scale = 1
	}
	regions := e.Diagram.Regions()
	boxes := make([]image.Rectangle, len(regions))
	for i, r := range regions {
		boxes[i] = scaleRect(r.Bounds(), scale)
	}
	return imaging.Outline(img, boxes, a.Color, a.ShowLabels)
}

func scaleRect(r image.Rectangle, f float64) image.Rectangle {
	return image.Rect(
		int(float64(r.Min.X)*f), int(float64(r.Min.Y)*f),
		int(float64(r.Max.X)*f), int(float64(r.Max.Y)*f),
	)
}

type edgesArgs struct {
	diagramArgs
	Radius    float64 `json:"radius"`
	Threshold int     `json:"threshold"`
}

func (s *Server) handleEdges(args json.RawMessage) (interface{}, error) {
	var a edgesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Threshold < 0 || a.Threshold > 255 {
		return nil, fmt.Errorf("threshold must be 0-255, got %d", a.Threshold)
	}
	e, err := s.diagram(a.diagramArgs)
	if err != nil {
		return nil, err
	}
	return imaging.EdgeMap(e.Image, a.Radius, uint8(a.Threshold))
}

type cropArgs struct {
	diagramArgs
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Area  string  `json:"area"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleCrop(args json.RawMessage) (interface{}, error) {
	var a cropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	e, err := s.diagram(a.diagramArgs)
	if err != nil {
		return nil, err
	}
	if a.Area != "" {
		return imaging.CropNamed(e.Image, a.Area, defaultScale(a.Scale))
	}
	return imaging.Crop(e.Image, a.X1, a.Y1, a.X2, a.Y2, defaultScale(a.Scale))
}

type gridOverlayArgs struct {
	diagramArgs
	GridSpacing     int    `json:"grid_spacing"`
	ShowCoordinates bool   `json:"show_coordinates"`
	GridColor       string `json:"grid_color"`
}

func (s *Server) handleGridOverlay(args json.RawMessage) (interface{}, error) {
	var a gridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSpacing == 0 {
		a.GridSpacing = voronoi.DefaultCellSize
	}
	if a.GridColor == "" {
		a.GridColor = "#FF000080"
	}
	e, err := s.diagram(a.diagramArgs)
	if err != nil {
		return nil, err
	}
	return imaging.GridOverlay(e.Image, a.GridSpacing, a.ShowCoordinates, a.GridColor)
}
