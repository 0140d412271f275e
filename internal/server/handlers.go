package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ironsheep/color-assist-mcp/internal/classify"
	"github.com/ironsheep/color-assist-mcp/internal/colorspace"
	"github.com/ironsheep/color-assist-mcp/internal/config"
	"github.com/ironsheep/color-assist-mcp/internal/imaging"
	"github.com/ironsheep/color-assist-mcp/internal/ocr"
	"github.com/ironsheep/color-assist-mcp/internal/simulation"
	"github.com/ironsheep/color-assist-mcp/internal/watertest"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "color_classify").
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
// Bad arguments (anything wrapping colorspace.ErrInvalidArgument) return
// code -32602. Other tool failures return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	logger := s.log.With().Str("tool", params.Name).Logger()
	start := time.Now()

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, colorspace.ErrInvalidArgument) {
			logger.Warn().Err(err).Msg("rejected tool arguments")
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		logger.Error().Err(err).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	logger.Debug().Dur("elapsed", time.Since(start)).Msg("tool completed")

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
//  3. Loads images from cache as needed
//  4. Calls into simulation, classify, watertest or ocr
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)

	// Colorblindness Simulation
	case "colorblind_simulate":
		return s.handleColorblindSimulate(args)
	case "colorblind_simulate_color":
		return s.handleColorblindSimulateColor(args)

	// Color Naming
	case "color_classify":
		return s.handleColorClassify(args)

	// Water Testing
	case "water_test_interpret":
		return s.handleWaterTestInterpret(args)
	case "water_test_detect_kit":
		return s.handleWaterTestDetectKit(args)
	case "water_test_kinds":
		return s.handleWaterTestKinds(args)

	default:
		return nil, fmt.Errorf("%w: unknown tool: %s", colorspace.ErrInvalidArgument, name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments leave v untouched.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", colorspace.ErrInvalidArgument, err)
	}
	return nil
}

func invalidArgs(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", colorspace.ErrInvalidArgument, fmt.Sprintf(format, a...))
}

// regionArgs is an optional rectangle. Either all four corners are given or
// none.
type regionArgs struct {
	X1 *int `json:"x1"`
	Y1 *int `json:"y1"`
	X2 *int `json:"x2"`
	Y2 *int `json:"y2"`
}

func (r regionArgs) rect() (x1, y1, x2, y2 int, ok bool, err error) {
	set := 0
	for _, p := range []*int{r.X1, r.Y1, r.X2, r.Y2} {
		if p != nil {
			set++
		}
	}
	switch set {
	case 0:
		return 0, 0, 0, 0, false, nil
	case 4:
		return *r.X1, *r.Y1, *r.X2, *r.Y2, true, nil
	}
	return 0, 0, 0, 0, false, invalidArgs("region needs all of x1, y1, x2, y2")
}

// colorSourceArgs names a color directly or by tapping a photo.
type colorSourceArgs struct {
	Color  string `json:"color"`
	Path   string `json:"path"`
	X      *int   `json:"x"`
	Y      *int   `json:"y"`
	Radius *int   `json:"radius"`
}

// resolveColor returns the color the caller meant. sample is non-nil when
// the color came from a tap.
func (s *Server) resolveColor(a colorSourceArgs) (c colorspace.Color, sample *imaging.SampleResult, err error) {
	switch {
	case a.Color != "" && a.Path != "":
		return c, nil, invalidArgs("give either color or path, not both")
	case a.Color != "":
		c, err = colorspace.ParseHex(a.Color)
		return c, nil, err
	case a.Path != "":
		if a.X == nil || a.Y == nil {
			return c, nil, invalidArgs("x and y are required with path")
		}
		radius := s.cfg.SampleRadius
		if a.Radius != nil {
			radius = *a.Radius
		}
		if radius > config.MaxSampleRadius {
			return c, nil, invalidArgs("radius %d exceeds maximum %d", radius, config.MaxSampleRadius)
		}
		img, err := s.cache.Load(a.Path)
		if err != nil {
			return c, nil, err
		}
		sample, err = imaging.SampleColor(img, *a.X, *a.Y, radius)
		if err != nil {
			return c, nil, err
		}
		return sample.Color, sample, nil
	}
	return c, nil, invalidArgs("color or path is required")
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, invalidArgs("path is required")
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Colorblindness Simulation Handlers ===

type colorblindSimulateArgs struct {
	Path  string  `json:"path"`
	Mode  string  `json:"mode"`
	Scale float64 `json:"scale"`
	regionArgs
}

type colorblindSimulateResult struct {
	Mode string `json:"mode"`
	*imaging.EncodedImage
}

func (s *Server) handleColorblindSimulate(args json.RawMessage) (interface{}, error) {
	var a colorblindSimulateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, invalidArgs("path is required")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.Scale < 0 {
		return nil, invalidArgs("scale must be positive, got %g", a.Scale)
	}
	mode, err := simulation.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	x1, y1, x2, y2, hasRegion, err := a.rect()
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if hasRegion {
		if img, err = imaging.Crop(img, x1, y1, x2, y2); err != nil {
			return nil, err
		}
	}

	out, err := simulation.TransformBitmap(colorspace.BitmapFromImage(img), mode)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(out.ToNRGBA(), a.Scale)
	if err != nil {
		return nil, err
	}
	return &colorblindSimulateResult{Mode: mode.String(), EncodedImage: encoded}, nil
}

type colorblindSimulateColorArgs struct {
	Color string `json:"color"`
	Mode  string `json:"mode"`
}

type simulatedColor struct {
	Mode  string           `json:"mode"`
	Hex   string           `json:"hex"`
	Color colorspace.Color `json:"color"`
	Name  string           `json:"name"`
}

type colorblindSimulateColorResult struct {
	Input       string           `json:"input"`
	Name        string           `json:"name"`
	Simulations []simulatedColor `json:"simulations"`
}

func (s *Server) handleColorblindSimulateColor(args json.RawMessage) (interface{}, error) {
	var a colorblindSimulateColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := colorspace.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}

	var modes []simulation.Mode
	if a.Mode == "" {
		for _, m := range simulation.Modes() {
			if m != simulation.None {
				modes = append(modes, m)
			}
		}
	} else {
		m, err := simulation.ParseMode(a.Mode)
		if err != nil {
			return nil, err
		}
		modes = []simulation.Mode{m}
	}

	result := &colorblindSimulateColorResult{
		Input:       c.Hex(),
		Name:        classify.Classify(c),
		Simulations: make([]simulatedColor, 0, len(modes)),
	}
	for _, m := range modes {
		out, err := simulation.Apply(c, m)
		if err != nil {
			return nil, err
		}
		result.Simulations = append(result.Simulations, simulatedColor{
			Mode:  m.String(),
			Hex:   out.Hex(),
			Color: out,
			Name:  classify.Classify(out),
		})
	}
	return result, nil
}

// === Color Naming Handlers ===

type colorClassifyResult struct {
	Name         string                `json:"name"`
	Hex          string                `json:"hex"`
	Color        colorspace.Color      `json:"color"`
	HSV          colorspace.HSV        `json:"hsv"`
	Gray         bool                  `json:"gray"`
	PaletteIndex int                   `json:"palette_index"`
	Distance     float64               `json:"distance"`
	Sample       *imaging.SampleResult `json:"sample,omitempty"`
}

func (s *Server) handleColorClassify(args json.RawMessage) (interface{}, error) {
	var a colorSourceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, sample, err := s.resolveColor(a)
	if err != nil {
		return nil, err
	}

	m := classify.Nearest(c)
	return &colorClassifyResult{
		Name:         m.Name,
		Hex:          c.Hex(),
		Color:        c,
		HSV:          m.HSV,
		Gray:         m.Gray,
		PaletteIndex: m.Index,
		Distance:     m.Distance,
		Sample:       sample,
	}, nil
}

// === Water Testing Handlers ===

type waterTestInterpretArgs struct {
	Test string `json:"test"`
	colorSourceArgs
}

type waterTestInterpretResult struct {
	*watertest.Reading
	Summary string                `json:"summary"`
	Sample  *imaging.SampleResult `json:"sample,omitempty"`
}

func (s *Server) handleWaterTestInterpret(args json.RawMessage) (interface{}, error) {
	var a waterTestInterpretArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	kind, err := watertest.ParseKind(a.Test)
	if err != nil {
		return nil, err
	}
	c, sample, err := s.resolveColor(a.colorSourceArgs)
	if err != nil {
		return nil, err
	}

	reading, err := watertest.Analyze(kind, c)
	if err != nil {
		return nil, err
	}
	return &waterTestInterpretResult{
		Reading: reading,
		Summary: reading.Summary(),
		Sample:  sample,
	}, nil
}

type waterTestDetectKitArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	regionArgs
}

func (s *Server) handleWaterTestDetectKit(args json.RawMessage) (interface{}, error) {
	var a waterTestDetectKitArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, invalidArgs("path is required")
	}
	if a.Language == "" {
		a.Language = s.cfg.OCRLanguage
	}
	x1, y1, x2, y2, hasRegion, err := a.rect()
	if err != nil {
		return nil, err
	}

	if !hasRegion {
		return ocr.DetectKit(a.Path, a.Language)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return ocr.DetectKitInRegion(img, x1, y1, x2, y2, a.Language)
}

type waterTestKindInfo struct {
	Key           string           `json:"key"`
	Label         string           `json:"label"`
	Rules         []watertest.Rule `json:"rules"`
	Indeterminate string           `json:"indeterminate"`
}

func (s *Server) handleWaterTestKinds(args json.RawMessage) (interface{}, error) {
	kinds := watertest.Kinds()
	out := make([]waterTestKindInfo, 0, len(kinds))
	for _, k := range kinds {
		rules, indeterminate, ok := watertest.Rules(k)
		if !ok {
			return nil, fmt.Errorf("no rules for %s", k)
		}
		out = append(out, waterTestKindInfo{
			Key:           k.String(),
			Label:         k.Label(),
			Rules:         rules,
			Indeterminate: indeterminate,
		})
	}
	return map[string]interface{}{"kinds": out}, nil
}
