package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/image-filter-mcp/internal/filter"
	"github.com/ironsheep/image-filter-mcp/internal/imaging"
)

// errInvalidArgs marks argument problems that are reported as invalid params
// rather than tool failures.
var errInvalidArgs = errors.New("invalid arguments")

// defaultTopN is the number of strong boundary pixels returned when top_n is omitted.
const defaultTopN = 50

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_boundary").
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
// Bad arguments, kernel sizes and blocks return -32602; other tool errors
// return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	fields := map[string]interface{}{
		"tool":        params.Name,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		s.log.Error(component, err, fields)
		if isInvalidParams(err) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	s.log.Info(component, "tool completed", fields)

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

// isInvalidParams reports whether err comes from the caller's arguments rather
// than from reading or processing the image.
func isInvalidParams(err error) bool {
	return errors.Is(err, errInvalidArgs) ||
		errors.Is(err, filter.ErrInvalidKernelSize) ||
		errors.Is(err, filter.ErrInvalidBlock)
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Validates the kernel size before touching the image
//  4. Loads the image from cache
//  5. Calls the matching imaging operation
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)

	// Morphology
	case "image_min_max_filter":
		return s.handleImageMinMaxFilter(args)
	case "image_boundary":
		return s.handleImageBoundary(args)
	case "image_boundary_strong_pixels":
		return s.handleImageBoundaryStrongPixels(args)

	// Smoothing
	case "image_mean_filter":
		return s.handleImageSmooth(args, imaging.SmoothMean)
	case "image_median_filter":
		return s.handleImageSmooth(args, imaging.SmoothMedian)

	// Edges, thresholds and statistics
	case "image_sobel":
		return s.handleImageSobel(args)
	case "image_threshold":
		return s.handleImageThreshold(args)
	case "image_histogram":
		return s.handleImageHistogram(args)
	case "image_block_stats":
		return s.handleImageBlockStats(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, tagging failures as invalid params.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

// kernelSize resolves an optional ksize argument against the configured
// default and maximum.
func (s *Server) kernelSize(k *int) (int, error) {
	size := s.cfg.DefaultKernelSize
	if k != nil {
		size = *k
	}
	if err := filter.ValidateKernelSize(size, s.cfg.MaxKernelSize); err != nil {
		return 0, err
	}
	return size, nil
}

// load fetches a decoded image from the cache.
func (s *Server) load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	return s.cache.Load(path)
}

// outputArgs are the optional arguments that save result images to disk.
type outputArgs struct {
	OutputDir    string `json:"output_dir"`
	OutputPrefix string `json:"output_prefix"`
}

func (a outputArgs) output() imaging.Output {
	return imaging.Output{Dir: a.OutputDir, Prefix: a.OutputPrefix}
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if _, err := s.load(a.Path); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if _, err := s.load(a.Path); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageGrayscaleArgs struct {
	Path string `json:"path"`
	outputArgs
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageGrayscaleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Grayscale(img, a.output())
}

// === Morphology Handlers ===

type imageMinMaxArgs struct {
	Path       string `json:"path"`
	KSize      *int   `json:"ksize"`
	Histograms bool   `json:"histograms"`
	outputArgs
}

func (s *Server) handleImageMinMaxFilter(args json.RawMessage) (interface{}, error) {
	var a imageMinMaxArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	k, err := s.kernelSize(a.KSize)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.MinMax(img, k, a.Histograms, a.output())
}

type imageBoundaryArgs struct {
	Path    string         `json:"path"`
	KSize   *int           `json:"ksize"`
	Samples []filter.Point `json:"samples"`
	outputArgs
}

func (s *Server) handleImageBoundary(args json.RawMessage) (interface{}, error) {
	var a imageBoundaryArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	k, err := s.kernelSize(a.KSize)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Boundary(img, k, a.Samples, a.output())
}

type imageStrongPixelsArgs struct {
	Path        string `json:"path"`
	KSize       *int   `json:"ksize"`
	TopN        *int   `json:"top_n"`
	MinBoundary int    `json:"min_boundary"`
}

func (s *Server) handleImageBoundaryStrongPixels(args json.RawMessage) (interface{}, error) {
	var a imageStrongPixelsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	k, err := s.kernelSize(a.KSize)
	if err != nil {
		return nil, err
	}
	topN := defaultTopN
	if a.TopN != nil {
		topN = *a.TopN
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.StrongBoundary(img, k, topN, a.MinBoundary)
}

// === Smoothing Handlers ===

type imageSmoothArgs struct {
	Path  string `json:"path"`
	KSize *int   `json:"ksize"`
	outputArgs
}

func (s *Server) handleImageSmooth(args json.RawMessage, kind string) (interface{}, error) {
	var a imageSmoothArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	k, err := s.kernelSize(a.KSize)
	if err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Smooth(img, kind, k, a.output())
}

// === Edge, Threshold and Statistics Handlers ===

func (s *Server) handleImageSobel(args json.RawMessage) (interface{}, error) {
	var a imageGrayscaleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SobelEdges(img, a.output())
}

type imageThresholdArgs struct {
	Path string `json:"path"`
	// Thresh selects a fixed threshold; omitted means Otsu.
	Thresh *int `json:"thresh"`
	outputArgs
}

func (s *Server) handleImageThreshold(args json.RawMessage) (interface{}, error) {
	var a imageThresholdArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Binarize(img, a.Thresh, a.output())
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageThresholdArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Histograms(img, a.Thresh)
}

type imageBlockStatsArgs struct {
	Block [][]float64 `json:"block"`
	Path  string      `json:"path"`
	X     *int        `json:"x"`
	Y     *int        `json:"y"`
}

func (s *Server) handleImageBlockStats(args json.RawMessage) (interface{}, error) {
	var a imageBlockStatsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Block != nil {
		return imaging.BlockStats(a.Block)
	}
	if a.X == nil || a.Y == nil {
		return nil, fmt.Errorf("%w: either block or path with x and y is required", errInvalidArgs)
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.BlockAt(img, *a.X, *a.Y)
}
