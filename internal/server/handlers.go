package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/lowlight-enhancer/internal/enhance"
	"github.com/ironsheep/lowlight-enhancer/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_enhance_low_light").
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
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Str("tool", params.Name).Err(err).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Low-light Operations
	case "image_low_light_mask":
		return s.handleLowLightMask(args)
	case "image_enhance_low_light":
		return s.handleEnhanceLowLight(args)

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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Low-light Handlers ===

// LowLightMaskResult is returned by image_low_light_mask.
type LowLightMaskResult struct {
	Threshold    int                   `json:"threshold"`
	DarkPixels   int                   `json:"dark_pixels"`
	Pixels       int                   `json:"pixels"`
	DarkFraction float64               `json:"dark_fraction"`
	Mask         *imaging.EncodedImage `json:"mask"`
}

// EnhanceLowLightResult is returned by image_enhance_low_light.
type EnhanceLowLightResult struct {
	Threshold int                   `json:"threshold"`
	Stats     enhance.Stats         `json:"stats"`
	Enhanced  *imaging.EncodedImage `json:"enhanced,omitempty"`
	Mask      *imaging.EncodedImage `json:"mask,omitempty"`
	Saved     *imaging.Outputs      `json:"saved,omitempty"`
}

type lowLightArgs struct {
	Path          string `json:"path"`
	Threshold     *int   `json:"threshold,omitempty"`
	OutputDir     string `json:"output_dir,omitempty"`
	IncludeImages *bool  `json:"include_images,omitempty"`
}

func (s *Server) optionsFor(a lowLightArgs) (enhance.Options, error) {
	opts := s.defaults
	if a.Threshold != nil {
		opts.Threshold = *a.Threshold
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func (s *Server) handleLowLightMask(args json.RawMessage) (interface{}, error) {
	var a lowLightArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.optionsFor(a)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	src := enhance.Normalize(img)
	mask := enhance.BuildMask(src, opts.Threshold)
	st := enhance.Summarize(src, src, mask)

	encoded, err := imaging.EncodePNGBase64(mask)
	if err != nil {
		return nil, err
	}
	return &LowLightMaskResult{
		Threshold:    opts.Threshold,
		DarkPixels:   st.DarkPixels,
		Pixels:       st.Pixels,
		DarkFraction: st.DarkFraction,
		Mask:         encoded,
	}, nil
}

func (s *Server) handleEnhanceLowLight(args json.RawMessage) (interface{}, error) {
	var a lowLightArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.optionsFor(a)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	res, err := enhance.EnhanceWithOptions(img, opts)
	if err != nil {
		return nil, err
	}

	result := &EnhanceLowLightResult{
		Threshold: opts.Threshold,
		Stats:     enhance.Summarize(res.Source, res.Enhanced, res.Mask),
	}

	if a.IncludeImages == nil || *a.IncludeImages {
		if result.Enhanced, err = imaging.EncodePNGBase64(res.Enhanced); err != nil {
			return nil, err
		}
		if result.Mask, err = imaging.EncodePNGBase64(res.Mask); err != nil {
			return nil, err
		}
	}

	if a.OutputDir != "" {
		out := imaging.OutputPaths(a.Path, a.OutputDir)
		if err := imaging.Save(res.Enhanced, out.Enhanced); err != nil {
			return nil, err
		}
		if err := imaging.Save(res.Mask, out.Mask); err != nil {
			return nil, err
		}
		sheet := imaging.ComparisonSheet(res.Source, res.Mask, res.Enhanced, 8)
		if err := imaging.Save(sheet, out.Comparison); err != nil {
			return nil, err
		}
		result.Saved = &out
	}

	s.log.Debug().
		Str("path", a.Path).
		Int("threshold", opts.Threshold).
		Float64("dark_fraction", result.Stats.DarkFraction).
		Msg("enhanced")
	return result, nil
}
