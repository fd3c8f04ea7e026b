package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/picture-mcp/internal/manifest"
	"github.com/ironsheep/picture-mcp/internal/picture"
	"github.com/ironsheep/picture-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "picture_create", "picture_resize").
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Lifecycle
	case "picture_create":
		return s.handlePictureCreate(ctx, args)
	case "picture_attach":
		return s.handlePictureAttach(args)
	case "picture_resize":
		return s.handlePictureResize(args)
	case "picture_refit":
		return s.handlePictureRefit(args)
	case "picture_detach":
		return s.handlePictureDetach(args)

	// Presentation
	case "picture_state":
		return s.handlePictureState(args)
	case "picture_render":
		return s.handlePictureRender(args)

	// Stateless helpers
	case "picture_select":
		return s.handlePictureSelect(args)
	case "picture_load_manifest":
		return s.handleLoadManifest(ctx, args)

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

// PictureResult is returned by the lifecycle and presentation tools.
type PictureResult struct {
	ID     string        `json:"id"`
	Target string        `json:"target,omitempty"`
	State  picture.State `json:"state"`
}

func (s *Server) result(inst *instance) *PictureResult {
	return &PictureResult{
		ID:     inst.id,
		Target: inst.target,
		State:  inst.ctrl.State(),
	}
}

// sizeMeasurer reports the size given in tool arguments. A missing width or
// height means the host surface cannot be measured yet.
type sizeMeasurer struct {
	Width  float64
	Height float64
}

func (m sizeMeasurer) Measure() (picture.Size, bool) {
	if m.Width <= 0 || m.Height <= 0 {
		return picture.Size{}, false
	}
	return picture.Size{Width: m.Width, Height: m.Height}, true
}

// === Lifecycle Handlers ===

type pictureCreateArgs struct {
	Sources          []picture.ImageCandidate `json:"sources"`
	Manifest         string                   `json:"manifest"`
	Density          float64                  `json:"density"`
	DevicePixelRatio float64                  `json:"device_pixel_ratio"`
	Alt              *string                  `json:"alt"`
	ClassName        manifest.ClassList       `json:"class_name"`
	ClassNameImage   string                   `json:"class_name_image"`
	ClassNameObject  string                   `json:"class_name_object"`
	ItemProp         string                   `json:"item_prop"`
}

func (s *Server) handlePictureCreate(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a pictureCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var (
		candidates []picture.ImageCandidate
		props      render.Props
		opts       picture.Options
	)

	if a.Manifest != "" {
		m, err := s.loadManifest(ctx, a.Manifest)
		if err != nil {
			return nil, err
		}
		candidates, props, opts = m.Candidates(), m.Props(), m.Options()
	}

	if len(a.Sources) > 0 {
		candidates = a.Sources
	}
	if a.Alt != nil {
		props.Alt = *a.Alt
	}
	if len(a.ClassName) > 0 {
		props.ClassName = a.ClassName
	}
	if a.ClassNameImage != "" {
		props.ClassNameImage = a.ClassNameImage
	}
	if a.ClassNameObject != "" {
		props.ClassNameObject = a.ClassNameObject
	}
	if a.ItemProp != "" {
		props.ItemProp = a.ItemProp
	}
	if a.Density > 0 {
		opts.Density = a.Density
	}
	if a.DevicePixelRatio > 0 {
		opts.DevicePixelRatio = a.DevicePixelRatio
	}
	if opts.DevicePixelRatio <= 0 {
		opts.DevicePixelRatio = s.cfg.DevicePixelRatio
	}
	opts.Resize = s.observer

	set, err := picture.NewCandidateSet(candidates)
	if err != nil {
		return nil, err
	}
	ctrl, err := picture.New(set, opts)
	if err != nil {
		return nil, err
	}

	inst := s.pictures.Add(ctrl, props)
	st := ctrl.State()
	s.debugf("Created %s: %d candidates, density %g, provisional %s", inst.id, set.Len(), st.Density, st.Candidate.URL)
	return s.result(inst), nil
}

type pictureAttachArgs struct {
	ID     string  `json:"id"`
	Target string  `json:"target"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Server) handlePictureAttach(args json.RawMessage) (interface{}, error) {
	var a pictureAttachArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	inst, err := s.pictures.Get(a.ID)
	if err != nil {
		return nil, err
	}

	target := a.Target
	if target == "" {
		target = inst.id
	}
	if err := inst.ctrl.Attach(target, sizeMeasurer{Width: a.Width, Height: a.Height}); err != nil {
		return nil, fmt.Errorf("failed to attach %s: %w", inst.id, err)
	}
	inst.target = target

	st := inst.ctrl.State()
	s.debugf("Attached %s to %q: phase %s, fit pending %v, selected %s", inst.id, target, st.Phase, st.FitPending, st.Candidate.URL)
	return s.result(inst), nil
}

type pictureResizeArgs struct {
	Target string  `json:"target"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ResizeResult reports how many pictures a resize report reached.
type ResizeResult struct {
	Target    string `json:"target"`
	Delivered int    `json:"delivered"`
}

func (s *Server) handlePictureResize(args json.RawMessage) (interface{}, error) {
	var a pictureResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Target == "" {
		return nil, errors.New("target is required")
	}
	if a.Width < 0 || a.Height < 0 {
		return nil, fmt.Errorf("invalid size %gx%g", a.Width, a.Height)
	}

	n := s.observer.Report(a.Target, a.Width, a.Height)
	s.debugf("Resize %q to %gx%g reached %d picture(s)", a.Target, a.Width, a.Height, n)
	return &ResizeResult{Target: a.Target, Delivered: n}, nil
}

type pictureSizeArgs struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RefitResult reports whether a refit ran.
type RefitResult struct {
	PictureResult
	Fitted bool `json:"fitted"`
}

func (s *Server) handlePictureRefit(args json.RawMessage) (interface{}, error) {
	var a pictureSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	inst, err := s.pictures.Get(a.ID)
	if err != nil {
		return nil, err
	}

	fitted := inst.ctrl.Refit(sizeMeasurer{Width: a.Width, Height: a.Height})
	return &RefitResult{PictureResult: *s.result(inst), Fitted: fitted}, nil
}

type pictureIDArgs struct {
	ID string `json:"id"`
}

func (s *Server) handlePictureDetach(args json.RawMessage) (interface{}, error) {
	var a pictureIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	inst, err := s.pictures.Remove(a.ID)
	if err != nil {
		return nil, err
	}

	inst.ctrl.Detach()
	s.debugf("Detached %s", inst.id)
	return s.result(inst), nil
}

// === Presentation Handlers ===

func (s *Server) handlePictureState(args json.RawMessage) (interface{}, error) {
	var a pictureIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	inst, err := s.pictures.Get(a.ID)
	if err != nil {
		return nil, err
	}
	return s.result(inst), nil
}

// RenderResult carries a picture's markup.
type RenderResult struct {
	PictureResult
	HTML string `json:"html"`
}

func (s *Server) handlePictureRender(args json.RawMessage) (interface{}, error) {
	var a pictureIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	inst, err := s.pictures.Get(a.ID)
	if err != nil {
		return nil, err
	}

	markup, err := render.Markup(inst.ctrl, inst.props)
	if err != nil {
		return nil, err
	}
	return &RenderResult{PictureResult: *s.result(inst), HTML: markup}, nil
}

// === Stateless Helpers ===

type pictureSelectArgs struct {
	Sources          []picture.ImageCandidate `json:"sources"`
	Density          float64                  `json:"density"`
	DevicePixelRatio float64                  `json:"device_pixel_ratio"`
	Width            float64                  `json:"width"`
	Height           float64                  `json:"height"`
}

// SelectResult is the outcome of a one-off selection.
type SelectResult struct {
	Density float64                 `json:"density"`
	Initial picture.ImageCandidate  `json:"initial"`
	Vector  bool                    `json:"vector"`
	BestFit *picture.ImageCandidate `json:"best_fit,omitempty"`
}

func (s *Server) handlePictureSelect(args json.RawMessage) (interface{}, error) {
	var a pictureSelectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	set, err := picture.NewCandidateSet(a.Sources)
	if err != nil {
		return nil, err
	}
	opts := picture.Options{Density: a.Density, DevicePixelRatio: a.DevicePixelRatio}
	if opts.DevicePixelRatio <= 0 {
		opts.DevicePixelRatio = s.cfg.DevicePixelRatio
	}
	density := picture.ResolveDensity(set, opts)

	sel, err := picture.SelectInitial(set, density)
	if err != nil {
		return nil, err
	}

	res := &SelectResult{Density: density, Initial: sel.Candidate, Vector: sel.Vector}
	if size, ok := (sizeMeasurer{Width: a.Width, Height: a.Height}).Measure(); ok && !sel.Vector {
		best := picture.SelectBestFit(set, picture.Target{Density: density, Width: size.Width, Height: size.Height})
		res.BestFit = &best
	}
	return res, nil
}

type loadManifestArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleLoadManifest(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a loadManifestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.loadManifest(ctx, a.Path)
}

func (s *Server) loadManifest(ctx context.Context, path string) (*manifest.Manifest, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	if err := s.prober.Probe(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to probe manifest %s: %w", path, err)
	}
	s.debugf("Loaded manifest %s: %d sources", path, len(m.Sources))
	return m, nil
}
