// Package signature implements the freehand signature capture pad: a small
// pointer-event state machine accumulating polyline strokes over a raster
// canvas, exported as a self-describing PNG data URI. One pad instance backs
// one signature field; the canvas buffer is exclusively owned by the pad.
package signature

import (
	"fmt"
	"image"
	"image/color"
)

// State names the pad's two interaction states.
type State string

const (
	StateIdle    State = "idle"
	StateDrawing State = "drawing"
)

type point struct {
	x float64
	y float64
}

// ExportFunc receives the PNG data URI produced when a stroke completes or
// the pad is cleared. A cleared pad reports an empty payload.
type ExportFunc func(payload string)

// Option configures a Pad at construction time.
type Option func(*config)

type config struct {
	width       int
	height      int
	background  color.Color
	strokeColor color.Color
	strokeWidth float64
	onExport    ExportFunc
	hydrate     string
}

// WithSize sets the canvas dimensions in pixels.
func WithSize(width, height int) Option {
	return func(cfg *config) {
		if width > 0 {
			cfg.width = width
		}
		if height > 0 {
			cfg.height = height
		}
	}
}

// WithBackground sets the canvas fill color.
func WithBackground(c color.Color) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.background = c
		}
	}
}

// WithStroke sets the ink color and stroke width.
func WithStroke(c color.Color, width float64) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.strokeColor = c
		}
		if width > 0 {
			cfg.strokeWidth = width
		}
	}
}

// WithExportFunc registers the callback invoked with the exported payload
// whenever a stroke completes or the pad is cleared.
func WithExportFunc(fn ExportFunc) Option {
	return func(cfg *config) {
		cfg.onExport = fn
	}
}

// WithImage re-hydrates the pad from a previously exported payload. The
// image is rendered onto the canvas and the pad is marked non-empty without
// entering the drawing state.
func WithImage(dataURI string) Option {
	return func(cfg *config) {
		cfg.hydrate = dataURI
	}
}

// Pad is the signature capture state machine. It is single-owner and
// synchronous: pointer events are applied in arrival order on the caller's
// event loop.
type Pad struct {
	cfg     config
	state   State
	strokes [][]point
	current []point
	base    image.Image
}

// New constructs a pad, rendering any hydration payload supplied via
// WithImage. Hydration failures surface here rather than at first export.
func New(options ...Option) (*Pad, error) {
	cfg := config{
		width:       400,
		height:      160,
		background:  color.White,
		strokeColor: color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff},
		strokeWidth: 2.5,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	pad := &Pad{cfg: cfg, state: StateIdle}
	if cfg.hydrate != "" {
		img, err := decodeDataURI(cfg.hydrate)
		if err != nil {
			return nil, fmt.Errorf("signature: hydrate pad: %w", err)
		}
		pad.base = img
	}
	return pad, nil
}

// State reports the current interaction state.
func (p *Pad) State() State {
	return p.state
}

// Empty reports whether the canvas holds any content, drawn or hydrated.
func (p *Pad) Empty() bool {
	return len(p.strokes) == 0 && len(p.current) == 0 && p.base == nil
}

// PointerDown begins a new stroke at the given canvas position and enters
// the drawing state. A press while already drawing is ignored.
func (p *Pad) PointerDown(x, y float64) {
	if p.state == StateDrawing {
		return
	}
	p.state = StateDrawing
	p.current = []point{{x: x, y: y}}
}

// PointerMove extends the current stroke with a line segment to the new
// position. Ignored while idle.
func (p *Pad) PointerMove(x, y float64) {
	if p.state != StateDrawing {
		return
	}
	p.current = append(p.current, point{x: x, y: y})
}

// PointerUp closes the current stroke, returns to idle, and exports the
// raster content through the export callback.
func (p *Pad) PointerUp() {
	p.endStroke()
}

// PointerLeave terminates a stroke exactly like PointerUp; leaving the
// canvas mid-stroke keeps whatever was drawn.
func (p *Pad) PointerLeave() {
	p.endStroke()
}

// Clear resets the canvas to the configured background and reports an empty
// payload. Clearing an already-empty pad is a no-op.
func (p *Pad) Clear() {
	if p.Empty() {
		return
	}
	p.strokes = nil
	p.current = nil
	p.base = nil
	p.state = StateIdle
	if p.cfg.onExport != nil {
		p.cfg.onExport("")
	}
}

// Export rasterizes the current canvas content and returns it as a PNG data
// URI. An empty canvas exports an empty payload.
func (p *Pad) Export() (string, error) {
	if p.Empty() {
		return "", nil
	}
	img := p.rasterize()
	payload, err := encodeDataURI(img)
	if err != nil {
		return "", fmt.Errorf("signature: export pad: %w", err)
	}
	return payload, nil
}

func (p *Pad) endStroke() {
	if p.state != StateDrawing {
		return
	}
	p.state = StateIdle
	if len(p.current) > 0 {
		p.strokes = append(p.strokes, p.current)
		p.current = nil
	}
	if p.cfg.onExport != nil {
		if payload, err := p.Export(); err == nil {
			p.cfg.onExport(payload)
		}
	}
}
