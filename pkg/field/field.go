// Package field defines the data model shared by the layout editor and the
// form synthesizer: typed placeable fields, the documents that carry them,
// and the signer assignments that scope them.
package field

import (
	"fmt"
	"math"
	"strings"
)

// Type enumerates the closed set of placeable field kinds.
type Type string

const (
	TypeSignature Type = "signature"
	TypeText      Type = "text"
	TypeDate      Type = "date"
	TypeCheckbox  Type = "checkbox"
	TypeSignBlock Type = "signblock"
)

// Types returns the full closed set in canonical order.
func Types() []Type {
	return []Type{TypeSignature, TypeText, TypeDate, TypeCheckbox, TypeSignBlock}
}

// ParseType validates a raw type string against the closed set.
func ParseType(raw string) (Type, error) {
	t := Type(strings.TrimSpace(strings.ToLower(raw)))
	switch t {
	case TypeSignature, TypeText, TypeDate, TypeCheckbox, TypeSignBlock:
		return t, nil
	}
	return "", fmt.Errorf("field: unknown field type %q", raw)
}

// CaptureOptions describes which capture modes a signblock field accepts.
// Only signblock fields carry a CaptureOptions record.
type CaptureOptions struct {
	Video     bool `json:"video" yaml:"video"`
	Audio     bool `json:"audio" yaml:"audio"`
	Image     bool `json:"image" yaml:"image"`
	Signature bool `json:"signature" yaml:"signature"`
}

// DefaultCaptureOptions enables all four capture modes, matching the
// signblock creation default.
func DefaultCaptureOptions() *CaptureOptions {
	return &CaptureOptions{Video: true, Audio: true, Image: true, Signature: true}
}

// Field is one placeable input region anchored to a document page. Geometry
// is expressed in document-space units, independent of on-screen zoom.
type Field struct {
	ID             string          `json:"id" yaml:"id"`
	Type           Type            `json:"type" yaml:"type"`
	X              float64         `json:"x" yaml:"x"`
	Y              float64         `json:"y" yaml:"y"`
	Width          float64         `json:"width" yaml:"width"`
	Height         float64         `json:"height" yaml:"height"`
	Page           int             `json:"page" yaml:"page"`
	Label          string          `json:"label" yaml:"label"`
	Required       bool            `json:"required" yaml:"required"`
	CaptureOptions *CaptureOptions `json:"captureOptions,omitempty" yaml:"captureOptions,omitempty"`
}

// DefaultSize returns the creation-time width and height for a field type.
func DefaultSize(t Type) (width, height float64) {
	switch t {
	case TypeSignature:
		return 200, 80
	case TypeSignBlock:
		return 200, 120
	case TypeCheckbox:
		return 24, 24
	default:
		return 150, 40
	}
}

// DefaultLabel returns the creation-time caption for a field type.
func DefaultLabel(t Type) string {
	switch t {
	case TypeSignature:
		return "Signature"
	case TypeText:
		return "Text"
	case TypeDate:
		return "Date"
	case TypeCheckbox:
		return "Checkbox"
	case TypeSignBlock:
		return "Sign Block"
	}
	return string(t)
}

// New builds a field with type defaults applied at the given document-space
// position. Signblock fields receive a capture-options record with all modes
// enabled; every other type carries none.
func New(id string, t Type, x, y float64, page int) Field {
	width, height := DefaultSize(t)
	f := Field{
		ID:     id,
		Type:   t,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Page:   page,
		Label:  DefaultLabel(t),
	}
	if t == TypeSignBlock {
		f.CaptureOptions = DefaultCaptureOptions()
	}
	return f
}

// Validate checks the structural invariants the rest of the module relies
// on: a non-empty id, a known type, finite non-negative geometry, a positive
// page index, and capture options present exactly when the type is signblock.
func (f Field) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return fmt.Errorf("field: id is required")
	}
	if _, err := ParseType(string(f.Type)); err != nil {
		return err
	}
	for _, v := range []float64{f.X, f.Y, f.Width, f.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("field %s: geometry must be finite", f.ID)
		}
	}
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("field %s: size must be non-negative", f.ID)
	}
	if f.Page < 1 {
		return fmt.Errorf("field %s: page must be a positive integer, got %d", f.ID, f.Page)
	}
	if f.Type == TypeSignBlock && f.CaptureOptions == nil {
		return fmt.Errorf("field %s: signblock fields require capture options", f.ID)
	}
	if f.Type != TypeSignBlock && f.CaptureOptions != nil {
		return fmt.Errorf("field %s: capture options are only valid on signblock fields", f.ID)
	}
	return nil
}

// Clone returns a deep copy, detaching the capture-options record.
func (f Field) Clone() Field {
	out := f
	if f.CaptureOptions != nil {
		opts := *f.CaptureOptions
		out.CaptureOptions = &opts
	}
	return out
}
