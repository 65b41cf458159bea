// Package layout turns an ordered field collection into the two persisted
// payloads consumed downstream: a semantic config document and a fabric
// visual-object document. Both projections are pure, deterministic, and
// order-preserving; the codec side validates untrusted payloads before
// handing fields back to the rest of the module.
package layout

import (
	"github.com/goliatone/go-signfields/pkg/field"
)

// ConfigVersion identifies the config payload schema.
const ConfigVersion = "1.0"

// Position is a document-space top-left coordinate pair.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size is a document-space extent.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ConfigField is the lossless projection of one field.
type ConfigField struct {
	ID             string                `json:"id" yaml:"id"`
	Type           field.Type            `json:"type" yaml:"type"`
	Page           int                   `json:"page" yaml:"page"`
	Position       Position              `json:"position" yaml:"position"`
	Size           Size                  `json:"size" yaml:"size"`
	Label          string                `json:"label" yaml:"label"`
	Required       bool                  `json:"required" yaml:"required"`
	CaptureOptions *field.CaptureOptions `json:"captureOptions,omitempty" yaml:"captureOptions,omitempty"`
}

// Config is the versioned semantic serialization of a field layout.
type Config struct {
	Version string        `json:"version" yaml:"version"`
	Fields  []ConfigField `json:"fields" yaml:"fields"`
}

// ToConfig projects the field collection into a config payload, preserving
// iteration order.
func ToConfig(fields []field.Field) Config {
	cfg := Config{
		Version: ConfigVersion,
		Fields:  make([]ConfigField, 0, len(fields)),
	}
	for _, f := range fields {
		f = f.Clone()
		cfg.Fields = append(cfg.Fields, ConfigField{
			ID:             f.ID,
			Type:           f.Type,
			Page:           f.Page,
			Position:       Position{X: f.X, Y: f.Y},
			Size:           Size{Width: f.Width, Height: f.Height},
			Label:          f.Label,
			Required:       f.Required,
			CaptureOptions: f.CaptureOptions,
		})
	}
	return cfg
}

// FieldsFromConfig reverses ToConfig, rebuilding the semantic field list in
// payload order. Each field is re-validated so corrupted payloads cannot
// re-enter the module.
func FieldsFromConfig(cfg Config) ([]field.Field, error) {
	fields := make([]field.Field, 0, len(cfg.Fields))
	for _, cf := range cfg.Fields {
		f := field.Field{
			ID:             cf.ID,
			Type:           cf.Type,
			X:              cf.Position.X,
			Y:              cf.Position.Y,
			Width:          cf.Size.Width,
			Height:         cf.Size.Height,
			Page:           cf.Page,
			Label:          cf.Label,
			Required:       cf.Required,
			CaptureOptions: cf.CaptureOptions,
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		fields = append(fields, f.Clone())
	}
	return fields, nil
}
