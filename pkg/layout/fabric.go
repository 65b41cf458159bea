package layout

import (
	"github.com/goliatone/go-signfields/pkg/field"
)

// FabricVersion mirrors the visual-object library version the payload
// targets.
const FabricVersion = "5.3.0"

// Object kinds the fabric projection emits.
const (
	ObjectRect    = "rect"
	ObjectTextbox = "textbox"
	ObjectGroup   = "group"
)

// ObjectMetadata carries the semantic identity of a drawable object so the
// fabric payload stays round-trippable back to the field set.
type ObjectMetadata struct {
	FieldType      field.Type            `json:"fieldType"`
	FieldID        string                `json:"fieldId"`
	Required       bool                  `json:"required"`
	CaptureOptions *field.CaptureOptions `json:"captureOptions,omitempty"`
}

// Object is one drawable entry in the fabric payload.
type Object struct {
	Kind        string         `json:"type"`
	Left        float64        `json:"left"`
	Top         float64        `json:"top"`
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	Fill        string         `json:"fill,omitempty"`
	Stroke      string         `json:"stroke,omitempty"`
	StrokeWidth float64        `json:"strokeWidth,omitempty"`
	Rx          float64        `json:"rx,omitempty"`
	Ry          float64        `json:"ry,omitempty"`
	Text        string         `json:"text,omitempty"`
	FontSize    float64        `json:"fontSize,omitempty"`
	Metadata    ObjectMetadata `json:"metadata"`
}

// Fabric is the visual-object serialization of a field layout, parallel to
// the config payload at matching indices.
type Fabric struct {
	Version string   `json:"version"`
	Objects []Object `json:"objects"`
}

// objectKind fixes the type-to-visual-object mapping.
func objectKind(t field.Type) string {
	switch t {
	case field.TypeText:
		return ObjectTextbox
	case field.TypeSignBlock:
		return ObjectGroup
	default:
		return ObjectRect
	}
}

// style attributes are derived deterministically from the field type.
type objectStyle struct {
	fill        string
	stroke      string
	strokeWidth float64
	rx          float64
	ry          float64
	fontSize    float64
}

func styleFor(t field.Type) objectStyle {
	switch t {
	case field.TypeSignature:
		return objectStyle{fill: "rgba(59,130,246,0.08)", stroke: "#3b82f6", strokeWidth: 1.5, rx: 4, ry: 4}
	case field.TypeText:
		return objectStyle{fill: "#1f2937", fontSize: 14}
	case field.TypeDate:
		return objectStyle{fill: "rgba(16,185,129,0.08)", stroke: "#10b981", strokeWidth: 1.5, rx: 4, ry: 4}
	case field.TypeCheckbox:
		return objectStyle{fill: "rgba(107,114,128,0.08)", stroke: "#6b7280", strokeWidth: 1.5, rx: 2, ry: 2}
	case field.TypeSignBlock:
		return objectStyle{fill: "rgba(139,92,246,0.08)", stroke: "#8b5cf6", strokeWidth: 2, rx: 6, ry: 6}
	}
	return objectStyle{}
}

// ToFabric projects the field collection into the fabric payload. Object
// order matches the input field order, so the config payload at the same
// index describes the same field.
func ToFabric(fields []field.Field) Fabric {
	payload := Fabric{
		Version: FabricVersion,
		Objects: make([]Object, 0, len(fields)),
	}
	for _, f := range fields {
		f = f.Clone()
		style := styleFor(f.Type)
		obj := Object{
			Kind:        objectKind(f.Type),
			Left:        f.X,
			Top:         f.Y,
			Width:       f.Width,
			Height:      f.Height,
			Fill:        style.fill,
			Stroke:      style.stroke,
			StrokeWidth: style.strokeWidth,
			Rx:          style.rx,
			Ry:          style.ry,
			FontSize:    style.fontSize,
			Metadata: ObjectMetadata{
				FieldType:      f.Type,
				FieldID:        f.ID,
				Required:       f.Required,
				CaptureOptions: f.CaptureOptions,
			},
		}
		if obj.Kind == ObjectTextbox {
			obj.Text = f.Label
		}
		payload.Objects = append(payload.Objects, obj)
	}
	return payload
}
