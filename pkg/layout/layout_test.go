package layout

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signfields/pkg/field"
)

func sampleFields() []field.Field {
	text := field.New("f1", field.TypeText, 10, 20, 1)
	text.Label = "Full name"
	text.Required = true

	sig := field.New("f2", field.TypeSignature, 50, 200, 1)
	block := field.New("f3", field.TypeSignBlock, 80, 400, 2)
	block.CaptureOptions.Video = false

	return []field.Field{text, sig, block}
}

func TestToConfigPreservesOrderAndAttributes(t *testing.T) {
	cfg := ToConfig(sampleFields())

	if cfg.Version != ConfigVersion {
		t.Fatalf("expected version %q, got %q", ConfigVersion, cfg.Version)
	}
	if len(cfg.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(cfg.Fields))
	}

	first := cfg.Fields[0]
	if first.ID != "f1" || first.Type != field.TypeText || first.Label != "Full name" || !first.Required {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.Position != (Position{X: 10, Y: 20}) || first.Size != (Size{Width: 150, Height: 40}) {
		t.Fatalf("unexpected geometry: %+v", first)
	}
	if first.CaptureOptions != nil {
		t.Fatalf("text fields must not serialize capture options")
	}

	block := cfg.Fields[2]
	if block.CaptureOptions == nil || block.CaptureOptions.Video {
		t.Fatalf("signblock capture options not preserved: %+v", block.CaptureOptions)
	}
}

func TestToFabricKindMapping(t *testing.T) {
	fields := []field.Field{
		field.New("a", field.TypeSignature, 0, 0, 1),
		field.New("b", field.TypeText, 0, 0, 1),
		field.New("c", field.TypeDate, 0, 0, 1),
		field.New("d", field.TypeCheckbox, 0, 0, 1),
		field.New("e", field.TypeSignBlock, 0, 0, 1),
	}

	payload := ToFabric(fields)
	if payload.Version != FabricVersion {
		t.Fatalf("expected fabric version %q, got %q", FabricVersion, payload.Version)
	}

	wantKinds := []string{ObjectRect, ObjectTextbox, ObjectRect, ObjectRect, ObjectGroup}
	for idx, want := range wantKinds {
		if payload.Objects[idx].Kind != want {
			t.Fatalf("object %d: expected kind %q, got %q", idx, want, payload.Objects[idx].Kind)
		}
	}

	textbox := payload.Objects[1]
	if textbox.Text != "Text" {
		t.Fatalf("textbox must carry the field label, got %q", textbox.Text)
	}
}

func TestConfigAndFabricAgree(t *testing.T) {
	fields := sampleFields()
	cfg := ToConfig(fields)
	fab := ToFabric(fields)

	if len(cfg.Fields) != len(fab.Objects) {
		t.Fatalf("payload lengths diverge: %d vs %d", len(cfg.Fields), len(fab.Objects))
	}
	for idx := range cfg.Fields {
		cf := cfg.Fields[idx]
		meta := fab.Objects[idx].Metadata
		if cf.ID != meta.FieldID || cf.Type != meta.FieldType || cf.Required != meta.Required {
			t.Fatalf("payloads disagree at %d: %+v vs %+v", idx, cf, meta)
		}
		if diff := cmp.Diff(cf.CaptureOptions, meta.CaptureOptions); diff != "" {
			t.Fatalf("capture options disagree at %d (-config +fabric):\n%s", idx, diff)
		}
	}
}

func TestRemovalShrinksBothPayloads(t *testing.T) {
	fields := sampleFields()
	before := ToConfig(fields)

	removed := fields[1].ID
	remaining := append([]field.Field{}, fields[0], fields[2])

	cfg := ToConfig(remaining)
	fab := ToFabric(remaining)

	if len(cfg.Fields) != len(before.Fields)-1 {
		t.Fatalf("expected field count to decrease by one")
	}
	for _, cf := range cfg.Fields {
		if cf.ID == removed {
			t.Fatalf("config still contains removed id %q", removed)
		}
	}
	for _, obj := range fab.Objects {
		if obj.Metadata.FieldID == removed {
			t.Fatalf("fabric still contains removed id %q", removed)
		}
	}
}

func TestFieldsFromConfigRoundTrip(t *testing.T) {
	original := sampleFields()
	restored, err := FieldsFromConfig(ToConfig(original))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if diff := cmp.Diff(original, restored); diff != "" {
		t.Fatalf("round trip mismatch (-original +restored):\n%s", diff)
	}
}

func TestEncodeDecodeConfigJSON(t *testing.T) {
	encoded, err := EncodeConfig(ToConfig(sampleFields()))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeConfig([]byte(encoded))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Fields) != 3 || decoded.Version != ConfigVersion {
		t.Fatalf("unexpected decode result: %+v", decoded)
	}
}

func TestDecodeConfigYAML(t *testing.T) {
	doc := `
version: "1.0"
fields:
  - id: f1
    type: text
    page: 1
    position: {x: 10, y: 20}
    size: {width: 150, height: 40}
    label: Full name
    required: true
`
	decoded, err := DecodeConfig([]byte(doc))
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(decoded.Fields) != 1 || decoded.Fields[0].Label != "Full name" {
		t.Fatalf("unexpected yaml decode: %+v", decoded)
	}
}

func TestDecodeConfigRejectsInvalidPayloads(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", "   "},
		{"not json", "{{{"},
		{"missing version", `{"fields": []}`},
		{"wrong version", `{"version": "2.0", "fields": []}`},
		{"unknown type", `{"version":"1.0","fields":[{"id":"f1","type":"polygon","page":1,"position":{"x":0,"y":0},"size":{"width":10,"height":10}}]}`},
		{"negative size", `{"version":"1.0","fields":[{"id":"f1","type":"text","page":1,"position":{"x":0,"y":0},"size":{"width":-10,"height":10}}]}`},
		{"zero page", `{"version":"1.0","fields":[{"id":"f1","type":"text","page":0,"position":{"x":0,"y":0},"size":{"width":10,"height":10}}]}`},
		{"missing geometry", `{"version":"1.0","fields":[{"id":"f1","type":"text","page":1}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeConfig([]byte(tc.raw)); err == nil {
				t.Fatalf("expected error for payload %q", tc.raw)
			}
		})
	}
}

func TestEncodedConfigIsStableJSON(t *testing.T) {
	first, err := EncodeConfig(ToConfig(sampleFields()))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := EncodeConfig(ToConfig(sampleFields()))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if first != second {
		t.Fatalf("encoding is not deterministic")
	}
	if !json.Valid([]byte(first)) {
		t.Fatalf("encoded payload is not valid JSON")
	}
	if !strings.Contains(first, `"version": "1.0"`) {
		t.Fatalf("expected version marker in output:\n%s", first)
	}
}
