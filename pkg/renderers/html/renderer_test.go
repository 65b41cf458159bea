package html

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/render"
	"github.com/goliatone/go-signfields/pkg/synth"
)

func sampleForm(t *testing.T) synth.Form {
	t.Helper()

	name := field.New("f1", field.TypeText, 10, 10, 1)
	name.Label = "Full name"
	name.Required = true

	date := field.New("f2", field.TypeDate, 10, 60, 1)
	date.Label = "Signed on"

	sig := field.New("f3", field.TypeSignature, 10, 110, 1)
	sig.Label = "Signature"
	sig.Required = true

	block := field.New("f4", field.TypeSignBlock, 10, 210, 1)
	block.CaptureOptions.Video = false

	doc := field.Document{
		ID:     "doc-1",
		Status: field.DocumentPending,
		Fields: []field.Field{name, date, sig, block, field.New("f5", field.TypeText, 0, 0, 2)},
	}
	assignment := field.SignerAssignment{
		SignerID:   "signer-1",
		SignerName: "Alex",
		FieldIDs:   []string{"f1", "f2", "f3", "f4"},
	}

	form, err := synth.Synthesize(doc, assignment)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return form
}

func TestRenderProducesOneControlPerField(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleForm(t), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(out)

	for _, want := range []string{
		`data-field-id="f1"`,
		`data-field-id="f2"`,
		`data-field-id="f3"`,
		`data-field-id="f4"`,
		`type="text"`,
		`type="date"`,
		`<canvas`,
		"Full name",
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("expected markup to contain %q:\n%s", want, markup)
		}
	}

	// Unassigned fields never render.
	if strings.Contains(markup, "f5") {
		t.Fatalf("markup must not contain unassigned fields:\n%s", markup)
	}

	// Signblock modes render without the disabled one.
	if !strings.Contains(markup, "audio") || strings.Contains(markup, ">video<") {
		t.Fatalf("expected enabled capture modes only:\n%s", markup)
	}
}

func TestRenderSanitizesLabels(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	form := sampleForm(t)
	form.Fields[0].Label = `<script>alert("x")</script>Name`

	out, err := renderer.Render(context.Background(), form, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("label sanitization failed:\n%s", out)
	}
}

func TestRenderAppliesValuesAndErrors(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleForm(t), render.Options{
		Values: map[string]any{"f1": "Jordan"},
		Errors: map[string][]string{"f2": {"Signed on must be a valid date"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(out)

	if !strings.Contains(markup, `value="Jordan"`) {
		t.Fatalf("expected option value to override default:\n%s", markup)
	}
	if !strings.Contains(markup, "signfields-field--invalid") {
		t.Fatalf("expected invalid chrome on errored field:\n%s", markup)
	}
	if !strings.Contains(markup, "Signed on must be a valid date") {
		t.Fatalf("expected inline error message:\n%s", markup)
	}
}

func TestRenderThemeVariables(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleForm(t), render.Options{
		Theme: &theme.RendererConfig{
			CSSVars: map[string]string{"accent": "#3b82f6"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "--accent: #3b82f6;") {
		t.Fatalf("expected theme CSS variables inline:\n%s", out)
	}
}

func TestRenderHonoursContextCancellation(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, sampleForm(t), render.Options{}); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
