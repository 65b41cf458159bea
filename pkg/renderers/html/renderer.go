// Package html renders a synthesized signing form as standalone HTML. Field
// controls are dispatched over the closed field-type set; labels pass
// through a strict sanitization policy before reaching the template.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/render"
	rendertemplate "github.com/goliatone/go-signfields/pkg/render/template"
	gotemplate "github.com/goliatone/go-signfields/pkg/render/template/gotemplate"
	"github.com/goliatone/go-signfields/pkg/synth"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template engine implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitizer *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		sanitizer: bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the signing form markup: one control per synthesized
// field, with option values overriding defaults and per-field errors mapped
// inline.
func (r *Renderer) Render(ctx context.Context, form synth.Form, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template engine is nil")
	}

	views := make([]fieldView, 0, len(form.Fields))
	for _, sf := range form.Fields {
		views = append(views, r.viewFor(sf, options))
	}

	// Passed as a struct so the engine's JSON round trip exposes the
	// serialized (lowercase) names to the template.
	data := formView{
		DocumentID: form.DocumentID,
		SignerID:   form.SignerID,
		SignerName: r.sanitizer.Sanitize(form.SignerName),
		Fields:     views,
		ThemeStyle: themeStyle(options),
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render form: %w", err)
	}
	return []byte(result), nil
}

// formView is the template-facing projection of the whole form.
type formView struct {
	DocumentID string      `json:"documentId"`
	SignerID   string      `json:"signerId"`
	SignerName string      `json:"signerName"`
	Fields     []fieldView `json:"fields"`
	ThemeStyle string      `json:"themeStyle"`
}

// fieldView is the flattened, template-facing projection of one field.
// Plain string members keep the template's dispatch comparisons simple.
type fieldView struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Control      string   `json:"control"`
	Label        string   `json:"label"`
	Required     bool     `json:"required"`
	Value        string   `json:"value"`
	Checked      bool     `json:"checked"`
	PadWidth     int      `json:"padWidth"`
	PadHeight    int      `json:"padHeight"`
	CaptureModes []string `json:"captureModes,omitempty"`
	Errors       []string `json:"errors,omitempty"`
}

// controlFor fixes the field-type-to-control dispatch.
func controlFor(t field.Type) string {
	switch t {
	case field.TypeDate:
		return "date"
	case field.TypeCheckbox:
		return "checkbox"
	case field.TypeSignature, field.TypeSignBlock:
		return "signature"
	default:
		return "text"
	}
}

func (r *Renderer) viewFor(sf synth.SigningField, options render.Options) fieldView {
	value := options.ValueFor(sf.ID, sf.Default)

	view := fieldView{
		ID:       sf.ID,
		Type:     string(sf.Type),
		Control:  controlFor(sf.Type),
		Label:    r.sanitizer.Sanitize(sf.Label),
		Required: sf.Required,
		Errors:   sanitizeAll(r.sanitizer, options.ErrorsFor(sf.ID)),
	}

	switch v := value.(type) {
	case bool:
		view.Checked = v
	case string:
		view.Value = v
	case nil:
	default:
		view.Value = fmt.Sprint(v)
	}

	if view.Control == "signature" {
		view.PadWidth = int(sf.Width)
		view.PadHeight = int(sf.Height)
	}
	if sf.Type == field.TypeSignBlock && sf.CaptureOptions != nil {
		view.CaptureModes = captureModes(*sf.CaptureOptions)
	}
	return view
}

// captureModes lists the enabled signblock modes in a stable order.
func captureModes(opts field.CaptureOptions) []string {
	modes := map[string]bool{
		"audio":     opts.Audio,
		"image":     opts.Image,
		"signature": opts.Signature,
		"video":     opts.Video,
	}
	var out []string
	for mode, enabled := range modes {
		if enabled {
			out = append(out, mode)
		}
	}
	sort.Strings(out)
	return out
}

func sanitizeAll(policy *bluemonday.Policy, messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	for _, message := range messages {
		out = append(out, policy.Sanitize(message))
	}
	return out
}

// themeStyle flattens a resolved theme's CSS variables into an inline style
// declaration, keys sorted for deterministic output.
func themeStyle(options render.Options) string {
	if options.Theme == nil || len(options.Theme.CSSVars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(options.Theme.CSSVars))
	for key := range options.Theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(options.Theme.CSSVars[key])
		sb.WriteString("; ")
	}
	return strings.TrimSpace(sb.String())
}
