// Package signfields is the top-level entry point for the field layout
// editor and form synthesizer. It re-exports the orchestrator pipeline and
// the most common types so simple callers need a single import.
package signfields

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/orchestrator"
	"github.com/goliatone/go-signfields/pkg/render"
	"github.com/goliatone/go-signfields/pkg/renderers/html"
)

// Field describes one placed form field; alias exported via the root package
// for convenience.
type Field = field.Field

// Document groups a page reference with its placed fields.
type Document = field.Document

// SignerAssignment selects the fields one signer fills.
type SignerAssignment = field.SignerAssignment

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.Options

// Request describes the inputs required to render a signing form.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML decodes the serialized layout, synthesizes the assignment's
// form, and renders it with the named renderer. It is the simplest entry
// point for callers that just want HTML output.
func GenerateHTML(ctx context.Context, layoutPayload []byte, assignment field.SignerAssignment, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Layout:     layoutPayload,
		Assignment: assignment,
		Renderer:   rendererName,
	})
}

// GenerateHTMLFromDocument renders a form using a pre-decoded document,
// bypassing the layout codec while still delegating to the orchestrator.
func GenerateHTMLFromDocument(ctx context.Context, doc field.Document, assignment field.SignerAssignment, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:   &doc,
		Assignment: assignment,
		Renderer:   rendererName,
	})
}

// EmbeddedTemplates exposes the built-in HTML renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// WithThemeSelector passes a go-theme selector through to the orchestrator
// so theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeDefaults forwards the default theme and variant applied when a
// request omits them.
func WithThemeDefaults(name, variant string) orchestrator.Option {
	return orchestrator.WithThemeDefaults(name, variant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
