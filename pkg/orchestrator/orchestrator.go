// Package orchestrator coordinates the full signing pipeline: decode a field
// layout, synthesize the signer's form, and render it with a registered
// renderer. Defaults cover the common case (HTML output) while every stage
// stays open to dependency injection.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/layout"
	"github.com/goliatone/go-signfields/pkg/render"
	"github.com/goliatone/go-signfields/pkg/renderers/html"
	"github.com/goliatone/go-signfields/pkg/synth"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithRenderer registers an additional renderer with the orchestrator's
// registry during initialisation.
func WithRenderer(renderer render.Renderer) Option {
	return func(o *Orchestrator) {
		if renderer != nil {
			o.extraRenderers = append(o.extraRenderers, renderer)
		}
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSynthOptions forwards options to the form synthesizer, e.g. a fixed
// clock for deterministic date defaults.
func WithSynthOptions(options ...synth.Option) Option {
	return func(o *Orchestrator) {
		o.synthOptions = append(o.synthOptions, options...)
	}
}

// WithDecorators registers decorators that run against the synthesized form
// before rendering.
func WithDecorators(decorators ...Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// Decorator mutates a synthesized form ahead of rendering. Decorators run in
// registration order.
type Decorator interface {
	Decorate(form *synth.Form) error
}

// DecoratorFunc adapts a function to the Decorator interface.
type DecoratorFunc func(form *synth.Form) error

func (f DecoratorFunc) Decorate(form *synth.Form) error { return f(form) }

// Orchestrator coordinates layout decode, form synthesis, and rendering. It
// applies sensible defaults (HTML renderer) while remaining open to
// dependency injection for advanced callers.
type Orchestrator struct {
	registry        *render.Registry
	extraRenderers  []render.Renderer
	defaultRenderer string
	synthOptions    []synth.Option
	decorators      []Decorator
	themeSelector   themeSelector
	themeName       string
	themeVariant    string
	themeFallbacks  map[string]string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a signing form.
type Request struct {
	// Layout is a serialized field layout, JSON or YAML, decoded through the
	// layout codec. Optional when Document is supplied.
	Layout []byte

	// Document allows callers to bypass the codec when they already hold a
	// decoded document.
	Document *field.Document

	// DocumentID labels documents decoded from Layout. Ignored when Document
	// is supplied.
	DocumentID string

	// Assignment selects which fields the signer fills.
	Assignment field.SignerAssignment

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured. Empty values fall back to the configured defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as prefilled
	// values or server-side errors that renderers can surface.
	RenderOptions render.Options
}

// Generate executes the decode → synthesize → render sequence and returns
// the rendered bytes (HTML for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveDocument(req)
	if err != nil {
		return nil, err
	}

	form, err := synth.Synthesize(doc, req.Assignment, o.synthOptions...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: synthesize form: %w", err)
	}

	if err := o.applyDecorators(&form); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveDocument(req Request) (field.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if len(req.Layout) == 0 {
		return field.Document{}, errors.New("orchestrator: layout or document is required")
	}
	cfg, err := layout.DecodeConfig(req.Layout)
	if err != nil {
		return field.Document{}, fmt.Errorf("orchestrator: decode layout: %w", err)
	}
	fields, err := layout.FieldsFromConfig(cfg)
	if err != nil {
		return field.Document{}, fmt.Errorf("orchestrator: decode layout: %w", err)
	}
	return field.Document{
		ID:     req.DocumentID,
		Status: field.DocumentPending,
		Fields: fields,
	}, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(form *synth.Form) error {
	if len(o.decorators) == 0 || form == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	for _, renderer := range o.extraRenderers {
		if !o.registry.Has(renderer.Name()) {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
