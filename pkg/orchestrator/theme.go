package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type themeSelector = theme.ThemeSelector

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeDefaults sets the theme and variant used when a request does not
// name one.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"signing.form": "templates/form.tmpl",
	}
}

// resolveTheme turns the request's theme selection into the renderer-facing
// configuration. Without a selector the renderer receives no theme.
func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}

	name := req.ThemeName
	if name == "" {
		name = o.themeName
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = o.themeVariant
	}
	if name == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}

	fallbacks := o.themeFallbacks
	if fallbacks == nil {
		fallbacks = defaultThemeFallbacks()
	}
	return rendererConfigFromSelection(selection, fallbacks), nil
}

// rendererConfigFromSelection merges manifest defaults, variant overrides,
// and fallback partials into the flat configuration renderers consume.
// Variant values win over manifest values, which win over fallbacks.
func rendererConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}

	for key, value := range fallbacks {
		cfg.Partials[key] = value
	}

	manifest := selection.Manifest
	if manifest == nil {
		cfg.AssetURL = func(string) string { return "" }
		return cfg
	}

	for key, value := range manifest.Templates {
		cfg.Partials[key] = value
	}
	for key, value := range manifest.Tokens {
		cfg.Tokens[key] = value
	}

	assetPrefix := manifest.Assets.Prefix
	assetFiles := map[string]string{}
	for key, value := range manifest.Assets.Files {
		assetFiles[key] = value
	}

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Templates {
			cfg.Partials[key] = value
		}
		for key, value := range variant.Tokens {
			cfg.Tokens[key] = value
		}
		if variant.Assets.Prefix != "" {
			assetPrefix = variant.Assets.Prefix
		}
		for key, value := range variant.Assets.Files {
			assetFiles[key] = value
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars[cssVarName(key)] = value
	}

	cfg.AssetURL = assetResolver(assetPrefix, assetFiles)
	return cfg
}

func cssVarName(token string) string {
	if strings.HasPrefix(token, "--") {
		return token
	}
	return "--" + token
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		if key == "" {
			return ""
		}
		file, ok := files[key]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + file
	}
}
