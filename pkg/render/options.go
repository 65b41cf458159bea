package render

import (
	theme "github.com/goliatone/go-theme"
)

// Options describe per-request data renderers can use to customise their
// output without touching the synthesis pipeline.
type Options struct {
	// Values pre-populates rendered controls keyed by field id, overriding
	// the synthesized defaults (for example when re-rendering after a failed
	// submission).
	Values map[string]any
	// Errors surfaces validation feedback keyed by field id. Renderers map
	// these into inline, field-scoped messages.
	Errors map[string][]string
	// Theme carries a resolved go-theme renderer configuration; renderers
	// translate its tokens into their own chrome (CSS variables for HTML).
	Theme *theme.RendererConfig
}

// ValueFor returns the value to render for a field: an explicit option value
// when present, otherwise the supplied fallback (normally the synthesized
// default).
func (o Options) ValueFor(fieldID string, fallback any) any {
	if o.Values != nil {
		if value, ok := o.Values[fieldID]; ok {
			return value
		}
	}
	return fallback
}

// ErrorsFor returns the validation messages attached to a field, if any.
func (o Options) ErrorsFor(fieldID string) []string {
	if o.Errors == nil {
		return nil
	}
	return o.Errors[fieldID]
}
