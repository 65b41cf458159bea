// Package render defines the pluggable rendering seam for synthesized
// signing forms and the registry renderers are discovered through.
package render

import (
	"context"

	"github.com/goliatone/go-signfields/pkg/synth"
)

// Renderer converts a synthesized signing form into a byte representation
// (HTML, text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form synth.Form, options Options) ([]byte, error)
}
