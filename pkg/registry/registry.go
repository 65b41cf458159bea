// Package registry owns the ordered field collection for one editing
// session. It is a single-owner, single-writer structure driven from a
// single-threaded event loop; it carries no locking by contract.
package registry

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/geometry"
)

// IDGenerator allocates field ids. Implementations must produce values that
// are unique for the lifetime of one registry; the registry additionally
// collision-checks against every id it has seen.
type IDGenerator func() string

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithScale sets the initial zoom scale used when applying drag deltas.
func WithScale(scale float64) Option {
	return func(r *Registry) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

// WithIDGenerator overrides the uuid-backed id allocator. Useful for
// deterministic ids in tests.
func WithIDGenerator(gen IDGenerator) Option {
	return func(r *Registry) {
		if gen != nil {
			r.idgen = gen
		}
	}
}

// Registry holds the ordered field collection plus the exclusive selection.
// Iteration order is insertion order and is meaningful only for
// deterministic serialization, not for z-index semantics.
type Registry struct {
	fields   []field.Field
	selected string
	scale    float64
	idgen    IDGenerator
	seen     map[string]struct{}
}

// New constructs an empty registry with scale 1.0.
func New(options ...Option) *Registry {
	r := &Registry{
		scale: 1,
		idgen: uuid.NewString,
		seen:  make(map[string]struct{}),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// SetScale updates the zoom scale applied to subsequent moves. Non-positive
// values are ignored; a valid scale is a caller precondition.
func (r *Registry) SetScale(scale float64) {
	if scale > 0 {
		r.scale = scale
	}
}

// Scale returns the current zoom scale.
func (r *Registry) Scale() float64 {
	return r.scale
}

// Create allocates a new field of the given type at a document-space
// position, applies type defaults, appends it to the collection, and makes
// it the selected field.
func (r *Registry) Create(t field.Type, x, y float64, page int) field.Field {
	f := field.New(r.nextID(), t, x, y, page)
	r.fields = append(r.fields, f)
	r.selected = f.ID
	return f.Clone()
}

// Select marks the field as the exclusive selection. An empty id clears the
// selection; an unknown id is a no-op.
func (r *Registry) Select(id string) {
	if id == "" {
		r.selected = ""
		return
	}
	if r.index(id) >= 0 {
		r.selected = id
	}
}

// Selected returns the currently selected field id, if any.
func (r *Registry) Selected() (string, bool) {
	if r.selected == "" {
		return "", false
	}
	return r.selected, true
}

// Move translates a field by a device-space drag delta, converted to
// document space under the current scale. Unknown ids no-op.
func (r *Registry) Move(id string, dx, dy float64) {
	idx := r.index(id)
	if idx < 0 {
		return
	}
	f := &r.fields[idx]
	f.X, f.Y = geometry.ApplyDelta(f.X, f.Y, dx, dy, r.scale)
}

// Remove deletes a field, clearing the selection if it pointed at the
// removed field. Unknown ids no-op.
func (r *Registry) Remove(id string) {
	idx := r.index(id)
	if idx < 0 {
		return
	}
	r.fields = append(r.fields[:idx], r.fields[idx+1:]...)
	if r.selected == id {
		r.selected = ""
	}
}

// Field returns a copy of the field with the given id.
func (r *Registry) Field(id string) (field.Field, bool) {
	idx := r.index(id)
	if idx < 0 {
		return field.Field{}, false
	}
	return r.fields[idx].Clone(), true
}

// FieldAt returns the topmost field whose hit area contains the given
// document-space point on the given page, scanning newest-first so recently
// placed fields win overlaps.
func (r *Registry) FieldAt(x, y float64, page int) (field.Field, bool) {
	for idx := len(r.fields) - 1; idx >= 0; idx-- {
		f := r.fields[idx]
		if f.Page != page {
			continue
		}
		if x >= f.X && x <= f.X+f.Width && y >= f.Y && y <= f.Y+f.Height {
			return f.Clone(), true
		}
	}
	return field.Field{}, false
}

// Fields returns a copy of the full collection in insertion order.
func (r *Registry) Fields() []field.Field {
	out := make([]field.Field, 0, len(r.fields))
	for _, f := range r.fields {
		out = append(out, f.Clone())
	}
	return out
}

// ListForPage returns the fields anchored to the given page, insertion order
// preserved.
func (r *Registry) ListForPage(page int) []field.Field {
	var out []field.Field
	for _, f := range r.fields {
		if f.Page == page {
			out = append(out, f.Clone())
		}
	}
	return out
}

// Len reports the number of fields in the registry.
func (r *Registry) Len() int {
	return len(r.fields)
}

func (r *Registry) index(id string) int {
	for idx, f := range r.fields {
		if f.ID == id {
			return idx
		}
	}
	return -1
}

// nextID draws from the generator until it produces an id this registry has
// never handed out. Removed ids stay reserved so a stale reference can never
// alias a newer field.
func (r *Registry) nextID() string {
	for {
		id := r.idgen()
		if _, taken := r.seen[id]; taken || id == "" {
			continue
		}
		r.seen[id] = struct{}{}
		return id
	}
}
