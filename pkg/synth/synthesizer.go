package synth

import (
	"fmt"
	"time"

	"github.com/goliatone/go-signfields/pkg/field"
)

// SigningField is the runtime form-rendering view of a field: the frozen
// layout attributes plus the signer-facing validation contract and, once
// submitted, the entered value.
type SigningField struct {
	field.Field
	Rules   []Rule `json:"rules,omitempty"`
	Default any    `json:"default,omitempty"`
	Value   any    `json:"value,omitempty"`
}

// Form is the synthesized signing form for one signer: exactly the assigned
// fields, in document order, each carrying its rules and default.
type Form struct {
	DocumentID string         `json:"documentId"`
	SignerID   string         `json:"signerId"`
	SignerName string         `json:"signerName,omitempty"`
	Fields     []SigningField `json:"fields"`
}

// Field looks up a synthesized field by id.
func (f Form) Field(id string) (SigningField, bool) {
	for _, sf := range f.Fields {
		if sf.ID == id {
			return sf, true
		}
	}
	return SigningField{}, false
}

// Option configures synthesis.
type Option func(*config)

type config struct {
	now func() time.Time
}

// WithClock overrides the clock used for date defaults. Tests pin it.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// Synthesize builds the signing form for one signer. Fields not present in
// the assignment are excluded entirely; the signer never sees them. An
// assignment referencing a field the document does not contain is an error,
// since a persisted layout with dangling ids is corrupted data rather than a
// transient UI state.
func Synthesize(doc field.Document, assignment field.SignerAssignment, options ...Option) (Form, error) {
	cfg := config{now: time.Now}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if err := assignment.Validate(doc); err != nil {
		return Form{}, fmt.Errorf("synth: %w", err)
	}

	form := Form{
		DocumentID: doc.ID,
		SignerID:   assignment.SignerID,
		SignerName: assignment.SignerName,
	}
	for _, f := range doc.Fields {
		if !assignment.Assigned(f.ID) {
			continue
		}
		form.Fields = append(form.Fields, SigningField{
			Field:   f.Clone(),
			Rules:   rulesFor(f),
			Default: defaultFor(f, cfg.now),
		})
	}
	return form, nil
}
