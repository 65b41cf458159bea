package field

import (
	"fmt"
	"strings"
)

// DocumentStatus tracks a document through the signing lifecycle.
type DocumentStatus string

const (
	DocumentPending   DocumentStatus = "pending"
	DocumentCompleted DocumentStatus = "completed"
	DocumentExpired   DocumentStatus = "expired"
)

// AssignmentStatus tracks one signer's progress against their assigned
// fields.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentCompleted AssignmentStatus = "completed"
)

// Document is a page-content reference plus the frozen, ordered field layout
// placed on it. Layout geometry is never mutated after serialization; only
// signer completions append to the document's state.
type Document struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Status     DocumentStatus `json:"status"`
	Fields     []Field        `json:"fields"`
	PageRef    string         `json:"pageRef,omitempty"`
	PageWidth  float64        `json:"pageWidth,omitempty"`
	PageHeight float64        `json:"pageHeight,omitempty"`
}

// Field looks up a field by id, preserving the no-error contract lookups
// share across the module.
func (d Document) Field(id string) (Field, bool) {
	for _, f := range d.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// SignerAssignment is the subset of a document's fields one signer must
// complete. A field may appear in zero, one, or several assignments; the
// synthesizer filters per signer and does not enforce exclusivity.
type SignerAssignment struct {
	SignerID    string           `json:"signerId"`
	SignerName  string           `json:"signerName"`
	SignerEmail string           `json:"signerEmail"`
	FieldIDs    []string         `json:"fields"`
	Status      AssignmentStatus `json:"status"`
}

// Validate checks that every assigned id references a field present in the
// document. Dangling ids indicate a corrupted layout rather than a transient
// UI state, so they surface as errors here.
func (a SignerAssignment) Validate(doc Document) error {
	if strings.TrimSpace(a.SignerID) == "" {
		return fmt.Errorf("field: assignment signer id is required")
	}
	for _, id := range a.FieldIDs {
		if _, ok := doc.Field(id); !ok {
			return fmt.Errorf("field: assignment for signer %s references unknown field %q", a.SignerID, id)
		}
	}
	return nil
}

// Assigned reports whether the assignment includes the given field id.
func (a SignerAssignment) Assigned(id string) bool {
	for _, candidate := range a.FieldIDs {
		if candidate == id {
			return true
		}
	}
	return false
}
