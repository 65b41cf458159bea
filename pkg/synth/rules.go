// Package synth builds a signer's input form from a document's field layout
// and that signer's assignment: per-field validation rules, default values,
// and submission checking. Synthesis is pure and re-derived on every call;
// nothing is cached across assignment changes.
package synth

import (
	"time"

	"github.com/goliatone/go-signfields/pkg/field"
)

// DateLayout is the wire format for date field values.
const DateLayout = "2006-01-02"

// Rule kinds produced by the static per-type dispatch. The set is closed;
// renderers and validators switch over these constants.
const (
	RuleRequired   = "required"
	RuleDate       = "date"
	RuleMustBeTrue = "mustBeTrue"
	RuleSignature  = "signature"
)

// Rule is a single validation constraint attached to a synthesized field.
type Rule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// rulesFor dispatches over the closed field-type set. Required fields gain a
// presence rule; type-specific rules apply whether or not the field is
// required (an optional date must still parse when supplied).
func rulesFor(f field.Field) []Rule {
	var rules []Rule
	if f.Required {
		rules = append(rules, Rule{Kind: RuleRequired})
	}

	switch f.Type {
	case field.TypeDate:
		rules = append(rules, Rule{Kind: RuleDate, Params: map[string]string{"layout": DateLayout}})
	case field.TypeCheckbox:
		if f.Required {
			rules = append(rules, Rule{Kind: RuleMustBeTrue})
		}
	case field.TypeSignature, field.TypeSignBlock:
		rules = append(rules, Rule{Kind: RuleSignature})
	}
	return rules
}

// defaultFor returns the initial value a rendered control starts from.
// Dates default to the current calendar date supplied by the clock.
func defaultFor(f field.Field, now func() time.Time) any {
	switch f.Type {
	case field.TypeDate:
		return now().Format(DateLayout)
	case field.TypeCheckbox:
		return false
	default:
		return ""
	}
}
