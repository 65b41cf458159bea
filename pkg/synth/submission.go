package synth

import (
	"fmt"
	"strings"
	"time"
)

// Submission maps field ids to the values a signer entered. Text and date
// fields carry strings, checkboxes carry booleans, signature fields carry
// the pad's exported payload string.
type Submission map[string]any

// Issue is one field-scoped validation failure, reported to the caller as a
// structured message. Submission is blocked until no issues remain.
type Issue struct {
	FieldID string `json:"fieldId"`
	Label   string `json:"label,omitempty"`
	Message string `json:"message"`
}

// ValidateSubmission checks every rendered field's value against its rules.
// An empty result means the submission is acceptable. Values for ids outside
// the form are reported as issues so a stale client cannot smuggle fields
// the signer was never assigned.
func ValidateSubmission(form Form, submission Submission) []Issue {
	var issues []Issue

	for id := range submission {
		if _, ok := form.Field(id); !ok {
			issues = append(issues, Issue{
				FieldID: id,
				Message: "value supplied for a field outside this form",
			})
		}
	}

	for _, sf := range form.Fields {
		value, present := submission[sf.ID]
		for _, rule := range sf.Rules {
			if issue, bad := checkRule(sf, rule, value, present); bad {
				issues = append(issues, issue)
				break
			}
		}
	}
	return issues
}

// ApplySubmission validates and, when clean, fills each synthesized field's
// Value, returning the completed form. The input form is not mutated.
func ApplySubmission(form Form, submission Submission) (Form, []Issue) {
	if issues := ValidateSubmission(form, submission); len(issues) > 0 {
		return Form{}, issues
	}

	out := form
	out.Fields = make([]SigningField, len(form.Fields))
	for idx, sf := range form.Fields {
		filled := sf
		filled.Field = sf.Field.Clone()
		if value, ok := submission[sf.ID]; ok {
			filled.Value = value
		} else {
			filled.Value = sf.Default
		}
		out.Fields[idx] = filled
	}
	return out, nil
}

func checkRule(sf SigningField, rule Rule, value any, present bool) (Issue, bool) {
	fail := func(msg string) (Issue, bool) {
		return Issue{FieldID: sf.ID, Label: sf.Label, Message: msg}, true
	}

	switch rule.Kind {
	case RuleRequired:
		if !present || isEmptyValue(value) {
			return fail(fmt.Sprintf("%s is required", labelOrID(sf)))
		}
	case RuleDate:
		if !present || isEmptyValue(value) {
			// Presence is RuleRequired's concern; an absent optional date passes.
			return Issue{}, false
		}
		raw, ok := value.(string)
		if !ok {
			return fail(fmt.Sprintf("%s must be a date string", labelOrID(sf)))
		}
		layout := rule.Params["layout"]
		if layout == "" {
			layout = DateLayout
		}
		if _, err := time.Parse(layout, strings.TrimSpace(raw)); err != nil {
			return fail(fmt.Sprintf("%s must be a valid %s date", labelOrID(sf), layout))
		}
	case RuleMustBeTrue:
		checked, ok := value.(bool)
		if !ok || !checked {
			return fail(fmt.Sprintf("%s must be checked", labelOrID(sf)))
		}
	case RuleSignature:
		if !sf.Required {
			return Issue{}, false
		}
		raw, ok := value.(string)
		if !ok || strings.TrimSpace(raw) == "" {
			return fail(fmt.Sprintf("%s requires a signature", labelOrID(sf)))
		}
	}
	return Issue{}, false
}

func labelOrID(sf SigningField) string {
	if strings.TrimSpace(sf.Label) != "" {
		return sf.Label
	}
	return sf.ID
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	}
	return false
}
