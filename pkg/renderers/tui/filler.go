package tui

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/signature"
	"github.com/goliatone/go-signfields/pkg/synth"
)

// Option configures a Filler.
type Option func(*Filler)

// WithDriver injects a PromptDriver. Tests supply fakes; the default is the
// survey-backed driver.
func WithDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithFileReader overrides how signature image paths are loaded.
func WithFileReader(read func(path string) ([]byte, error)) Option {
	return func(f *Filler) {
		if read != nil {
			f.readFile = read
		}
	}
}

// Filler walks a synthesized form field by field, prompting for each value
// and validating as it goes, and returns the resulting submission.
type Filler struct {
	driver   PromptDriver
	readFile func(path string) ([]byte, error)
}

// NewFiller constructs a filler with the survey driver unless overridden.
func NewFiller(options ...Option) *Filler {
	f := &Filler{
		driver:   NewSurveyDriver(),
		readFile: os.ReadFile,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Fill prompts for every synthesized field in order and returns the
// submission. Values are validated per prompt, then once more as a whole so
// the returned submission always satisfies the form's rules.
func (f *Filler) Fill(ctx context.Context, form synth.Form) (synth.Submission, error) {
	submission := synth.Submission{}

	for _, sf := range form.Fields {
		value, err := f.promptField(ctx, sf)
		if err != nil {
			return nil, err
		}
		submission[sf.ID] = value
	}

	if issues := synth.ValidateSubmission(form, submission); len(issues) > 0 {
		return nil, fmt.Errorf("tui: submission failed validation: %s (%s)", issues[0].Message, issues[0].FieldID)
	}
	return submission, nil
}

func (f *Filler) promptField(ctx context.Context, sf synth.SigningField) (any, error) {
	label := sf.Label
	if strings.TrimSpace(label) == "" {
		label = sf.ID
	}

	switch sf.Type {
	case field.TypeCheckbox:
		checked, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: boolValue(sf.Default),
		})
		if err != nil {
			return nil, err
		}
		if sf.Required && !checked {
			return nil, fmt.Errorf("tui: %s must be accepted", label)
		}
		return checked, nil

	case field.TypeDate:
		return f.driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("%s (%s)", label, synth.DateLayout),
			Default:   stringValue(sf.Default),
			Validator: dateValidator(sf.Required),
		})

	case field.TypeSignature, field.TypeSignBlock:
		return f.promptSignature(ctx, sf, label)

	default:
		return f.driver.Input(ctx, InputConfig{
			Message:   label,
			Default:   stringValue(sf.Default),
			Validator: requiredValidator(sf.Required),
		})
	}
}

// promptSignature asks for a path to a PNG image, then normalizes it through
// a signature pad hydration/export cycle so the submitted payload matches
// what a drawn signature would produce.
func (f *Filler) promptSignature(ctx context.Context, sf synth.SigningField, label string) (any, error) {
	path, err := f.driver.Input(ctx, InputConfig{
		Message:   fmt.Sprintf("%s: path to signature image (PNG)", label),
		Help:      "Leave empty to skip optional signatures.",
		Validator: requiredValidator(sf.Required),
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return "", nil
	}

	data, err := f.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("tui: read signature image: %w", err)
	}
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	pad, err := signature.New(
		signature.WithSize(int(sf.Width), int(sf.Height)),
		signature.WithImage(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: %s is not a usable signature image: %w", path, err)
	}
	return pad.Export()
}

func requiredValidator(required bool) func(ans any) error {
	if !required {
		return nil
	}
	return func(ans any) error {
		raw, _ := ans.(string)
		if strings.TrimSpace(raw) == "" {
			return fmt.Errorf("a value is required")
		}
		return nil
	}
}

func dateValidator(required bool) func(ans any) error {
	return func(ans any) error {
		raw, _ := ans.(string)
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			if required {
				return fmt.Errorf("a date is required")
			}
			return nil
		}
		if _, err := time.Parse(synth.DateLayout, trimmed); err != nil {
			return fmt.Errorf("expected a %s date", synth.DateLayout)
		}
		return nil
	}
}

func stringValue(value any) string {
	raw, _ := value.(string)
	return raw
}

func boolValue(value any) bool {
	checked, _ := value.(bool)
	return checked
}
