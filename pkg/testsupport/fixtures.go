// Package testsupport holds fixture and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/layout"
)

// LoadLayout reads a serialized layout fixture (JSON or YAML) and decodes it
// into fields. Testing helpers fail the test on error to keep contract tests
// concise.
func LoadLayout(t *testing.T, path string) []field.Field {
	t.Helper()

	fields, err := LoadLayoutFromPath(path)
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}
	return fields
}

// LoadLayoutFromPath decodes a layout fixture without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadLayoutFromPath(path string) ([]field.Field, error) {
	if path == "" {
		return nil, errors.New("testsupport: layout path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read layout: %w", err)
	}
	cfg, err := layout.DecodeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode layout: %w", err)
	}
	fields, err := layout.FieldsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode layout: %w", err)
	}
	return fields, nil
}

// SampleDocument builds a small pending document covering every field type,
// useful as a baseline fixture across packages.
func SampleDocument(id string) field.Document {
	name := field.New("f-name", field.TypeText, 40, 40, 1)
	name.Label = "Full name"
	name.Required = true

	signedOn := field.New("f-date", field.TypeDate, 40, 100, 1)
	signedOn.Label = "Signed on"

	consent := field.New("f-consent", field.TypeCheckbox, 40, 160, 1)
	consent.Label = "I agree"
	consent.Required = true

	sig := field.New("f-signature", field.TypeSignature, 40, 220, 1)
	sig.Label = "Signature"
	sig.Required = true

	block := field.New("f-block", field.TypeSignBlock, 40, 320, 2)

	return field.Document{
		ID:     id,
		Status: field.DocumentPending,
		Fields: []field.Field{name, signedOn, consent, sig, block},
	}
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
