package layout_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/layout"
	"github.com/goliatone/go-signfields/pkg/testsupport"
)

// Contract test over the persisted payload shape: a YAML fixture decodes to
// the expected field set, and re-encoding it reproduces the committed JSON
// byte for byte. Regenerate with UPDATE_GOLDENS=1.
func TestConfigPayloadContract(t *testing.T) {
	fields := testsupport.LoadLayout(t, filepath.Join("testdata", "layout.yaml"))

	want := []field.Field{
		{
			ID:       "f-name",
			Type:     field.TypeText,
			X:        40,
			Y:        40,
			Width:    150,
			Height:   40,
			Page:     1,
			Label:    "Full name",
			Required: true,
		},
		{
			ID:     "f-block",
			Type:   field.TypeSignBlock,
			X:      40,
			Y:      120,
			Width:  200,
			Height: 120,
			Page:   2,
			Label:  "Capture",
			CaptureOptions: &field.CaptureOptions{
				Video:     true,
				Audio:     false,
				Image:     true,
				Signature: true,
			},
		},
	}
	if diff := testsupport.CompareGolden(want, fields); diff != "" {
		t.Fatalf("decoded fields mismatch (-want +got):\n%s", diff)
	}

	encoded, err := layout.EncodeConfig(layout.ToConfig(fields))
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}

	goldenPath := filepath.Join("testdata", "config.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, []byte(encoded)) {
		return
	}

	if diff := testsupport.CompareGolden(testsupport.MustReadGoldenString(t, goldenPath), encoded); diff != "" {
		t.Fatalf("config payload mismatch (-want +got):\n%s", diff)
	}
}
