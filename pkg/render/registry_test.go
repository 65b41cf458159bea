package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-signfields/pkg/synth"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, _ synth.Form, _ Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}

	renderer, err := reg.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}

	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "tui"})
	reg.MustRegister(stubRenderer{name: "html"})

	names := reg.List()
	if len(names) != 2 || names[0] != "html" || names[1] != "tui" {
		t.Fatalf("expected sorted names, got %v", names)
	}
	if !reg.Has("tui") || reg.Has("preact") {
		t.Fatalf("Has reported wrong membership")
	}
}

func TestOptionsValueFor(t *testing.T) {
	opts := Options{
		Values: map[string]any{"f1": "override"},
		Errors: map[string][]string{"f1": {"bad"}},
	}

	if got := opts.ValueFor("f1", "default"); got != "override" {
		t.Fatalf("expected override, got %v", got)
	}
	if got := opts.ValueFor("f2", "default"); got != "default" {
		t.Fatalf("expected fallback, got %v", got)
	}
	if msgs := opts.ErrorsFor("f1"); len(msgs) != 1 || msgs[0] != "bad" {
		t.Fatalf("unexpected errors %v", msgs)
	}
	if msgs := (Options{}).ErrorsFor("f1"); msgs != nil {
		t.Fatalf("expected nil errors for empty options")
	}
}
