package demo

import (
	"bytes"
	"testing"

	"observe/internal/observable"
)

func TestRun_Output(t *testing.T) {
	var buf bytes.Buffer
	h, err := Run(&buf, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	defer h.Release()
	want := "there are 2 instances of z.\n" +
		"z: Observable { name: \"z\", observer_count: 0, event_queue_length: 0 }\n" +
		"z2: Observable { name: \"newZ3Name\", observer_count: 0, event_queue_length: 0 }\n" +
		"Hello, world!\n"
	if buf.String() != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", buf.String(), want)
	}
	// The clone is released on return; only the returned handle remains.
	if h.RefCount() != 1 {
		t.Fatalf("refcount=%d want 1", h.RefCount())
	}
}

func TestRun_CustomNames(t *testing.T) {
	var buf bytes.Buffer
	pub := observable.NewMemoryPublisher()
	h, err := Run(&buf, Options{Name: "alpha", RenameTo: "beta", Publisher: pub})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	s, err := h.Snapshot()
	if err != nil || s.Name != "beta" {
		t.Fatalf("snapshot: %+v %v", s, err)
	}
	h.Release()
	names := pub.Names()
	if names[len(names)-1] != observable.EventDropped {
		t.Fatalf("expected entity_dropped last, got %v", names)
	}
}
