package observable

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestRefCount_ClonesAndReleases(t *testing.T) {
	h := New("rc")
	const k = 5
	clones := make([]*Handle, 0, k)
	for i := 0; i < k; i++ {
		clones = append(clones, h.Clone())
	}
	if n := h.RefCount(); n != 1+k {
		t.Fatalf("refcount=%d want %d", n, 1+k)
	}
	for _, c := range clones {
		c.Release()
		c.Release() // idempotent per handle
	}
	if n := h.RefCount(); n != 1 {
		t.Fatalf("refcount=%d want 1", n)
	}
	h.Release()
	if n := h.RefCount(); n != 0 {
		t.Fatalf("refcount=%d want 0", n)
	}
}

func TestReleasedHandle_Errors(t *testing.T) {
	h := New("r")
	keep := h.Clone()
	defer keep.Release()
	h.Release()
	if _, err := h.Acquire(); !IsHandleReleased(err) {
		t.Fatalf("expected handle released error, got %v", err)
	}
	if err := h.SetName("x"); !IsHandleReleased(err) {
		t.Fatalf("expected handle released error, got %v", err)
	}
	// Other holders are unaffected.
	if err := keep.SetName("x"); err != nil {
		t.Fatalf("set name via live handle: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic cloning a released handle")
		}
	}()
	_ = h.Clone()
}

func TestWith_PanicPoisonsLock(t *testing.T) {
	h := New("p")
	defer h.Release()
	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("expected panic to propagate, got %v", r)
			}
		}()
		_ = h.With(func(g *Guard) error {
			g.SetName("half-written")
			panic("boom")
		})
	}()
	if !h.Poisoned() {
		t.Fatalf("expected poisoned lock")
	}
	if _, err := h.Acquire(); !IsLockPoisoned(err) {
		t.Fatalf("expected lock poisoned error, got %v", err)
	}
	if _, err := h.Snapshot(); !IsLockPoisoned(err) {
		t.Fatalf("expected snapshot to fail, got %v", err)
	}
	if got := h.String(); got != "Observable { <poisoned> }" {
		t.Fatalf("unexpected debug string: %s", got)
	}

	// Caller chooses to continue with the possibly inconsistent state.
	g := h.Salvage()
	if g.Name() != "half-written" {
		t.Fatalf("salvaged name=%q", g.Name())
	}
	g.SetName("repaired")
	g.Release()
	h.ClearPoison()
	if h.Poisoned() {
		t.Fatalf("poison not cleared")
	}
	s, err := h.Snapshot()
	if err != nil || s.Name != "repaired" {
		t.Fatalf("snapshot after repair: %+v, %v", s, err)
	}
}

func TestWith_ErrorDoesNotPoison(t *testing.T) {
	h := New("e")
	defer h.Release()
	sentinel := errors.New("nope")
	if err := h.With(func(*Guard) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}
	if h.Poisoned() {
		t.Fatalf("returning an error must not poison")
	}
}

func TestSetName_Concurrent(t *testing.T) {
	h := New("c")
	defer h.Release()
	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		c := h.Clone()
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer c.Release()
			if err := c.SetName("n" + strconv.Itoa(i)); err != nil {
				t.Errorf("set name: %v", err)
			}
			_ = c.Enqueue("tick", i)
		}(i)
	}
	wg.Wait()
	s, err := h.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	found := false
	for i := 0; i < n; i++ {
		if s.Name == "n"+strconv.Itoa(i) {
			found = true
		}
	}
	if !found {
		t.Fatalf("final name %q was never written", s.Name)
	}
	if s.EventQueueLength != n {
		t.Fatalf("queue length=%d want %d", s.EventQueueLength, n)
	}
	if h.RefCount() != 1 {
		t.Fatalf("refcount=%d want 1", h.RefCount())
	}
}
