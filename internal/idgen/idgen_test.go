package idgen

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestUUID_CanonicalAndUnique(t *testing.T) {
	var g UUID
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := g.NewID()
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("uuid.Parse(%q): %v", id, err)
		}
		if parsed.String() != id {
			t.Errorf("id %q is not in canonical form", id)
		}
		if parsed.Version() != 4 {
			t.Errorf("version = %d, want 4", parsed.Version())
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestSequence_Deterministic(t *testing.T) {
	s := NewSequence("doc-")
	for _, want := range []string{"doc-1", "doc-2", "doc-3"} {
		if got := s.NewID(); got != want {
			t.Errorf("NewID() = %q, want %q", got, want)
		}
	}
}

func TestSequence_Concurrent(t *testing.T) {
	s := NewSequence("")
	const workers, perWorker = 8, 250

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := s.NewID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("unique ids = %d, want %d", len(seen), workers*perWorker)
	}
}

func TestFunc(t *testing.T) {
	g := Func(func() string { return "fixed" })
	if got := g.NewID(); got != "fixed" {
		t.Errorf("NewID() = %q", got)
	}
}
