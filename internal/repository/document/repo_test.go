package document

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

func makeDoc(id, title string) domdoc.Document {
	return domdoc.New(id, title, "content", domdoc.NewAuthor("a-1", "Alice"), time.Now())
}

func TestRepo_UpsertGet(t *testing.T) {
	ctx := context.Background()
	r := New()

	if created := r.Upsert(ctx, makeDoc("doc-1", "first")); !created {
		t.Error("expected created=true")
	}

	got, ok := r.Get(ctx, "doc-1")
	if !ok {
		t.Fatal("expected document to be found")
	}
	if got.Title() != "first" {
		t.Errorf("Title() = %q", got.Title())
	}
	if !r.Exists(ctx, "doc-1") {
		t.Error("Exists() = false")
	}
}

func TestRepo_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	r := New()
	r.Upsert(ctx, makeDoc("doc-1", "first"))

	if created := r.Upsert(ctx, makeDoc("doc-1", "second")); created {
		t.Error("expected created=false on replace")
	}

	got, _ := r.Get(ctx, "doc-1")
	if got.Title() != "second" {
		t.Errorf("Title() = %q, want %q", got.Title(), "second")
	}
	if n := r.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestRepo_GetMissing(t *testing.T) {
	r := New()
	got, ok := r.Get(context.Background(), "nope")
	if ok {
		t.Error("expected ok=false")
	}
	if got.ID() != "" {
		t.Errorf("expected zero document, got ID %q", got.ID())
	}
	if r.Exists(context.Background(), "nope") {
		t.Error("Exists() = true for missing id")
	}
}

func TestRepo_ListSnapshot(t *testing.T) {
	ctx := context.Background()
	r := New()
	r.Upsert(ctx, makeDoc("a", "A"))
	r.Upsert(ctx, makeDoc("b", "B"))

	list := r.List(ctx)
	r.Upsert(ctx, makeDoc("c", "C"))

	if len(list) != 2 {
		t.Errorf("snapshot len = %d, want 2", len(list))
	}
	if n := len(r.List(ctx)); n != 3 {
		t.Errorf("List() len = %d, want 3", n)
	}
}

func TestRepo_ConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	r := New()
	const workers, perWorker = 8, 200

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				r.Upsert(ctx, makeDoc(fmt.Sprintf("w%d-%d", w, i), "t"))
				_ = r.List(ctx)
			}
		}()
	}
	wg.Wait()

	if n := r.Count(ctx); n != workers*perWorker {
		t.Errorf("Count() = %d, want %d", n, workers*perWorker)
	}
}
