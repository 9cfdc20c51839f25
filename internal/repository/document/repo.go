package document

import (
	"context"
	"sync"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repo is an in-memory document repository keyed by document ID.
// Safe for concurrent use. Data is lost when the process exits.
type Repo struct {
	mu   sync.RWMutex
	docs map[string]domdoc.Document
}

// New creates an empty document repository.
func New() *Repo {
	return &Repo{docs: make(map[string]domdoc.Document)}
}

// Upsert stores doc under its ID, replacing any previous value. Returns true if created.
func (r *Repo) Upsert(_ context.Context, doc domdoc.Document) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.docs[doc.ID()]
	r.docs[doc.ID()] = doc
	return !exists
}

// Get returns the document stored under id.
func (r *Repo) Get(_ context.Context, id string) (domdoc.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	return doc, ok
}

// Exists reports whether a document is stored under id.
func (r *Repo) Exists(_ context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.docs[id]
	return ok
}

// List returns a snapshot of all stored documents in map iteration order.
func (r *Repo) List(_ context.Context) []domdoc.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domdoc.Document, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out
}

// Count returns the number of stored documents.
func (r *Repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}
