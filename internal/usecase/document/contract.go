package document

import (
	"context"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Upsert(ctx context.Context, doc domdoc.Document) (created bool)
	Get(ctx context.Context, id string) (domdoc.Document, bool)
	Exists(ctx context.Context, id string) bool
}

// IDGenerator produces identifiers for documents saved without one.
type IDGenerator interface {
	NewID() string
}
