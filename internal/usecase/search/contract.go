package search

import (
	"context"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repository provides a snapshot of stored documents for scanning.
type Repository interface {
	List(ctx context.Context) []domdoc.Document
}
