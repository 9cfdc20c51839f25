package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/criteria"
	"github.com/kailas-cloud/docstore/internal/logger"
)

// Service filters stored documents by criteria with a linear scan.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns every stored document matching c. A nil c matches all documents.
// Result order is unspecified.
func (s *Service) Search(ctx context.Context, c *criteria.Criteria) []domdoc.Document {
	start := time.Now()
	docs := s.repo.List(ctx)

	if c.IsEmpty() {
		s.log(ctx, len(docs), len(docs), start)
		return docs
	}

	matched := docs[:0]
	for i := range docs {
		if c.Matches(&docs[i]) {
			matched = append(matched, docs[i])
		}
	}

	s.log(ctx, len(docs), len(matched), start)
	return matched
}

func (s *Service) log(ctx context.Context, scanned, matched int, start time.Time) {
	logger.FromContext(ctx).Debug("search completed",
		zap.Int("scanned", scanned),
		zap.Int("matched", matched),
		zap.Duration("duration", time.Since(start)),
	)
}
