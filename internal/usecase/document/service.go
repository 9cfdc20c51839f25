package document

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docstore/internal/domain"
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/logger"
)

// DefaultMaxIDAttempts bounds identifier re-draws when a generated ID is already taken.
const DefaultMaxIDAttempts = 8

// Service handles document upsert and lookup.
type Service struct {
	repo          Repository
	ids           IDGenerator
	maxIDAttempts int
}

// New creates a document service.
func New(repo Repository, ids IDGenerator) *Service {
	return &Service{repo: repo, ids: ids, maxIDAttempts: DefaultMaxIDAttempts}
}

// WithMaxIDAttempts overrides the identifier re-draw limit.
func (s *Service) WithMaxIDAttempts(n int) *Service {
	if n > 0 {
		s.maxIDAttempts = n
	}
	return s
}

// Save upserts doc. A document without an ID gets a generated one,
// written back into *doc. Returns the stored document.
func (s *Service) Save(ctx context.Context, doc *domdoc.Document) (domdoc.Document, error) {
	if doc == nil {
		return domdoc.Document{}, fmt.Errorf("document cannot be nil: %w", domain.ErrInvalidArgument)
	}

	generated := false
	if !doc.HasID() {
		id, err := s.nextID(ctx)
		if err != nil {
			return domdoc.Document{}, err
		}
		*doc = doc.WithID(id)
		generated = true
	}

	stored := *doc
	created := s.repo.Upsert(ctx, stored)

	logger.FromContext(ctx).Debug("document saved",
		zap.String("id", stored.ID()),
		zap.Bool("created", created),
		zap.Bool("generated_id", generated),
	)
	return stored, nil
}

// FindByID returns the document stored under id. A miss is not an error.
func (s *Service) FindByID(ctx context.Context, id string) (domdoc.Document, bool) {
	return s.repo.Get(ctx, id)
}

// nextID draws identifiers until one is free in the repository.
func (s *Service) nextID(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= s.maxIDAttempts; attempt++ {
		id := s.ids.NewID()
		if id != "" && !s.repo.Exists(ctx, id) {
			return id, nil
		}
		logger.FromContext(ctx).Warn("generated id rejected",
			zap.String("id", id),
			zap.Int("attempt", attempt),
		)
	}
	return "", fmt.Errorf("no free id after %d attempts: %w", s.maxIDAttempts, domain.ErrIDGeneration)
}
