package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/idgen"
	logpkg "github.com/kailas-cloud/docstore/internal/logger"
	"github.com/kailas-cloud/docstore/internal/metrics"
	documentrepo "github.com/kailas-cloud/docstore/internal/repository/document"
	"github.com/kailas-cloud/docstore/internal/repository/instrumented"
	documentuc "github.com/kailas-cloud/docstore/internal/usecase/document"
	searchuc "github.com/kailas-cloud/docstore/internal/usecase/search"
)

const defaultName = "default"

// Client is the docstore entry point. Each Client owns an independent store.
// Safe for concurrent use.
type Client struct {
	name      string
	logger    *zap.Logger
	repo      instrumented.Store
	docSvc    *documentuc.Service
	searchSvc *searchuc.Service
}

// New creates an empty store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{name: defaultName}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.name == "" {
		return nil, errors.New("docstore: store name must not be empty")
	}
	if cfg.ids == nil {
		cfg.ids = idgen.UUID{}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return wireClient(cfg)
}

func wireClient(cfg *clientConfig) (*Client, error) {
	log := cfg.logger.With(zap.String("store", cfg.name))

	var repo instrumented.Store = documentrepo.New()
	if cfg.metricsReg != nil {
		if err := metrics.RegisterStore(cfg.metricsReg, cfg.name); err != nil {
			return nil, fmt.Errorf("docstore: %w", err)
		}
		repo = instrumented.New(repo, cfg.name, log)
	}

	docSvc := documentuc.New(repo, cfg.ids).WithMaxIDAttempts(cfg.maxIDAttempts)
	searchSvc := searchuc.New(repo)

	return &Client{
		name:      cfg.name,
		logger:    log,
		repo:      repo,
		docSvc:    docSvc,
		searchSvc: searchSvc,
	}, nil
}

// Name returns the store name.
func (c *Client) Name() string { return c.name }

// Save inserts doc or fully replaces the document with the same ID.
// If doc.ID is empty a unique ID is generated and written back into doc.
// Returns the stored document. A nil doc fails with ErrInvalidArgument.
func (c *Client) Save(ctx context.Context, doc *Document) (Document, error) {
	ctx = c.withLogger(ctx)

	var in *domdoc.Document
	if doc != nil {
		d := toDomainDocument(doc)
		in = &d
	}

	saved, err := c.docSvc.Save(ctx, in)
	if err != nil {
		return Document{}, fmt.Errorf("save: %w", err)
	}

	doc.ID = saved.ID()
	return fromDomainDocument(&saved), nil
}

// FindByID returns the document stored under id. ok is false when there is none.
func (c *Client) FindByID(ctx context.Context, id string) (Document, bool) {
	found, ok := c.docSvc.FindByID(c.withLogger(ctx), id)
	if !ok {
		return Document{}, false
	}
	return fromDomainDocument(&found), true
}

// Search returns every document matching criteria; nil criteria returns all documents.
// Result order is unspecified. An empty result is not an error.
func (c *Client) Search(ctx context.Context, criteria *SearchCriteria) []Document {
	docs := c.searchSvc.Search(c.withLogger(ctx), toCriteria(criteria))
	return fromDomainDocuments(docs)
}

// Count returns the number of stored documents.
func (c *Client) Count(ctx context.Context) int {
	return c.repo.Count(ctx)
}

func (c *Client) withLogger(ctx context.Context) context.Context {
	return logpkg.ContextWithLogger(ctx, c.logger)
}
