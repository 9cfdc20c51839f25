// Package instrumented decorates a document repository with Prometheus metrics and debug logging.
package instrumented

import (
	"context"
	"time"

	"go.uber.org/zap"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/metrics"
)

// Store is the repository contract being decorated.
type Store interface {
	Upsert(ctx context.Context, doc domdoc.Document) bool
	Get(ctx context.Context, id string) (domdoc.Document, bool)
	Exists(ctx context.Context, id string) bool
	List(ctx context.Context) []domdoc.Document
	Count(ctx context.Context) int
}

// Repo wraps a Store and records per-operation metrics labelled with the store name.
type Repo struct {
	inner  Store
	name   string
	logger *zap.Logger
}

// New wraps inner. name is the "store" label value.
func New(inner Store, name string, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{inner: inner, name: name, logger: logger}
}

// Upsert delegates and records created/updated plus the documents gauge.
func (r *Repo) Upsert(ctx context.Context, doc domdoc.Document) bool {
	start := time.Now()
	created := r.inner.Upsert(ctx, doc)
	r.observe(metrics.OpUpsert, start)

	result := metrics.ResultUpdated
	if created {
		result = metrics.ResultCreated
	}
	metrics.StoreOperationsTotal.WithLabelValues(r.name, metrics.OpUpsert, result).Inc()
	if created {
		metrics.StoreDocuments.WithLabelValues(r.name).Inc()
	}

	r.logger.Debug("repository upsert",
		zap.String("store", r.name),
		zap.String("id", doc.ID()),
		zap.String("result", result),
	)
	return created
}

// Get delegates and records hit/miss.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, bool) {
	start := time.Now()
	doc, ok := r.inner.Get(ctx, id)
	r.observe(metrics.OpGet, start)
	metrics.StoreOperationsTotal.WithLabelValues(r.name, metrics.OpGet, hitOrMiss(ok)).Inc()
	return doc, ok
}

// Exists delegates and records hit/miss.
func (r *Repo) Exists(ctx context.Context, id string) bool {
	start := time.Now()
	ok := r.inner.Exists(ctx, id)
	r.observe(metrics.OpExists, start)
	metrics.StoreOperationsTotal.WithLabelValues(r.name, metrics.OpExists, hitOrMiss(ok)).Inc()
	return ok
}

// List delegates and records the snapshot size at debug level.
func (r *Repo) List(ctx context.Context) []domdoc.Document {
	start := time.Now()
	docs := r.inner.List(ctx)
	r.observe(metrics.OpList, start)
	metrics.StoreOperationsTotal.WithLabelValues(r.name, metrics.OpList, metrics.ResultOK).Inc()

	r.logger.Debug("repository list",
		zap.String("store", r.name),
		zap.Int("documents", len(docs)),
	)
	return docs
}

// Count delegates without instrumentation.
func (r *Repo) Count(ctx context.Context) int {
	return r.inner.Count(ctx)
}

func (r *Repo) observe(op string, start time.Time) {
	metrics.StoreOperationDuration.WithLabelValues(r.name, op).Observe(time.Since(start).Seconds())
}

func hitOrMiss(ok bool) string {
	if ok {
		return metrics.ResultHit
	}
	return metrics.ResultMiss
}
