package docstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docstore/internal/idgen"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	name          string
	ids           IDGenerator
	maxIDAttempts int

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// IDGenerator produces identifiers for documents saved without one.
// Implementations must be safe for concurrent use.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc = idgen.Func

// WithName sets the store name used in logs and metric labels. Default: "default".
func WithName(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.name = name
	})
}

// WithIDGenerator replaces the default random UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return optionFunc(func(c *clientConfig) {
		c.ids = g
	})
}

// WithIDPrefix switches to sequential identifiers: prefix1, prefix2, ...
func WithIDPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.ids = idgen.NewSequence(prefix)
	})
}

// WithMaxIDAttempts bounds how many generated identifiers are tried
// before Save fails with ErrIDGeneration. Default: 8.
func WithMaxIDAttempts(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxIDAttempts = n
	})
}

// WithLogger enables structured logging for store operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithMetrics registers store metrics (operation counts, durations, document count)
// on the given registerer. Pass nil to disable (default).
// Store names must be unique per process when metrics are enabled; New fails
// with ErrStoreNameInUse otherwise.
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
