package metrics

import (
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Store Prometheus metrics.
var (
	StoreOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docstore",
			Name:      "operations_total",
			Help:      "Total number of document store operations",
		},
		[]string{"store", "op", "result"},
	)

	StoreOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docstore",
			Name:      "operation_duration_seconds",
			Help:      "Document store operation duration in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"store", "op"},
	)

	StoreDocuments = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "docstore",
			Name:      "documents",
			Help:      "Number of documents held by the store",
		},
		[]string{"store"},
	)
)

// Operation names used as the "op" label.
const (
	OpUpsert = "upsert"
	OpGet    = "get"
	OpExists = "exists"
	OpList   = "list"
)

// Result values used as the "result" label.
const (
	ResultCreated = "created"
	ResultUpdated = "updated"
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultOK      = "ok"
)

// ErrStoreNameInUse is returned when a store name already owns the store series in this process.
var ErrStoreNameInUse = errors.New("store name already in use")

var (
	claimMu sync.Mutex
	claimed = make(map[string]struct{})
)

// ClaimStoreName reserves name as the "store" label for the lifetime of the process.
// The collectors are process-wide, so two stores sharing a name would overwrite each
// other's documents gauge.
func ClaimStoreName(name string) error {
	claimMu.Lock()
	defer claimMu.Unlock()

	if _, ok := claimed[name]; ok {
		return fmt.Errorf("store %q: %w", name, ErrStoreNameInUse)
	}
	claimed[name] = struct{}{}
	return nil
}

// RegisterStoreMetrics registers the store collectors with reg.
// Collectors already registered with reg are skipped. A nil reg means prometheus.DefaultRegisterer.
func RegisterStoreMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{StoreOperationsTotal, StoreOperationDuration, StoreDocuments} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("register store metrics: %w", err)
		}
	}
	return nil
}

// RegisterStore registers the collectors with reg and claims name for them.
func RegisterStore(reg prometheus.Registerer, name string) error {
	if err := RegisterStoreMetrics(reg); err != nil {
		return err
	}
	return ClaimStoreName(name)
}
