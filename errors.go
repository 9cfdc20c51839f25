package docstore

import (
	"github.com/kailas-cloud/docstore/internal/domain"
	"github.com/kailas-cloud/docstore/internal/metrics"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrIDGeneration    = domain.ErrIDGeneration
	ErrStoreNameInUse  = metrics.ErrStoreNameInUse
)
