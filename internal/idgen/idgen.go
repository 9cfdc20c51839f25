// Package idgen provides injectable document identifier generators.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces document identifiers. Implementations must be safe for concurrent use.
type Generator interface {
	NewID() string
}

// Func adapts a plain function to the Generator interface.
type Func func() string

// NewID calls f.
func (f Func) NewID() string { return f() }

// UUID generates random 128-bit identifiers in canonical string form.
type UUID struct{}

// NewID returns a new random (version 4) UUID string.
func (UUID) NewID() string { return uuid.NewString() }

// Sequence generates prefix-N identifiers from a monotonic counter.
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

// NewSequence creates a Sequence whose first identifier is prefix + "1".
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	return s.prefix + strconv.FormatUint(s.next.Add(1), 10)
}
