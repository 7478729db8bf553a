package server

import (
	"sync/atomic"

	"github.com/openlms/editorconf/internal/editor"
)

// AggregatorProvider yields the aggregator serving the current settings
// snapshot.
type AggregatorProvider interface {
	Aggregator() *editor.Aggregator
}

// Interface guard
var _ AggregatorProvider = (*SwappableAggregator)(nil)

// SwappableAggregator holds the live aggregator behind an atomic pointer so
// a settings reload can swap the whole collaborator set without pausing
// request traffic. Requests already in flight finish against the snapshot
// they started with.
type SwappableAggregator struct {
	current atomic.Pointer[editor.Aggregator]
}

// NewSwappableAggregator creates the holder, optionally seeded.
func NewSwappableAggregator(initial *editor.Aggregator) *SwappableAggregator {
	s := &SwappableAggregator{}
	if initial != nil {
		s.current.Store(initial)
	}
	return s
}

// Aggregator implements AggregatorProvider. Returns nil before the first
// Swap.
func (s *SwappableAggregator) Aggregator() *editor.Aggregator {
	return s.current.Load()
}

// Swap replaces the live aggregator.
func (s *SwappableAggregator) Swap(a *editor.Aggregator) {
	s.current.Store(a)
}
