package input

import "sync/atomic"

// Metrics tracks parser activity with atomic counters. One Metrics instance
// belongs to each Parser and is safe to read while the parser runs.
type Metrics struct {
	keyEvents         atomic.Uint64
	specialDispatches atomic.Uint64
	chainDispatches   atomic.Uint64
	abandonedChains   atomic.Uint64
	ambiguousTimeouts atomic.Uint64
	ignoredEvents     atomic.Uint64
	staleTimerFires   atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	// KeyEvents is the total number of key events handled.
	KeyEvents uint64

	// SpecialDispatches counts commands fired from the special table.
	SpecialDispatches uint64

	// ChainDispatches counts commands fired from the chain table,
	// including ambiguity-timeout firings.
	ChainDispatches uint64

	// AbandonedChains counts chains reset because no binding matched.
	AbandonedChains uint64

	// AmbiguousTimeouts counts ambiguity timers that fired.
	AmbiguousTimeouts uint64

	// IgnoredEvents counts events discarded without touching state:
	// unmatched modified keys, text-less presses, and non-special keys
	// when chains are unsupported.
	IgnoredEvents uint64

	// StaleTimerFires counts timer callbacks suppressed by the
	// generation guard. Always zero unless a deadline raced its
	// cancellation.
	StaleTimerFires uint64
}

// Snapshot returns a consistent-enough copy of all counters for display.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		KeyEvents:         m.keyEvents.Load(),
		SpecialDispatches: m.specialDispatches.Load(),
		ChainDispatches:   m.chainDispatches.Load(),
		AbandonedChains:   m.abandonedChains.Load(),
		AmbiguousTimeouts: m.ambiguousTimeouts.Load(),
		IgnoredEvents:     m.ignoredEvents.Load(),
		StaleTimerFires:   m.staleTimerFires.Load(),
	}
}
