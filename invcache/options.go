// SPDX-License-Identifier: MIT

// Package invcache: functional configuration for CachedMatrix construction.
//
// Design goals:
//   - Deterministic behavior: no global state beyond the default logger.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: CachedMatrix fields are unexported; New consumes ...CacheOption.
package invcache

import "github.com/apex/log"

// Internal panic messages (no magic strings).
const (
	panicNilInverter = "invcache: WithInverter: fn must be non-nil"
	panicNilLogger   = "invcache: WithLogger: l must be non-nil"
)

// CacheOption mutates a CachedMatrix during New. Safe to apply repeatedly;
// the last writer wins. Constructors MUST panic only on nonsensical values.
type CacheOption func(*CachedMatrix)

// WithInverter replaces the external inversion routine invoked on cache
// misses. The default is matrix.Inverse; tests substitute counting doubles,
// and callers may plug alternative solvers with the same contract.
//
// Errors: panics with a stable message when fn is nil (programmer error).
// Complexity: O(1).
func WithInverter(fn Inverter) CacheOption {
	if fn == nil {
		panic(panicNilInverter)
	}

	// Assign validated routine
	return func(cm *CachedMatrix) { cm.inverter = fn }
}

// WithLogger replaces the sink for the advisory cache-hit/miss notices.
// The default is the apex package logger; the notices are informational only
// and not part of the functional contract.
//
// Errors: panics with a stable message when l is nil (programmer error).
// Complexity: O(1).
func WithLogger(l log.Interface) CacheOption {
	if l == nil {
		panic(panicNilLogger)
	}

	// Assign validated sink
	return func(cm *CachedMatrix) { cm.log = l }
}
