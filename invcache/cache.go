// SPDX-License-Identifier: MIT
// Package invcache: the CachedMatrix container and its primitive accessors.
// All accessors are pure state reads/writes guarded by one mutex; none of
// them can fail and none of them compute anything.
package invcache

import (
	"sync"

	"github.com/apex/log"

	"github.com/lvlmat/matcache/matrix"
)

// Inverter is the contract of the external inversion routine: it receives the
// current matrix and a pass-through set of solver options, and returns the
// inverse or fails (singular, non-square, nil). The options are owned and
// interpreted entirely by the routine; InverseOf forwards them unmodified.
type Inverter func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// CachedMatrix holds a current matrix value and an optional cached inverse.
//
// Invariants:
//   - inverse, when non-nil, is the exact inverse of the value that was
//     current at the moment it was stored.
//   - Any SetMatrix clears inverse unconditionally, even for an identical value.
//   - inverse is populated only by InverseOf (via SetInverse).
//
// The zero value is not usable; construct via New.
type CachedMatrix struct {
	mu       sync.Mutex    // guards value and inverse; held across InverseOf's full sequence
	value    matrix.Matrix // current matrix
	inverse  matrix.Matrix // cached inverse; nil means "not yet computed for value"
	inverter Inverter      // external inversion routine (default: matrix.Inverse)
	log      log.Interface // advisory notice sink (default: apex package logger)
}

// New creates a CachedMatrix holding m with an absent inverse cache.
// No validation is performed on m at this layer: shape and invertibility are
// the inversion routine's concern, surfaced on the first InverseOf call.
// Complexity: O(1); the matrix is referenced, not copied.
func New(m matrix.Matrix, opts ...CacheOption) *CachedMatrix {
	// Start from defaults, then apply options in call order.
	cm := &CachedMatrix{
		value:    m,
		inverter: matrix.Inverse,
		log:      log.Log,
	}
	for _, opt := range opts {
		opt(cm)
	}

	return cm
}

// SetMatrix replaces the current value with m and clears the cached inverse.
// Invalidation is unconditional: even if m is numerically identical to the
// previous value, the cache becomes absent and the next InverseOf recomputes.
// Complexity: O(1).
func (cm *CachedMatrix) SetMatrix(m matrix.Matrix) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.value = m
	cm.inverse = nil // invalidate; GetInverse reports absent until recomputed
}

// GetMatrix returns the current value by reference (no copy; callers wanting
// isolation should Clone). Complexity: O(1).
func (cm *CachedMatrix) GetMatrix() matrix.Matrix {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	return cm.value
}

// SetInverse stores inv as the cached inverse of the current value.
//
// This is InverseOf's store step. It is exported for symmetry with the other
// accessors, but calling it directly bypasses the only code path that
// guarantees inv actually is the inverse of the current value — leave it to
// InverseOf. Complexity: O(1).
func (cm *CachedMatrix) SetInverse(inv matrix.Matrix) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.inverse = inv
}

// GetInverse returns the cached inverse and whether one is present for the
// current value. It never computes anything: absent stays absent until
// InverseOf runs. Complexity: O(1).
func (cm *CachedMatrix) GetInverse() (matrix.Matrix, bool) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	return cm.inverse, cm.inverse != nil
}
