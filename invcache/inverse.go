// SPDX-License-Identifier: MIT
// Package invcache: the derived InverseOf operation (compute-or-fetch).

package invcache

import "github.com/lvlmat/matcache/matrix"

// InverseOf returns the inverse of cm's current value, computing it at most
// once per distinct value.
//
// Implementation:
//   - Stage 1: lock cm for the whole sequence (check → compute → store), so
//     concurrent callers cannot race into redundant computations.
//   - Stage 2 (hit): if a cached inverse is present, emit the advisory notice
//     and return it; the inversion routine is not touched.
//   - Stage 3 (miss): read the current value, invoke the inversion routine
//     forwarding opts unmodified, store the result, return it.
//
// Inputs:
//   - cm: the cache container (non-nil; New is the only constructor).
//   - opts: pass-through solver parameters (e.g. matrix.WithPivotTolerance),
//     owned and interpreted entirely by the inversion routine.
//
// Returns:
//   - matrix.Matrix: the inverse of the value current at call time.
//   - error: whatever the inversion routine returned, unmodified.
//
// Errors:
//   - matrix.ErrSingular, matrix.ErrDimensionMismatch, matrix.ErrNilMatrix
//     from the default routine; custom Inverters define their own. On any
//     failure nothing is committed: the cache stays absent and a later call
//     retries (typically after SetMatrix corrected the value).
//
// Complexity:
//   - Hit O(1); miss is the routine's cost (O(n^3) for the default).
func InverseOf(cm *CachedMatrix, opts ...matrix.Option) (matrix.Matrix, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	// Cache hit: return the stored inverse without invoking the routine.
	if cm.inverse != nil {
		cm.log.Info("inverse already computed; returning cached result")

		return cm.inverse, nil
	}

	// Cache miss: compute via the external routine, forwarding opts untouched.
	cm.log.Debug("inverse cache miss; invoking inversion routine")
	inv, err := cm.inverter(cm.value, opts...)
	if err != nil {
		// Propagate unmodified; cm.inverse stays nil so a future call retries.
		return nil, err
	}

	// Commit only on success.
	cm.inverse = inv

	return inv, nil
}
