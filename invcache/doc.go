// Package invcache memoizes matrix inversion: a CachedMatrix holds a mutable
// matrix value alongside a lazily-computed inverse that is invalidated by any
// write to the value.
//
// The invcache package provides:
//
//   - CachedMatrix with four primitive accessors: SetMatrix / GetMatrix for
//     the current value, SetInverse / GetInverse for the cached inverse.
//   - InverseOf, the derived operation: on a cache miss it invokes the
//     inversion routine (matrix.Inverse by default) exactly once and stores
//     the result; on a hit it returns the stored inverse without touching the
//     solver, emitting an advisory notice.
//
// Invalidation is unconditional: SetMatrix clears the cached inverse even
// when the new value is numerically identical to the old one. Failed
// inversions commit nothing, so a later call retries after the matrix is
// corrected.
//
// All operations are safe for concurrent use; InverseOf holds the cache lock
// across its whole check-compute-store sequence, so concurrent callers
// trigger at most one computation per distinct value.
package invcache
