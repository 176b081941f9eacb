// Package matcache is a small, deterministic toolkit for memoized matrix
// inversion: compute a dense inverse once, reuse it until the matrix changes.
//
// 🚀 What is matcache?
//
//	A pure-Go library with two focused subpackages:
//		• matrix   — Matrix interface, row-major Dense, LU factorization and
//		  Inverse with strict fail-fast validation and sentinel errors
//		• invcache — CachedMatrix: a mutable matrix plus an invalidate-on-write
//		  inverse cache, with InverseOf computing at most once per value
//
// ✨ Why choose matcache?
//
//   - Deterministic kernels – fixed loop orders, no pivoting, reproducible results
//   - Rock-solid guarantees – one mutex around check-compute-store, in-code docs
//   - Strict errors – errors.Is-friendly sentinels, failures never poison the cache
//   - Pure Go – no cgo, no hidden deps
//
// Quick sketch:
//
//	m, _ := matrix.FromRows([][]float64{{1, 3}, {2, 4}})
//	cm := invcache.New(m)
//	inv, _ := invcache.InverseOf(cm) // computed and stored
//	inv, _ = invcache.InverseOf(cm)  // served from cache, solver untouched
//	cm.SetMatrix(m)                  // any write clears the cache, even same value
//
// Dive into the subpackage docs for the full contracts.
//
//	go get github.com/lvlmat/matcache
package matcache
