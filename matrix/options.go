// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Higher layers (invcache.InverseOf) forward ...Option values unmodified;
//     the meaning of every option is defined here and only here.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the threshold below which |U[i,i]| is treated as
	// a zero pivot during LU/Inverse. Zero means only a pivot exactly equal
	// to 0.0 is singular.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on FromRows
	// ingestion.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the singularity threshold used by LU and Inverse:
// any pivot with |U[i,i]| <= tol fails with ErrSingular.
//
// Inputs:
//   - tol: non-negative finite threshold.
//
// Errors:
//   - Panics with a stable message when tol is invalid (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - tol = 0 (the default) rejects only exact zero pivots, preserving the
//     deterministic no-pivoting contract; a small positive tol (e.g. 1e-12)
//     additionally rejects numerically hopeless pivots.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation on ingestion.
// This is the default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on ingestion (use with care).
// The flag affects only FromRows; kernels propagate whatever values are stored.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Internal resolution ----------

// gatherOptions resolves ...Option against the documented defaults.
// Deterministic: options apply in call order, last writer wins.
func gatherOptions(opts ...Option) Options {
	// Start from the documented defaults.
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	// Apply each setter in order.
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
