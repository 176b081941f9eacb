// Package matrix provides the dense linear-algebra primitives that back the
// invcache package: a minimal Matrix interface, a row-major Dense
// implementation, and deterministic LU/Inverse kernels.
//
// The matrix package provides:
//
//   - Dense with O(1) element access on a flat row-major backing slice.
//   - FromRows / NewIdentity constructors for literal and neutral matrices.
//   - LU (Doolittle, no pivoting) and Inverse with strict fail-fast
//     validation and a zero-pivot singularity guard.
//   - Functional options carrying the numeric policy (pivot tolerance,
//     NaN/Inf ingestion checks) that callers may forward through higher
//     layers untouched.
//
// All failures are sentinel errors prefixed "matrix: ..." and matched via
// errors.Is; kernels never mutate their inputs.
package matrix
