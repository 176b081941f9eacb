// Package invcache_test contains unit tests for the derived InverseOf
// operation: compute-or-fetch semantics, option pass-through, failure
// isolation and the advisory notices.
package invcache_test

import (
	"math"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/require"

	"github.com/lvlmat/matcache/invcache"
	"github.com/lvlmat/matcache/matrix"
)

// countingInverter wraps matrix.Inverse and records how often it is invoked
// and how many options it received — the call-counter test double of the
// compute-at-most-once contract.
type countingInverter struct {
	calls    int
	lastOpts int
}

func (c *countingInverter) invert(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
	c.calls++
	c.lastOpts = len(opts)
	return matrix.Inverse(m, opts...)
}

// requireAllClose asserts element-wise |got-want| <= eps over equal shapes.
func requireAllClose(t *testing.T, want, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())

	var i, j int // fixed i→j order
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			if math.Abs(w-g) > eps {
				t.Fatalf("mismatch at [%d,%d]: want %g, got %g", i, j, w, g)
			}
		}
	}
}

// TestInverseOfComputesOnceAndCaches is the core memoization contract: the
// first call invokes the routine, every later call is served from the cache.
func TestInverseOfComputesOnceAndCaches(t *testing.T) {
	double := &countingInverter{}
	cm := invcache.New(
		mustRows(t, [][]float64{{1, 0, 0}, {0, 1, -4}, {0, 0, 1}}),
		invcache.WithInverter(double.invert),
	)

	want := mustRows(t, [][]float64{{1, 0, 0}, {0, 1, 4}, {0, 0, 1}})

	first, err := invcache.InverseOf(cm) // miss: computes and stores
	require.NoError(t, err)
	requireAllClose(t, want, first, 0) // exact expected inverse
	require.Equal(t, 1, double.calls)  // routine invoked exactly once

	cached, ok := cm.GetInverse() // the store step must have run
	require.True(t, ok)
	require.Same(t, first, cached) // GetInverse sees the same result

	second, err := invcache.InverseOf(cm) // hit: served from cache
	require.NoError(t, err)
	require.Same(t, first, second)    // bit-identical, same reference
	require.Equal(t, 1, double.calls) // routine not invoked again
}

// TestInverseOfIdempotence hammers repeated calls with no intervening write:
// all results identical, single invocation.
func TestInverseOfIdempotence(t *testing.T) {
	double := &countingInverter{}
	cm := invcache.New(
		mustRows(t, [][]float64{{2, 1}, {1, 1}}),
		invcache.WithInverter(double.invert),
	)

	first, err := invcache.InverseOf(cm)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := invcache.InverseOf(cm)
		require.NoError(t, err)
		require.Same(t, first, again) // every call returns the stored result
	}
	require.Equal(t, 1, double.calls) // one computation total
}

// TestInverseOfScenario walks the full documented scenario: shear matrix,
// cache population, invalidation by a new value, inverse of the new value.
func TestInverseOfScenario(t *testing.T) {
	m1 := mustRows(t, [][]float64{{1, 0, 0}, {0, 1, -4}, {0, 0, 1}})
	cm := invcache.New(m1)

	_, ok := cm.GetInverse()
	require.False(t, ok) // absent before any computation

	inv1, err := invcache.InverseOf(cm)
	require.NoError(t, err)
	requireAllClose(t, mustRows(t, [][]float64{{1, 0, 0}, {0, 1, 4}, {0, 0, 1}}), inv1, 0)

	cached, ok := cm.GetInverse()
	require.True(t, ok)
	require.Same(t, inv1, cached) // same value via the raw getter

	cm.SetMatrix(mustRows(t, [][]float64{{1, 3}, {2, 4}})) // new value M2

	_, ok = cm.GetInverse()
	require.False(t, ok) // invalidated

	inv2, err := invcache.InverseOf(cm)
	require.NoError(t, err)
	requireAllClose(t, mustRows(t, [][]float64{{-2, 1.5}, {1, -0.5}}), inv2, 0)
}

// TestInverseOfRecomputesAfterInvalidation ensures each distinct value
// assignment costs exactly one new computation.
func TestInverseOfRecomputesAfterInvalidation(t *testing.T) {
	double := &countingInverter{}
	rows := [][]float64{{1, 3}, {2, 4}}
	cm := invcache.New(mustRows(t, rows), invcache.WithInverter(double.invert))

	_, err := invcache.InverseOf(cm)
	require.NoError(t, err)
	require.Equal(t, 1, double.calls)

	cm.SetMatrix(mustRows(t, rows)) // identical value, fresh write

	_, err = invcache.InverseOf(cm)
	require.NoError(t, err)
	require.Equal(t, 2, double.calls) // recomputed after the write
}

// TestInverseOfFailureIsolation verifies that a failing routine propagates its
// error unmodified, commits nothing, and a corrected matrix succeeds normally.
func TestInverseOfFailureIsolation(t *testing.T) {
	double := &countingInverter{}
	cm := invcache.New(
		mustRows(t, [][]float64{{1, 2}, {2, 4}}), // singular (rank 1)
		invcache.WithInverter(double.invert),
	)

	_, err := invcache.InverseOf(cm)
	require.ErrorIs(t, err, matrix.ErrSingular) // propagated unmodified
	require.Equal(t, 1, double.calls)

	_, ok := cm.GetInverse()
	require.False(t, ok) // failure cached nothing

	_, err = invcache.InverseOf(cm) // same bad value: retried, fails again
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Equal(t, 2, double.calls) // no failure caching

	cm.SetMatrix(mustRows(t, [][]float64{{1, 0}, {0, 1}})) // corrected value

	inv, err := invcache.InverseOf(cm) // now succeeds normally
	require.NoError(t, err)
	requireAllClose(t, mustRows(t, [][]float64{{1, 0}, {0, 1}}), inv, 0)
}

// TestInverseOfForwardsOptions ensures pass-through parameters reach the
// routine unmodified, and that the default routine honors them.
func TestInverseOfForwardsOptions(t *testing.T) {
	double := &countingInverter{}
	cm := invcache.New(
		mustRows(t, [][]float64{{1, 0}, {0, 1}}),
		invcache.WithInverter(double.invert),
	)

	_, err := invcache.InverseOf(cm, matrix.WithPivotTolerance(1e-12), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.Equal(t, 2, double.lastOpts) // both options arrived

	// Default routine: a tiny pivot passes bare but fails under a widened guard.
	tiny := mustRows(t, [][]float64{{1e-15, 0}, {0, 1}})

	cm2 := invcache.New(tiny)
	_, err = invcache.InverseOf(cm2)
	require.NoError(t, err) // exact-zero guard only

	cm3 := invcache.New(tiny)
	_, err = invcache.InverseOf(cm3, matrix.WithPivotTolerance(1e-12))
	require.ErrorIs(t, err, matrix.ErrSingular) // tolerance forwarded to the solver
}

// TestInverseOfHitNotice captures the advisory notices: one miss entry on the
// first call, one hit entry with the documented message on the second.
func TestInverseOfHitNotice(t *testing.T) {
	h := memory.New() // apex in-memory handler
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}

	cm := invcache.New(
		mustRows(t, [][]float64{{1, 0}, {0, 1}}),
		invcache.WithLogger(logger),
	)

	_, err := invcache.InverseOf(cm) // miss
	require.NoError(t, err)
	_, err = invcache.InverseOf(cm) // hit
	require.NoError(t, err)

	require.Len(t, h.Entries, 2)                         // exactly one notice per call
	require.Equal(t, log.DebugLevel, h.Entries[0].Level) // miss is debug-level
	require.Equal(t, log.InfoLevel, h.Entries[1].Level)  // hit is the advisory info notice
	require.Equal(t, "inverse already computed; returning cached result", h.Entries[1].Message)
}
