// Package matrix_test: shared helpers for the matrix package tests.
// Helpers fail the calling test immediately so test bodies stay linear.
package matrix_test

import (
	"testing"

	"github.com/lvlmat/matcache/matrix"
)

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// hide wraps a Matrix to conceal its concrete type, forcing the generic
// interface fallback paths inside kernels.
type hide struct{ matrix.Matrix }
