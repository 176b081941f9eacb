// Package matrix: test-only exports for inspecting resolved options.
package matrix

// OptionsSnapshot mirrors the resolved Options for assertions in external tests.
type OptionsSnapshot struct {
	PivotTol       float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshotForTest resolves opts against the documented defaults
// and returns an inspectable copy.
func GatherOptionsSnapshotForTest(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{PivotTol: o.pivotTol, ValidateNaNInf: o.validateNaNInf}
}
