package runmatch

// MemoryMode selects the storage strategy for the run-length table.
//
//   - FullMatrix keeps the entire (n+1)×(m+1) table in memory. Simple,
//     and leaves the table available for inspection by future tooling.
//   - RollingArray keeps only two rows of the table. Memory drops to
//     O(m); results are identical to FullMatrix.
type MemoryMode int

const (
	// FullMatrix retains the complete run-length table.
	FullMatrix MemoryMode = iota
	// RollingArray retains two rows of the table, reusing them per row.
	RollingArray
)

// DefaultMinRun is the acceptance threshold used when Options.MinRun is
// zero: one agreeing position is coincidence, two consecutive agreeing
// positions count as a structural match.
const DefaultMinRun = 2

// Options configures a run comparison.
//
// Fields:
//   - MinRun: minimum contiguous run length Match accepts. Zero selects
//     DefaultMinRun; negative values yield ErrMinRunTooSmall.
//   - MemoryMode: FullMatrix (default) or RollingArray.
//
// A nil *Options is equivalent to the zero value.
type Options struct {
	MinRun     int
	MemoryMode MemoryMode
}

// minRun resolves the effective threshold, applying the default.
func (o *Options) minRun() int {
	if o == nil || o.MinRun == 0 {
		return DefaultMinRun
	}
	return o.MinRun
}

// memoryMode resolves the effective storage strategy.
func (o *Options) memoryMode() MemoryMode {
	if o == nil {
		return FullMatrix
	}
	return o.MemoryMode
}
