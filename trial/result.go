package trial

// Result is the common root of every simulation-result family: it owns the
// batch's RunSet and nothing else. Constructed once, immutable thereafter.
type Result struct {
	runSet *RunSet
}

// NewResult wraps a validated RunSet. Fails with ErrNilRunSet when runSet
// is nil: a result without a batch is not a usable family root.
func NewResult(runSet *RunSet) (*Result, error) {
	if runSet == nil {
		return nil, ErrNilRunSet
	}
	return &Result{runSet: runSet}, nil
}

// RunSet returns the batch this result was assembled from.
func (r *Result) RunSet() *RunSet {
	return r.runSet
}

// NumRuns returns nsim.
func (r *Result) NumRuns() int {
	return r.runSet.NumRuns()
}
