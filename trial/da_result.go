package trial

// DAResult extends ModelResult for data-augmentation (time-to-event)
// designs, recording how long each simulated trial took.
type DAResult struct {
	ModelResult
	trialDurations []float64
}

// NewDAResult builds and validates the ModelResult parent first, then
// checks the per-run trial durations against the same run count.
func NewDAResult(runSet *RunSet, fits []DoseFit, stopReport [][]bool,
	stopReasons [][]string, additionalStats AdditionalStats,
	trialDurations []float64) (*DAResult, error) {

	parent, err := NewModelResult(runSet, fits, stopReport, stopReasons, additionalStats)
	if err != nil {
		return nil, err
	}
	if err := checkLen("trialDurations", len(trialDurations), parent.NumRuns()); err != nil {
		return nil, err
	}
	return &DAResult{
		ModelResult:    *parent,
		trialDurations: append([]float64(nil), trialDurations...),
	}, nil
}

// TrialDurations returns a copy of the per-run trial durations.
func (da *DAResult) TrialDurations() []float64 {
	return append([]float64(nil), da.trialDurations...)
}
