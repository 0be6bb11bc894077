package trial

// ModelResult extends Result for model-based (CRM-style) designs: per-run
// fitted curves, the stopping-rule outcome matrix, per-run stop reasons and
// open-ended additional statistics.
type ModelResult struct {
	Result
	fits            []DoseFit
	stopReport      [][]bool
	stopReasons     [][]string
	additionalStats AdditionalStats
}

// NewModelResult builds the base Result first, then validates the
// model-specific additions against the base's run count. Every ancestor
// invariant is re-checked before any extension field is attached; no
// partially constructed value is observable on failure.
func NewModelResult(runSet *RunSet, fits []DoseFit, stopReport [][]bool,
	stopReasons [][]string, additionalStats AdditionalStats) (*ModelResult, error) {

	base, err := NewResult(runSet)
	if err != nil {
		return nil, err
	}
	nsim := base.NumRuns()

	if err := checkDoseFits("fits", fits, nsim); err != nil {
		return nil, err
	}
	if err := checkMatrix("stopReport", stopReport, nsim); err != nil {
		return nil, err
	}
	if err := checkLen("stopReasons", len(stopReasons), nsim); err != nil {
		return nil, err
	}
	if additionalStats == nil {
		additionalStats = AdditionalStats{}
	}
	if err := additionalStats.validate(); err != nil {
		return nil, err
	}

	return &ModelResult{
		Result:          *base,
		fits:            copyDoseFits(fits),
		stopReport:      copyMatrix(stopReport),
		stopReasons:     copyReasons(stopReasons),
		additionalStats: additionalStats,
	}, nil
}

// Fit returns the fitted-curve summary of run i. The returned value is a
// read-only view into the result; callers must not mutate its curves.
func (mr *ModelResult) Fit(i int) *DoseFit {
	return &mr.fits[i]
}

// Fits returns a deep copy of the per-run fitted-curve summaries.
func (mr *ModelResult) Fits() []DoseFit {
	return copyDoseFits(mr.fits)
}

// NumStopRules returns k, the number of stopping rules evaluated per run.
func (mr *ModelResult) NumStopRules() int {
	if len(mr.stopReport) == 0 {
		return 0
	}
	return len(mr.stopReport[0])
}

// StopTriggered reports whether stopping rule j triggered in run i.
func (mr *ModelResult) StopTriggered(i, j int) bool {
	return mr.stopReport[i][j]
}

// StopReasons returns the human-readable stop reasons of run i.
func (mr *ModelResult) StopReasons(i int) []string {
	return append([]string(nil), mr.stopReasons[i]...)
}

// AdditionalStat looks up a named additional statistic.
func (mr *ModelResult) AdditionalStat(name string) (Stat, bool) {
	s, ok := mr.additionalStats[name]
	return s, ok
}

// AdditionalStats returns a copy of the open-ended statistics map.
func (mr *ModelResult) AdditionalStats() AdditionalStats {
	out := make(AdditionalStats, len(mr.additionalStats))
	for k, v := range mr.additionalStats {
		out[k] = v
	}
	return out
}

func copyMatrix(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for i, row := range m {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

func copyReasons(r [][]string) [][]string {
	out := make([][]string, len(r))
	for i, row := range r {
		out[i] = append([]string(nil), row...)
	}
	return out
}
