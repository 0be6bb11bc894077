package trial

// PseudoResult extends Result directly (a sibling branch of ModelResult)
// for DLE-only pseudo-model designs: per-run two-parameter fits, target-dose
// estimates during and at the end of each trial with their dose-grid-snapped
// counterparts, end-of-trial credible intervals with their upper/lower
// ratios, the generalized final CI/ratio pair used when efficacy is also
// modeled, and per-run stop reasons.
type PseudoResult struct {
	Result
	fits                []PointFit
	tdDuringTrial       []float64
	tdDuringTrialAtGrid []float64
	tdEndOfTrial        []float64
	tdEndOfTrialAtGrid  []float64
	tdEOTCIs            []Interval
	tdEOTRatios         []float64
	finalCIs            []Interval
	finalRatios         []float64
	stopReasons         [][]string
}

// PseudoInput carries the per-run extension fields of a PseudoResult.
// Every sequence must have length nsim.
type PseudoInput struct {
	Fits                []PointFit
	TDDuringTrial       []float64
	TDDuringTrialAtGrid []float64
	TDEndOfTrial        []float64
	TDEndOfTrialAtGrid  []float64
	TDEOTCIs            []Interval
	TDEOTRatios         []float64
	FinalCIs            []Interval
	FinalRatios         []float64
	StopReasons         [][]string
}

func (in *PseudoInput) validate(nsim int) error {
	if err := checkLen("fits", len(in.Fits), nsim); err != nil {
		return err
	}
	perRun := []struct {
		field string
		got   int
	}{
		{"tdDuringTrialEstimates", len(in.TDDuringTrial)},
		{"tdDuringTrialAtDoseGrid", len(in.TDDuringTrialAtGrid)},
		{"tdEndOfTrialEstimates", len(in.TDEndOfTrial)},
		{"tdEndOfTrialAtDoseGrid", len(in.TDEndOfTrialAtGrid)},
		{"stopReasons", len(in.StopReasons)},
	}
	for _, f := range perRun {
		if err := checkLen(f.field, f.got, nsim); err != nil {
			return err
		}
	}
	if err := checkIntervals("tdEOTCIs", in.TDEOTCIs, nsim); err != nil {
		return err
	}
	if err := checkRatios("tdEOTRatios", in.TDEOTRatios, in.TDEOTCIs, nsim); err != nil {
		return err
	}
	if err := checkIntervals("finalCIs", in.FinalCIs, nsim); err != nil {
		return err
	}
	return checkRatios("finalRatios", in.FinalRatios, in.FinalCIs, nsim)
}

// NewPseudoResult builds the base Result first, then validates every
// pseudo-model sequence against the base's run count, including the
// CI-ordering and ratio-consistency invariants.
func NewPseudoResult(runSet *RunSet, in PseudoInput) (*PseudoResult, error) {
	base, err := NewResult(runSet)
	if err != nil {
		return nil, err
	}
	if err := in.validate(base.NumRuns()); err != nil {
		return nil, err
	}
	return &PseudoResult{
		Result:              *base,
		fits:                copyPointFits(in.Fits),
		tdDuringTrial:       append([]float64(nil), in.TDDuringTrial...),
		tdDuringTrialAtGrid: append([]float64(nil), in.TDDuringTrialAtGrid...),
		tdEndOfTrial:        append([]float64(nil), in.TDEndOfTrial...),
		tdEndOfTrialAtGrid:  append([]float64(nil), in.TDEndOfTrialAtGrid...),
		tdEOTCIs:            append([]Interval(nil), in.TDEOTCIs...),
		tdEOTRatios:         append([]float64(nil), in.TDEOTRatios...),
		finalCIs:            append([]Interval(nil), in.FinalCIs...),
		finalRatios:         append([]float64(nil), in.FinalRatios...),
		stopReasons:         copyReasons(in.StopReasons),
	}, nil
}

// Fit returns the pseudo-model fit of run i. The returned value is a
// read-only view into the result; callers must not mutate its curve.
func (pr *PseudoResult) Fit(i int) *PointFit {
	return &pr.fits[i]
}

// Fits returns a deep copy of the per-run pseudo-model fits.
func (pr *PseudoResult) Fits() []PointFit {
	return copyPointFits(pr.fits)
}

// TDDuringTrial returns the per-run during-trial target dose estimates.
func (pr *PseudoResult) TDDuringTrial() []float64 {
	return append([]float64(nil), pr.tdDuringTrial...)
}

// TDDuringTrialAtGrid returns the dose-grid-snapped during-trial estimates.
func (pr *PseudoResult) TDDuringTrialAtGrid() []float64 {
	return append([]float64(nil), pr.tdDuringTrialAtGrid...)
}

// TDEndOfTrial returns the per-run end-of-trial target dose estimates.
func (pr *PseudoResult) TDEndOfTrial() []float64 {
	return append([]float64(nil), pr.tdEndOfTrial...)
}

// TDEndOfTrialAtGrid returns the dose-grid-snapped end-of-trial estimates.
func (pr *PseudoResult) TDEndOfTrialAtGrid() []float64 {
	return append([]float64(nil), pr.tdEndOfTrialAtGrid...)
}

// TDEOTCI returns the end-of-trial credible interval of run i.
func (pr *PseudoResult) TDEOTCI(i int) Interval {
	return pr.tdEOTCIs[i]
}

// TDEOTRatios returns the per-run end-of-trial CI upper/lower ratios.
func (pr *PseudoResult) TDEOTRatios() []float64 {
	return append([]float64(nil), pr.tdEOTRatios...)
}

// FinalCI returns the generalized final credible interval of run i.
func (pr *PseudoResult) FinalCI(i int) Interval {
	return pr.finalCIs[i]
}

// FinalRatios returns the per-run generalized final CI ratios.
func (pr *PseudoResult) FinalRatios() []float64 {
	return append([]float64(nil), pr.finalRatios...)
}

// StopReasons returns the stop reasons of run i.
func (pr *PseudoResult) StopReasons(i int) []string {
	return append([]string(nil), pr.stopReasons[i]...)
}
