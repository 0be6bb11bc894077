package trial

// PseudoDualResult extends PseudoResult for designs that also model
// efficacy: per-run efficacy fits, Gstar (the dose maximizing the combined
// gain function) estimates with their grid-snapped values, credible
// intervals and ratios, the combined optimal dose recommendations, and the
// efficacy variance estimates.
type PseudoDualResult struct {
	PseudoResult
	effFits            []PointFit
	gstarEstimates     []float64
	gstarAtGrid        []float64
	gstarCIs           []Interval
	gstarRatios        []float64
	optimalDoses       []float64
	optimalDosesAtGrid []float64
	sigma2Estimates    []float64
}

// PseudoDualInput carries the efficacy extension fields on top of the
// DLE-only pseudo input.
type PseudoDualInput struct {
	PseudoInput
	EffFits            []PointFit
	GstarEstimates     []float64
	GstarAtGrid        []float64
	GstarCIs           []Interval
	GstarRatios        []float64
	OptimalDoses       []float64
	OptimalDosesAtGrid []float64
	Sigma2Estimates    []float64
}

func (in *PseudoDualInput) validate(nsim int) error {
	if err := checkLen("effFits", len(in.EffFits), nsim); err != nil {
		return err
	}
	perRun := []struct {
		field string
		got   int
	}{
		{"gstarEstimates", len(in.GstarEstimates)},
		{"gstarAtDoseGrid", len(in.GstarAtGrid)},
		{"optimalDoses", len(in.OptimalDoses)},
		{"optimalDosesAtDoseGrid", len(in.OptimalDosesAtGrid)},
		{"sigma2Estimates", len(in.Sigma2Estimates)},
	}
	for _, f := range perRun {
		if err := checkLen(f.field, f.got, nsim); err != nil {
			return err
		}
	}
	if err := checkIntervals("gstarCIs", in.GstarCIs, nsim); err != nil {
		return err
	}
	return checkRatios("gstarRatios", in.GstarRatios, in.GstarCIs, nsim)
}

// NewPseudoDualResult builds and validates the PseudoResult parent first
// (which validates the base), then checks the efficacy additions against
// the same run count.
func NewPseudoDualResult(runSet *RunSet, in PseudoDualInput) (*PseudoDualResult, error) {
	parent, err := NewPseudoResult(runSet, in.PseudoInput)
	if err != nil {
		return nil, err
	}
	if err := in.validate(parent.NumRuns()); err != nil {
		return nil, err
	}
	return &PseudoDualResult{
		PseudoResult:       *parent,
		effFits:            copyPointFits(in.EffFits),
		gstarEstimates:     append([]float64(nil), in.GstarEstimates...),
		gstarAtGrid:        append([]float64(nil), in.GstarAtGrid...),
		gstarCIs:           append([]Interval(nil), in.GstarCIs...),
		gstarRatios:        append([]float64(nil), in.GstarRatios...),
		optimalDoses:       append([]float64(nil), in.OptimalDoses...),
		optimalDosesAtGrid: append([]float64(nil), in.OptimalDosesAtGrid...),
		sigma2Estimates:    append([]float64(nil), in.Sigma2Estimates...),
	}, nil
}

// EffFit returns the efficacy-model fit of run i. The returned value is a
// read-only view into the result; callers must not mutate its curve.
func (pd *PseudoDualResult) EffFit(i int) *PointFit {
	return &pd.effFits[i]
}

// EffFits returns a deep copy of the per-run efficacy fits.
func (pd *PseudoDualResult) EffFits() []PointFit {
	return copyPointFits(pd.effFits)
}

// GstarEstimates returns the per-run Gstar dose estimates.
func (pd *PseudoDualResult) GstarEstimates() []float64 {
	return append([]float64(nil), pd.gstarEstimates...)
}

// GstarAtGrid returns the dose-grid-snapped Gstar estimates.
func (pd *PseudoDualResult) GstarAtGrid() []float64 {
	return append([]float64(nil), pd.gstarAtGrid...)
}

// GstarCI returns the Gstar credible interval of run i.
func (pd *PseudoDualResult) GstarCI(i int) Interval {
	return pd.gstarCIs[i]
}

// GstarRatios returns the per-run Gstar CI ratios.
func (pd *PseudoDualResult) GstarRatios() []float64 {
	return append([]float64(nil), pd.gstarRatios...)
}

// OptimalDoses returns the combined optimal dose recommendations.
func (pd *PseudoDualResult) OptimalDoses() []float64 {
	return append([]float64(nil), pd.optimalDoses...)
}

// OptimalDosesAtGrid returns the grid-snapped optimal dose recommendations.
func (pd *PseudoDualResult) OptimalDosesAtGrid() []float64 {
	return append([]float64(nil), pd.optimalDosesAtGrid...)
}

// Sigma2Estimates returns the per-run efficacy variance estimates.
func (pd *PseudoDualResult) Sigma2Estimates() []float64 {
	return append([]float64(nil), pd.sigma2Estimates...)
}

// PseudoDualFlexiResult extends PseudoDualResult for the flexible-form
// efficacy model, adding its per-run random-walk variance estimates.
type PseudoDualFlexiResult struct {
	PseudoDualResult
	sigma2BetaWEstimates []float64
}

// NewPseudoDualFlexiResult builds and validates the full PseudoDualResult
// chain first, then checks the flexible-model variance sequence.
func NewPseudoDualFlexiResult(runSet *RunSet, in PseudoDualInput,
	sigma2BetaWEstimates []float64) (*PseudoDualFlexiResult, error) {

	parent, err := NewPseudoDualResult(runSet, in)
	if err != nil {
		return nil, err
	}
	if err := checkLen("sigma2betaWEstimates", len(sigma2BetaWEstimates), parent.NumRuns()); err != nil {
		return nil, err
	}
	return &PseudoDualFlexiResult{
		PseudoDualResult:     *parent,
		sigma2BetaWEstimates: append([]float64(nil), sigma2BetaWEstimates...),
	}, nil
}

// Sigma2BetaWEstimates returns the per-run flexible-model variance estimates.
func (pf *PseudoDualFlexiResult) Sigma2BetaWEstimates() []float64 {
	return append([]float64(nil), pf.sigma2BetaWEstimates...)
}
