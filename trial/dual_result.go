package trial

// DualResult extends ModelResult for dual-endpoint designs: per-run
// biomarker-model fits plus the correlation and biomarker-variance
// estimates of each run.
type DualResult struct {
	ModelResult
	rhoEstimates     []float64
	sigma2WEstimates []float64
	biomarkerFits    []DoseFit
}

// NewDualResult builds and validates the ModelResult parent first (which in
// turn validates the base), then checks the dual-endpoint additions against
// the same run count.
func NewDualResult(runSet *RunSet, fits []DoseFit, stopReport [][]bool,
	stopReasons [][]string, additionalStats AdditionalStats,
	rhoEstimates, sigma2WEstimates []float64, biomarkerFits []DoseFit) (*DualResult, error) {

	parent, err := NewModelResult(runSet, fits, stopReport, stopReasons, additionalStats)
	if err != nil {
		return nil, err
	}
	nsim := parent.NumRuns()

	if err := checkLen("rhoEstimates", len(rhoEstimates), nsim); err != nil {
		return nil, err
	}
	if err := checkLen("sigma2wEstimates", len(sigma2WEstimates), nsim); err != nil {
		return nil, err
	}
	if err := checkDoseFits("biomarkerFits", biomarkerFits, nsim); err != nil {
		return nil, err
	}

	return &DualResult{
		ModelResult:      *parent,
		rhoEstimates:     append([]float64(nil), rhoEstimates...),
		sigma2WEstimates: append([]float64(nil), sigma2WEstimates...),
		biomarkerFits:    copyDoseFits(biomarkerFits),
	}, nil
}

// RhoEstimates returns a copy of the per-run correlation estimates.
func (dr *DualResult) RhoEstimates() []float64 {
	return append([]float64(nil), dr.rhoEstimates...)
}

// Sigma2WEstimates returns a copy of the per-run biomarker variance estimates.
func (dr *DualResult) Sigma2WEstimates() []float64 {
	return append([]float64(nil), dr.sigma2WEstimates...)
}

// BiomarkerFit returns the biomarker-model fit of run i. The returned value
// is a read-only view into the result; callers must not mutate its curves.
func (dr *DualResult) BiomarkerFit(i int) *DoseFit {
	return &dr.biomarkerFits[i]
}

// BiomarkerFits returns a deep copy of the per-run biomarker-model fits.
func (dr *DualResult) BiomarkerFits() []DoseFit {
	return copyDoseFits(dr.biomarkerFits)
}
