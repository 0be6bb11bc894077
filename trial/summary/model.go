package summary

import (
	"math"

	"github.com/escalation-sim/escalation-sim/trial"
)

// ModelSummary aggregates a ModelResult: the shared statistics plus the
// fitted toxicity curve with quantile bands, the fitted rate at the modal
// dose, per-rule stop trigger proportions and the additional statistics
// carried through unchanged.
type ModelSummary struct {
	GeneralSummary

	MeanFit                  CurveBand // fitted toxicity curve over the dose grid
	FitAtDoseMostSelected    float64   // mean fitted toxicity rate at the modal dose
	StopRuleTriggerFractions []float64 // fraction of runs in which each rule fired
	AdditionalStats          trial.AdditionalStats
}

// Kind returns KindModel.
func (s *ModelSummary) Kind() Kind { return KindModel }

// SummarizeModel derives a ModelSummary from a validated ModelResult.
func SummarizeModel(res *trial.ModelResult, p Params) (*ModelSummary, error) {
	gs, err := deriveGeneral(&res.Result, p)
	if err != nil {
		return nil, err
	}

	curves, err := middleCurves("fits", res.Fits(), len(p.DoseGrid))
	if err != nil {
		return nil, err
	}

	s := &ModelSummary{
		GeneralSummary:           gs,
		MeanFit:                  newCurveBand(curves),
		FitAtDoseMostSelected:    fitAtDose(meanCurve(curves), p, gs.DoseMostSelected),
		StopRuleTriggerFractions: stopTriggerFractions(res),
		AdditionalStats:          res.AdditionalStats(),
	}
	return s, nil
}

// middleCurves extracts the per-run middle curves, checking each against
// the dose grid length.
func middleCurves(field string, fits []trial.DoseFit, nDoses int) ([][]float64, error) {
	curves := make([][]float64, len(fits))
	for i := range fits {
		if fits[i].NumDoses() != nDoses {
			return nil, &trial.ShapeError{
				Field: field, Want: nDoses, Got: fits[i].NumDoses(),
			}
		}
		curves[i] = fits[i].Middle
	}
	return curves, nil
}

// meanCurve averages per-run curves pointwise without the quantile bands.
func meanCurve(curves [][]float64) []float64 {
	if len(curves) == 0 {
		return nil
	}
	mean := make([]float64, len(curves[0]))
	for _, curve := range curves {
		for j, v := range curve {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(curves))
	}
	return mean
}

// fitAtDose looks up the mean fitted value at the grid position of dose.
func fitAtDose(meanCurve []float64, p Params, dose float64) float64 {
	if math.IsNaN(dose) || len(meanCurve) == 0 {
		return math.NaN()
	}
	idx := p.GridIndex(dose)
	if idx < 0 || idx >= len(meanCurve) {
		return math.NaN()
	}
	return meanCurve[idx]
}

// stopTriggerFractions computes, per stopping rule, the fraction of runs in
// which it triggered. Cross-result column alignment is assumed, not
// enforced: each result's matrix is rectangular but nothing ties rule j of
// one batch to rule j of another.
func stopTriggerFractions(res *trial.ModelResult) []float64 {
	nsim := res.NumRuns()
	k := res.NumStopRules()
	if nsim == 0 || k == 0 {
		return nil
	}
	fractions := make([]float64, k)
	for i := 0; i < nsim; i++ {
		for j := 0; j < k; j++ {
			if res.StopTriggered(i, j) {
				fractions[j]++
			}
		}
	}
	for j := range fractions {
		fractions[j] /= float64(nsim)
	}
	return fractions
}
