package summary

import (
	"github.com/escalation-sim/escalation-sim/trial"
)

// DualSummary aggregates a DualResult: everything in ModelSummary plus the
// biomarker fit bands and the distributions of the per-run correlation and
// biomarker-variance estimates.
type DualSummary struct {
	ModelSummary

	BiomarkerFit                   CurveBand
	BiomarkerFitAtDoseMostSelected float64
	RhoEstimates                   Distribution
	Sigma2WEstimates               Distribution
}

// Kind returns KindDual.
func (s *DualSummary) Kind() Kind { return KindDual }

// SummarizeDual derives a DualSummary from a validated DualResult.
func SummarizeDual(res *trial.DualResult, p Params) (*DualSummary, error) {
	parent, err := SummarizeModel(&res.ModelResult, p)
	if err != nil {
		return nil, err
	}

	curves, err := middleCurves("biomarkerFits", res.BiomarkerFits(), len(p.DoseGrid))
	if err != nil {
		return nil, err
	}

	return &DualSummary{
		ModelSummary:                   *parent,
		BiomarkerFit:                   newCurveBand(curves),
		BiomarkerFitAtDoseMostSelected: fitAtDose(meanCurve(curves), p, parent.DoseMostSelected),
		RhoEstimates:                   NewDistribution(res.RhoEstimates()),
		Sigma2WEstimates:               NewDistribution(res.Sigma2WEstimates()),
	}, nil
}
