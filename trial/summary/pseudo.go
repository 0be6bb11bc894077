package summary

import (
	"math"

	"github.com/escalation-sim/escalation-sim/trial"
)

// PseudoSummary aggregates a PseudoResult: the shared statistics plus the
// fitted DLE curve band and the distributions of the target-dose estimates
// and their credible-interval ratios. Ratio distributions skip +Inf entries
// (zero lower bound) and report how many were skipped.
type PseudoSummary struct {
	GeneralSummary

	MeanDLEFit CurveBand // fitted DLE probability curve over the dose grid

	TDDuringTrial       Distribution
	TDDuringTrialAtGrid Distribution
	TDEndOfTrial        Distribution
	TDEndOfTrialAtGrid  Distribution
	TDEOTRatios         Distribution
	FinalRatios         Distribution
	InfiniteRatios      int // ratio entries excluded as +Inf
}

// Kind returns KindPseudo.
func (s *PseudoSummary) Kind() Kind { return KindPseudo }

// SummarizePseudo derives a PseudoSummary from a validated PseudoResult.
func SummarizePseudo(res *trial.PseudoResult, p Params) (*PseudoSummary, error) {
	gs, err := deriveGeneral(&res.Result, p)
	if err != nil {
		return nil, err
	}

	curves, err := probCurves("fits", res.Fits(), len(p.DoseGrid))
	if err != nil {
		return nil, err
	}

	tdeotRatios, skippedEOT := finiteOnly(res.TDEOTRatios())
	finalRatios, skippedFinal := finiteOnly(res.FinalRatios())

	return &PseudoSummary{
		GeneralSummary: gs,
		MeanDLEFit:     newCurveBand(curves),

		TDDuringTrial:       NewDistribution(res.TDDuringTrial()),
		TDDuringTrialAtGrid: NewDistribution(res.TDDuringTrialAtGrid()),
		TDEndOfTrial:        NewDistribution(res.TDEndOfTrial()),
		TDEndOfTrialAtGrid:  NewDistribution(res.TDEndOfTrialAtGrid()),
		TDEOTRatios:         NewDistribution(tdeotRatios),
		FinalRatios:         NewDistribution(finalRatios),
		InfiniteRatios:      skippedEOT + skippedFinal,
	}, nil
}

// PseudoDualSummary aggregates a PseudoDualResult: everything in
// PseudoSummary plus the efficacy curve band and the Gstar / optimal-dose /
// variance statistics.
type PseudoDualSummary struct {
	PseudoSummary

	MeanEffFit CurveBand // fitted efficacy curve over the dose grid

	GstarEstimates     Distribution
	GstarAtGrid        Distribution
	GstarRatios        Distribution
	OptimalDoses       Distribution
	OptimalDosesAtGrid Distribution
	Sigma2Estimates    Distribution
}

// Kind returns KindPseudoDual.
func (s *PseudoDualSummary) Kind() Kind { return KindPseudoDual }

// SummarizePseudoDual derives a PseudoDualSummary from a validated
// PseudoDualResult.
func SummarizePseudoDual(res *trial.PseudoDualResult, p Params) (*PseudoDualSummary, error) {
	parent, err := SummarizePseudo(&res.PseudoResult, p)
	if err != nil {
		return nil, err
	}

	curves, err := probCurves("effFits", res.EffFits(), len(p.DoseGrid))
	if err != nil {
		return nil, err
	}

	gstarRatios, skipped := finiteOnly(res.GstarRatios())
	parent.InfiniteRatios += skipped

	return &PseudoDualSummary{
		PseudoSummary: *parent,
		MeanEffFit:    newCurveBand(curves),

		GstarEstimates:     NewDistribution(res.GstarEstimates()),
		GstarAtGrid:        NewDistribution(res.GstarAtGrid()),
		GstarRatios:        NewDistribution(gstarRatios),
		OptimalDoses:       NewDistribution(res.OptimalDoses()),
		OptimalDosesAtGrid: NewDistribution(res.OptimalDosesAtGrid()),
		Sigma2Estimates:    NewDistribution(res.Sigma2Estimates()),
	}, nil
}

// PseudoDualFlexiSummary adds the flexible-model variance distribution.
type PseudoDualFlexiSummary struct {
	PseudoDualSummary

	Sigma2BetaWEstimates Distribution
}

// Kind returns KindPseudoDualFlexi.
func (s *PseudoDualFlexiSummary) Kind() Kind { return KindPseudoDualFlexi }

// SummarizePseudoDualFlexi derives a PseudoDualFlexiSummary from a
// validated PseudoDualFlexiResult.
func SummarizePseudoDualFlexi(res *trial.PseudoDualFlexiResult, p Params) (*PseudoDualFlexiSummary, error) {
	parent, err := SummarizePseudoDual(&res.PseudoDualResult, p)
	if err != nil {
		return nil, err
	}
	return &PseudoDualFlexiSummary{
		PseudoDualSummary:    *parent,
		Sigma2BetaWEstimates: NewDistribution(res.Sigma2BetaWEstimates()),
	}, nil
}

// probCurves extracts per-run pseudo-fit probability curves, checking each
// against the dose grid length.
func probCurves(field string, fits []trial.PointFit, nDoses int) ([][]float64, error) {
	curves := make([][]float64, len(fits))
	for i := range fits {
		if fits[i].NumDoses() != nDoses {
			return nil, &trial.ShapeError{
				Field: field, Want: nDoses, Got: fits[i].NumDoses(),
			}
		}
		curves[i] = fits[i].Probs
	}
	return curves, nil
}

// finiteOnly drops +Inf entries and reports how many were dropped.
func finiteOnly(values []float64) ([]float64, int) {
	out := values[:0]
	skipped := 0
	for _, v := range values {
		if math.IsInf(v, 0) {
			skipped++
			continue
		}
		out = append(out, v)
	}
	return out, skipped
}
