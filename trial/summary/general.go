package summary

import (
	"math"

	"github.com/escalation-sim/escalation-sim/trial"

	"gonum.org/v1/gonum/stat"
)

// GeneralSummary holds the statistics shared by every summary family. It is
// an abstract base: it only ever appears embedded in a concrete leaf
// summary, and the New factory refuses to build it on its own.
//
// Summaries are snapshots: they copy everything they report and hold no
// reference back into the result object they were derived from.
type GeneralSummary struct {
	Nsim               int
	Seed               trial.Seed
	Target             trial.Interval
	TargetDoseInterval trial.Interval
	DoseGrid           []float64
	Placebo            bool

	// Per-trial distributions.
	PropDLTs     Distribution // proportion of patients with a DLT, per trial
	NObs         Distribution // patients enrolled, per trial
	NAboveTarget Distribution // patients dosed above the target dose interval, per trial

	// Dose selection.
	DosesSelected                Distribution // final dose recommendations across trials
	PropAtTargetDose             float64      // proportion of trials ending inside the target dose interval
	DoseMostSelected             float64      // modal final dose (lowest wins ties)
	ObsToxRateAtDoseMostSelected float64      // observed DLT rate among patients treated at that dose
	MeanToxRisk                  float64      // mean across trials of the per-trial DLT proportion
}

// deriveGeneral computes the shared statistics from a validated base result.
func deriveGeneral(res *trial.Result, p Params) (GeneralSummary, error) {
	if err := p.Validate(); err != nil {
		return GeneralSummary{}, err
	}

	rs := res.RunSet()
	nsim := rs.NumRuns()

	propDLTs := make([]float64, nsim)
	nObs := make([]float64, nsim)
	nAbove := make([]float64, nsim)
	atTarget := 0
	for i := 0; i < nsim; i++ {
		run := rs.Run(i)
		n := run.NumPatients()
		nObs[i] = float64(n)
		if n > 0 {
			propDLTs[i] = float64(run.NumDLTs()) / float64(n)
		}
		for _, dose := range run.Doses {
			if dose > p.TargetDoseInterval.Upper {
				nAbove[i]++
			}
		}
		if p.TargetDoseInterval.Contains(rs.FinalDose(i)) {
			atTarget++
		}
	}

	finalDoses := rs.FinalDoses()
	mostSelected := modalDose(finalDoses)

	gs := GeneralSummary{
		Nsim:               nsim,
		Seed:               rs.Seed(),
		Target:             p.Target,
		TargetDoseInterval: p.TargetDoseInterval,
		DoseGrid:           append([]float64(nil), p.DoseGrid...),
		Placebo:            p.Placebo,

		PropDLTs:     NewDistribution(propDLTs),
		NObs:         NewDistribution(nObs),
		NAboveTarget: NewDistribution(nAbove),

		DosesSelected:                NewDistribution(finalDoses),
		DoseMostSelected:             mostSelected,
		ObsToxRateAtDoseMostSelected: obsToxRateAt(rs, mostSelected),
		MeanToxRisk:                  stat.Mean(propDLTs, nil),
	}
	if nsim > 0 {
		gs.PropAtTargetDose = float64(atTarget) / float64(nsim)
	}
	return gs, nil
}

// modalDose returns the most frequently selected dose; ties break toward
// the lowest dose. Returns NaN for an empty batch.
func modalDose(doses []float64) float64 {
	if len(doses) == 0 {
		return math.NaN()
	}
	counts := make(map[float64]int, len(doses))
	for _, d := range doses {
		counts[d]++
	}
	best := math.NaN()
	bestCount := 0
	for d, c := range counts {
		if c > bestCount || (c == bestCount && d < best) {
			best = d
			bestCount = c
		}
	}
	return best
}

// obsToxRateAt pools patients treated at exactly the given dose across all
// runs and returns their observed DLT rate. NaN when no patient was treated
// at that dose.
func obsToxRateAt(rs *trial.RunSet, dose float64) float64 {
	treated, toxic := 0, 0
	for i := 0; i < rs.NumRuns(); i++ {
		run := rs.Run(i)
		for j, d := range run.Doses {
			if d == dose {
				treated++
				if run.DLTs[j] {
					toxic++
				}
			}
		}
	}
	if treated == 0 {
		return math.NaN()
	}
	return float64(toxic) / float64(treated)
}
