package summary

import (
	"github.com/escalation-sim/escalation-sim/trial"
)

// DASummary aggregates a DAResult: everything in ModelSummary plus the
// distribution of trial durations.
type DASummary struct {
	ModelSummary

	TrialDurations Distribution
}

// Kind returns KindDA.
func (s *DASummary) Kind() Kind { return KindDA }

// SummarizeDA derives a DASummary from a validated DAResult.
func SummarizeDA(res *trial.DAResult, p Params) (*DASummary, error) {
	parent, err := SummarizeModel(&res.ModelResult, p)
	if err != nil {
		return nil, err
	}
	return &DASummary{
		ModelSummary:   *parent,
		TrialDurations: NewDistribution(res.TrialDurations()),
	}, nil
}
