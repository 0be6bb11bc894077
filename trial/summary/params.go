package summary

import (
	"fmt"
	"sort"

	"github.com/escalation-sim/escalation-sim/trial"
)

// Params carries the analysis parameters the summarization procedure needs
// on top of a result object: the target toxicity probability interval, the
// target dose interval, the dose grid the design selected from, and whether
// the design included a placebo dose (the lowest grid entry).
type Params struct {
	Target             trial.Interval
	TargetDoseInterval trial.Interval
	DoseGrid           []float64
	Placebo            bool
}

// Validate checks the analysis parameters: both intervals ordered, the
// dose grid nonempty and strictly increasing.
func (p *Params) Validate() error {
	if p.Target.Lower > p.Target.Upper {
		return fmt.Errorf("target interval unordered: [%v, %v]", p.Target.Lower, p.Target.Upper)
	}
	if p.TargetDoseInterval.Lower > p.TargetDoseInterval.Upper {
		return fmt.Errorf("target dose interval unordered: [%v, %v]",
			p.TargetDoseInterval.Lower, p.TargetDoseInterval.Upper)
	}
	if len(p.DoseGrid) == 0 {
		return fmt.Errorf("dose grid must not be empty")
	}
	if !sort.Float64sAreSorted(p.DoseGrid) {
		return fmt.Errorf("dose grid must be sorted in increasing order")
	}
	for i := 1; i < len(p.DoseGrid); i++ {
		if p.DoseGrid[i] == p.DoseGrid[i-1] {
			return fmt.Errorf("dose grid contains duplicate dose %v", p.DoseGrid[i])
		}
	}
	return nil
}

// GridIndex returns the index of the highest grid dose <= dose
// (nearest-below lookup), or -1 when dose is below the whole grid.
func (p *Params) GridIndex(dose float64) int {
	idx := sort.SearchFloat64s(p.DoseGrid, dose)
	if idx < len(p.DoseGrid) && p.DoseGrid[idx] == dose {
		return idx
	}
	return idx - 1
}
