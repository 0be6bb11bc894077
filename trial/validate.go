package trial

import (
	"fmt"
	"math"
)

// Shared cross-field validity policy. Every result family funnels its
// per-run sequences through these checks; nsim from the base RunSet is
// always the authoritative length.

func fieldAt(field string, index int) string {
	return fmt.Sprintf("%s[%d]", field, index)
}

// checkLen verifies one per-run sequence length against nsim.
func checkLen(field string, got, nsim int) error {
	if got != nsim {
		return &ShapeError{Field: field, Want: nsim, Got: got}
	}
	return nil
}

// checkDoseFits verifies a per-run fitted-curve sequence.
func checkDoseFits(field string, fits []DoseFit, nsim int) error {
	if err := checkLen(field, len(fits), nsim); err != nil {
		return err
	}
	for i := range fits {
		if err := fits[i].validate(field, i); err != nil {
			return err
		}
	}
	return nil
}

// checkMatrix verifies an nsim×k rectangular boolean matrix with k >= 1.
func checkMatrix(field string, matrix [][]bool, nsim int) error {
	if err := checkLen(field, len(matrix), nsim); err != nil {
		return err
	}
	if nsim == 0 {
		return nil
	}
	k := len(matrix[0])
	if k < 1 {
		return &ShapeError{Field: fieldAt(field, 0), Want: 1, Got: 0}
	}
	for i, row := range matrix {
		if len(row) != k {
			return &ShapeError{Field: fieldAt(field, i), Want: k, Got: len(row)}
		}
	}
	return nil
}

// checkIntervals verifies a per-run CI sequence: length and pair ordering.
func checkIntervals(field string, intervals []Interval, nsim int) error {
	if err := checkLen(field, len(intervals), nsim); err != nil {
		return err
	}
	for i, iv := range intervals {
		if err := iv.validate(field, i); err != nil {
			return err
		}
		if iv.Lower < 0 {
			return &IntervalError{Field: field, Index: i,
				Reason: "negative lower bound on a nonnegative scale"}
		}
	}
	return nil
}

// checkRatios verifies that each ratio entry equals upper/lower of its
// interval within tolerance. A zero lower bound admits only +Inf: the ratio
// is propagated as infinity rather than rejected or clamped.
func checkRatios(field string, ratios []float64, intervals []Interval, nsim int) error {
	if err := checkLen(field, len(ratios), nsim); err != nil {
		return err
	}
	for i, r := range ratios {
		want := intervals[i].Ratio()
		if math.IsInf(want, 1) {
			if !math.IsInf(r, 1) {
				return &IntervalError{Field: field, Index: i,
					Reason: "ratio must be +Inf when the CI lower bound is zero"}
			}
			continue
		}
		if math.Abs(r-want) > ratioTolerance*math.Max(1, math.Abs(want)) {
			return &IntervalError{Field: field, Index: i,
				Reason: fmt.Sprintf("ratio %v does not match CI quotient %v", r, want)}
		}
	}
	return nil
}
