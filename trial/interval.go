package trial

import "math"

// ratioTolerance bounds the relative drift allowed between a stored ratio
// and the upper/lower quotient of its credible interval.
const ratioTolerance = 1e-6

// Interval is an ordered (lower, upper) pair: a credible interval over a
// dose or probability scale, or a target interval supplied by the analyst.
type Interval struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// NewInterval builds an Interval, rejecting unordered pairs.
func NewInterval(lower, upper float64) (Interval, error) {
	iv := Interval{Lower: lower, Upper: upper}
	if err := iv.validate("interval", 0); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Width returns upper - lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Ratio returns upper/lower. A zero lower bound yields +Inf; callers that
// need a finite ratio must check the lower bound first.
func (iv Interval) Ratio() float64 {
	if iv.Lower == 0 {
		return math.Inf(1)
	}
	return iv.Upper / iv.Lower
}

// Contains reports whether v lies inside the closed interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lower && v <= iv.Upper
}

func (iv Interval) validate(field string, index int) error {
	if math.IsNaN(iv.Lower) || math.IsNaN(iv.Upper) {
		return &IntervalError{Field: field, Index: index, Reason: "NaN bound"}
	}
	if iv.Lower > iv.Upper {
		return &IntervalError{Field: field, Index: index,
			Reason: "lower bound exceeds upper bound"}
	}
	return nil
}
