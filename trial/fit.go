package trial

// DoseFit is the fitted-curve summary one model fit produces over the dose
// grid: posterior middle estimate plus lower/upper credibility band, one
// value per grid dose. The three curves must be equal length.
type DoseFit struct {
	Middle []float64 `yaml:"middle"`
	Lower  []float64 `yaml:"lower"`
	Upper  []float64 `yaml:"upper"`
}

// NumDoses returns the number of dose-grid points the fit covers.
func (f *DoseFit) NumDoses() int {
	return len(f.Middle)
}

// clone deep-copies the fit so the record never aliases producer buffers.
func (f DoseFit) clone() DoseFit {
	return DoseFit{
		Middle: append([]float64(nil), f.Middle...),
		Lower:  append([]float64(nil), f.Lower...),
		Upper:  append([]float64(nil), f.Upper...),
	}
}

func copyDoseFits(fits []DoseFit) []DoseFit {
	out := make([]DoseFit, len(fits))
	for i := range fits {
		out[i] = fits[i].clone()
	}
	return out
}

func (f *DoseFit) validate(field string, run int) error {
	n := len(f.Middle)
	if len(f.Lower) != n {
		return &ShapeError{Field: fieldAt(field, run) + ".lower", Want: n, Got: len(f.Lower)}
	}
	if len(f.Upper) != n {
		return &ShapeError{Field: fieldAt(field, run) + ".upper", Want: n, Got: len(f.Upper)}
	}
	return nil
}

// PointFit is the fitted summary a pseudo (two-parameter regression) model
// produces per run: the two regression coefficients and the implied
// probability curve over the dose grid.
type PointFit struct {
	Phi1  float64   `yaml:"phi1"`
	Phi2  float64   `yaml:"phi2"`
	Probs []float64 `yaml:"probs"`
}

// NumDoses returns the number of dose-grid points the probability curve covers.
func (f *PointFit) NumDoses() int {
	return len(f.Probs)
}

// clone deep-copies the fit so the record never aliases producer buffers.
func (f PointFit) clone() PointFit {
	return PointFit{
		Phi1:  f.Phi1,
		Phi2:  f.Phi2,
		Probs: append([]float64(nil), f.Probs...),
	}
}

func copyPointFits(fits []PointFit) []PointFit {
	out := make([]PointFit, len(fits))
	for i := range fits {
		out[i] = fits[i].clone()
	}
	return out
}
