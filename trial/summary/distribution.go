package summary

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution is the six-number summary reported for every per-run
// statistic: minimum, lower quartile, median, mean, upper quartile, maximum.
type Distribution struct {
	Min    float64
	Q25    float64
	Median float64
	Mean   float64
	Q75    float64
	Max    float64
	Count  int
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Min:    sorted[0],
		Q25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Mean:   stat.Mean(sorted, nil),
		Q75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
		Count:  len(sorted),
	}
}

// CurveBand is a dose-grid-indexed fitted curve with quantile bands: the
// across-run mean plus the 2.5% and 97.5% quantiles at each grid dose.
type CurveBand struct {
	Mean  []float64
	Lower []float64
	Upper []float64
}

// newCurveBand aggregates per-run curves column-wise. curves[i] is the
// fitted curve of run i; all curves must cover the same grid (the result
// constructors enforce rectangularity within a fit, and the summarization
// entry points check curve length against the dose grid).
func newCurveBand(curves [][]float64) CurveBand {
	if len(curves) == 0 {
		return CurveBand{}
	}
	nDoses := len(curves[0])
	band := CurveBand{
		Mean:  make([]float64, nDoses),
		Lower: make([]float64, nDoses),
		Upper: make([]float64, nDoses),
	}
	column := make([]float64, len(curves))
	for j := 0; j < nDoses; j++ {
		for i, curve := range curves {
			column[i] = curve[j]
		}
		sort.Float64s(column)
		band.Mean[j] = stat.Mean(column, nil)
		band.Lower[j] = stat.Quantile(0.025, stat.Empirical, column, nil)
		band.Upper[j] = stat.Quantile(0.975, stat.Empirical, column, nil)
	}
	return band
}
