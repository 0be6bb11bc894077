package trial

import "math"

// Seed captures the random-generator state recorded before a simulation
// batch started. Two batches run with the same Seed and identical design
// configuration MUST produce identical run sets.
type Seed int64

// NewSeed converts a numeric seed to a Seed, rejecting fractional values
// and values outside the int64 range. Simulation front-ends hand seeds
// through as floating point; anything that is not a representable whole
// number indicates a corrupted reproducibility marker.
func NewSeed(value float64) (Seed, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, &SeedError{Value: value}
	}
	// float64(math.MaxInt64) rounds up to 2^63, so >= excludes everything
	// the int64 conversion could not hold exactly.
	if value < math.MinInt64 || value >= float64(math.MaxInt64) {
		return 0, &SeedError{Value: value}
	}
	return Seed(int64(value)), nil
}
