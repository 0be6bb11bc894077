package trial

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunSet_RoundTrip(t *testing.T) {
	runs := testRuns()
	doses := testFinalDoses()

	rs, err := NewRunSet(runs, doses, 42)
	require.NoError(t, err)

	assert.Equal(t, 3, rs.NumRuns())
	assert.Equal(t, Seed(42), rs.Seed())
	assert.Equal(t, doses, rs.FinalDoses())
	for i := range runs {
		assert.Equal(t, runs[i], *rs.Run(i))
		assert.Equal(t, doses[i], rs.FinalDose(i))
	}
}

func TestNewRunSet_MismatchedFinalDoses(t *testing.T) {
	_, err := NewRunSet(testRuns(), []float64{3, 3}, 42)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "finalDoses", shapeErr.Field)
	assert.Equal(t, 3, shapeErr.Want)
	assert.Equal(t, 2, shapeErr.Got)
}

func TestNewRunSet_InconsistentPatientVectors(t *testing.T) {
	runs := testRuns()
	runs[1].DLTs = []bool{false} // two patients, one outcome

	_, err := NewRunSet(runs, testFinalDoses(), 42)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "runs[1].dlts", shapeErr.Field)
}

func TestNewRunSet_FractionalSeed(t *testing.T) {
	_, err := NewRunSet(testRuns(), testFinalDoses(), 42.5)

	var seedErr *SeedError
	require.ErrorAs(t, err, &seedErr)
	assert.Equal(t, 42.5, seedErr.Value)
}

func TestNewRunSet_CopiesInputs(t *testing.T) {
	runs := testRuns()
	doses := testFinalDoses()
	rs, err := NewRunSet(runs, doses, 7)
	require.NoError(t, err)

	doses[0] = 99
	assert.Equal(t, 3.0, rs.FinalDose(0), "mutating caller slices must not affect the run set")
}

func TestNewRunSet_CopiesNestedPatientVectors(t *testing.T) {
	// A producer reusing its per-patient buffers after construction must
	// not be able to reach the stored snapshots.
	runs := testRuns()
	rs, err := NewRunSet(runs, testFinalDoses(), 7)
	require.NoError(t, err)

	runs[0].DLTs[0] = true
	runs[0].Doses[0] = 99
	runs[0].PatientIDs[0] = -1
	runs[0].Cohorts[0] = -1

	got := rs.Run(0)
	assert.False(t, got.DLTs[0], "DLT outcomes must be deep-copied at construction")
	assert.Equal(t, 1.0, got.Doses[0], "doses must be deep-copied at construction")
	assert.Equal(t, 1, got.PatientIDs[0])
	assert.Equal(t, 1, got.Cohorts[0])
}

func TestNewSeed(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Seed
		ok    bool
	}{
		{"whole number", 123, 123, true},
		{"zero", 0, 0, true},
		{"negative whole", -5, -5, true},
		{"fractional", 1.5, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"above int64 range", 1e19, 0, false},
		{"below int64 range", -1e19, 0, false},
		{"exactly 2^63", float64(math.MaxInt64), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSeed(tt.value)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.True(t, errors.As(err, new(*SeedError)))
			}
		})
	}
}
