package trial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDualResult_RoundTrip(t *testing.T) {
	rho := []float64{0.2, 0.3, 0.1}
	sigma2w := []float64{1.1, 0.9, 1.3}

	dr, err := NewDualResult(testRunSet(), testFits(), testStopReport(), testStopReasons(), nil,
		rho, sigma2w, testFits())
	require.NoError(t, err)

	assert.Equal(t, rho, dr.RhoEstimates())
	assert.Equal(t, sigma2w, dr.Sigma2WEstimates())
	assert.Equal(t, testFits(), dr.BiomarkerFits())
	assert.Equal(t, testFits()[1], *dr.BiomarkerFit(1))
}

func TestNewDualResult_AncestorInvariantStillChecked(t *testing.T) {
	// All dual-endpoint fields are individually valid, but the inherited
	// fits field is short: construction must still fail through the parent.
	rho := []float64{0.2, 0.3, 0.1}
	sigma2w := []float64{1.1, 0.9, 1.3}

	_, err := NewDualResult(testRunSet(), testFits()[:2], testStopReport(), testStopReasons(), nil,
		rho, sigma2w, testFits())

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "fits", shapeErr.Field)
	assert.Equal(t, 3, shapeErr.Want)
	assert.Equal(t, 2, shapeErr.Got)
}

func TestNewDualResult_CopiesBiomarkerCurves(t *testing.T) {
	biomarkerFits := testFits()
	dr, err := NewDualResult(testRunSet(), testFits(), testStopReport(), testStopReasons(), nil,
		[]float64{0.2, 0.3, 0.1}, []float64{1.1, 0.9, 1.3}, biomarkerFits)
	require.NoError(t, err)

	biomarkerFits[0].Middle[0] = 0.99
	assert.Equal(t, 0.05, dr.BiomarkerFit(0).Middle[0],
		"biomarker curves must be deep-copied at construction")
}

func TestNewDualResult_MismatchedRho(t *testing.T) {
	_, err := NewDualResult(testRunSet(), testFits(), testStopReport(), testStopReasons(), nil,
		[]float64{0.2}, []float64{1, 1, 1}, testFits())

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "rhoEstimates", shapeErr.Field)
}

func TestNewDualResult_MismatchedBiomarkerFits(t *testing.T) {
	_, err := NewDualResult(testRunSet(), testFits(), testStopReport(), testStopReasons(), nil,
		[]float64{0.2, 0.3, 0.1}, []float64{1, 1, 1}, testFits()[:1])

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "biomarkerFits", shapeErr.Field)
}
