package trial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPseudoResult_RoundTrip(t *testing.T) {
	in := testPseudoInput()

	pr, err := NewPseudoResult(testRunSet(), in)
	require.NoError(t, err)

	assert.Equal(t, in.Fits, pr.Fits())
	assert.Equal(t, in.TDDuringTrial, pr.TDDuringTrial())
	assert.Equal(t, in.TDDuringTrialAtGrid, pr.TDDuringTrialAtGrid())
	assert.Equal(t, in.TDEndOfTrial, pr.TDEndOfTrial())
	assert.Equal(t, in.TDEndOfTrialAtGrid, pr.TDEndOfTrialAtGrid())
	assert.Equal(t, in.TDEOTCIs[2], pr.TDEOTCI(2))
	assert.Equal(t, in.TDEOTRatios, pr.TDEOTRatios())
	assert.Equal(t, in.FinalCIs[0], pr.FinalCI(0))
	assert.Equal(t, in.FinalRatios, pr.FinalRatios())
	assert.Equal(t, in.StopReasons[0], pr.StopReasons(0))
}

func TestNewPseudoResult_CopiesFitCurves(t *testing.T) {
	in := testPseudoInput()
	pr, err := NewPseudoResult(testRunSet(), in)
	require.NoError(t, err)

	in.Fits[0].Probs[0] = 0.99
	assert.Equal(t, 0.05, pr.Fit(0).Probs[0],
		"pseudo fit curves must be deep-copied at construction")
}

func TestNewPseudoResult_MismatchedEstimates(t *testing.T) {
	in := testPseudoInput()
	in.TDEndOfTrial = in.TDEndOfTrial[:2]

	_, err := NewPseudoResult(testRunSet(), in)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "tdEndOfTrialEstimates", shapeErr.Field)
	assert.Equal(t, 3, shapeErr.Want)
	assert.Equal(t, 2, shapeErr.Got)
}

func TestNewPseudoResult_UnorderedCI(t *testing.T) {
	in := testPseudoInput()
	in.TDEOTCIs[1] = Interval{Lower: 6, Upper: 2}

	_, err := NewPseudoResult(testRunSet(), in)

	var ivErr *IntervalError
	require.ErrorAs(t, err, &ivErr)
	assert.Equal(t, "tdEOTCIs", ivErr.Field)
	assert.Equal(t, 1, ivErr.Index)
}

func TestNewPseudoResult_NegativeLowerBound(t *testing.T) {
	in := testPseudoInput()
	in.FinalCIs[0] = Interval{Lower: -1, Upper: 2}

	_, err := NewPseudoResult(testRunSet(), in)

	var ivErr *IntervalError
	require.ErrorAs(t, err, &ivErr)
	assert.Equal(t, "finalCIs", ivErr.Field)
}

func TestNewPseudoResult_RatioMismatch(t *testing.T) {
	in := testPseudoInput()
	in.TDEOTRatios[0] = 3.7 // CI is (1, 4), quotient 4

	_, err := NewPseudoResult(testRunSet(), in)

	var ivErr *IntervalError
	require.ErrorAs(t, err, &ivErr)
	assert.Equal(t, "tdEOTRatios", ivErr.Field)
	assert.Equal(t, 0, ivErr.Index)
}

func TestNewPseudoResult_ZeroLowerBoundPropagatesInfinity(t *testing.T) {
	in := testPseudoInput()
	in.TDEOTCIs[0] = Interval{Lower: 0, Upper: 4}

	// A finite ratio against a zero lower bound is rejected.
	_, err := NewPseudoResult(testRunSet(), in)
	var ivErr *IntervalError
	require.ErrorAs(t, err, &ivErr)
	assert.Equal(t, "tdEOTRatios", ivErr.Field)

	// The +Inf ratio is the accepted encoding.
	in.TDEOTRatios[0] = math.Inf(1)
	pr, err := NewPseudoResult(testRunSet(), in)
	require.NoError(t, err)
	assert.True(t, math.IsInf(pr.TDEOTRatios()[0], 1))
}

func TestNewPseudoResult_AncestorInvariantStillChecked(t *testing.T) {
	_, err := NewPseudoResult(nil, testPseudoInput())
	assert.ErrorIs(t, err, ErrNilRunSet)
}

func TestNewPseudoResult_Idempotent(t *testing.T) {
	build := func() *PseudoResult {
		pr, err := NewPseudoResult(testRunSet(), testPseudoInput())
		require.NoError(t, err)
		return pr
	}
	assert.Equal(t, build(), build())
}
