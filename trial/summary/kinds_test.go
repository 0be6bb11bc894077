package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalation-sim/escalation-sim/trial"
)

func TestNew_AbstractKindsNotInstantiable(t *testing.T) {
	for _, kind := range []Kind{KindGeneral, KindPseudoGeneral} {
		t.Run(string(kind), func(t *testing.T) {
			rec, err := New(kind, testModelResult(t), testParams())
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, trial.ErrNotInstantiable)
		})
	}
}

func TestNew_WrongFamily(t *testing.T) {
	// A plain model result offered to the dual summarizer.
	rec, err := New(KindDual, testModelResult(t), testParams())
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, trial.ErrNotImplementedFamily)
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Kind("exotic"), testModelResult(t), testParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown summary kind")
}

func TestNew_DispatchesConcreteKinds(t *testing.T) {
	rec, err := New(KindModel, testModelResult(t), testParams())
	require.NoError(t, err)
	assert.Equal(t, KindModel, rec.Kind())

	_, ok := rec.(*ModelSummary)
	assert.True(t, ok)
}

func TestNewDistribution(t *testing.T) {
	d := NewDistribution([]float64{4, 1, 3, 2})
	assert.Equal(t, 4, d.Count)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 4.0, d.Max)
	assert.InDelta(t, 2.5, d.Mean, 1e-12)
	assert.InDelta(t, 2.0, d.Median, 1e-12)

	assert.Equal(t, Distribution{}, NewDistribution(nil))
}

func TestNewCurveBand_Empty(t *testing.T) {
	band := newCurveBand(nil)
	assert.Empty(t, band.Mean)
}
