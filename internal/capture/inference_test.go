package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadotour/gado-stats/internal/models"
)

func intPtr(v int) *int { return &v }

func TestEvaluateParOnRegulation(t *testing.T) {
	d, errs := Evaluate(Draft{Hole: 1, Par: 4, Strokes: intPtr(4), Putts: intPtr(2)})

	require.Empty(t, errs)
	assert.Equal(t, 2, d.ApproachShots)
	assert.Equal(t, TriYes, d.Green)
	assert.Equal(t, TriYes, d.Fairway)
	assert.False(t, d.UpDownAttempt)
	assert.False(t, d.UpDownSuccess)
	assert.Equal(t, models.ResultPar, d.Result)
}

func TestEvaluateParThreeMissedGreen(t *testing.T) {
	d, errs := Evaluate(Draft{Hole: 7, Par: 3, Strokes: intPtr(5), Putts: intPtr(3)})

	require.Empty(t, errs)
	assert.Equal(t, 2, d.ApproachShots)
	assert.Equal(t, TriNo, d.Green)
	assert.Equal(t, TriNotApplicable, d.Fairway, "fairway is never derived on a par 3")
	assert.True(t, d.UpDownAttempt)
	assert.False(t, d.UpDownSuccess)
	assert.Equal(t, models.ResultDoubleBogey, d.Result)
}

func TestEvaluatePuttsExceedStrokes(t *testing.T) {
	_, errs := Evaluate(Draft{Hole: 2, Par: 4, Strokes: intPtr(3), Putts: intPtr(4)})

	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "Los putts no pueden exceder el total de golpes")
}

func TestEvaluateDoesNotOverrideExplicitGreen(t *testing.T) {
	// Strokes and putts indicate GIR, but the operator explicitly said No.
	d, errs := Evaluate(Draft{Hole: 3, Par: 4, Strokes: intPtr(4), Putts: intPtr(2), Green: TriNo})

	require.Len(t, errs, 1)
	assert.Equal(t, TriNo, d.Green, "explicit choice is kept, only flagged")
}

func TestEvaluateBunkerGreenExclusion(t *testing.T) {
	d, errs := Evaluate(Draft{Hole: 4, Par: 4, Strokes: intPtr(4), Putts: intPtr(2), Bunker: TriYes})

	require.NotEmpty(t, errs)
	assert.Equal(t, TriNo, d.Bunker, "bunker corrected when GIR holds")
}

func TestEvaluateBunkerCorrectsExplicitGreen(t *testing.T) {
	d, errs := Evaluate(Draft{Hole: 5, Par: 4, Strokes: intPtr(5), Putts: intPtr(2), Green: TriYes, Bunker: TriYes})

	require.NotEmpty(t, errs)
	assert.Equal(t, TriNo, d.Green)
}

func TestEvaluateFairwayCorrectedByGIR(t *testing.T) {
	d, errs := Evaluate(Draft{Hole: 6, Par: 5, Strokes: intPtr(5), Putts: intPtr(2), Fairway: TriNo})

	require.NotEmpty(t, errs)
	assert.Equal(t, TriYes, d.Fairway)
}

func TestEvaluateRangeChecks(t *testing.T) {
	tests := []struct {
		name    string
		strokes int
		putts   int
		wantErr string
	}{
		{"strokes above cap", 11, 2, "Los golpes deben estar entre 1 y 10"},
		{"strokes below floor", 0, 0, "Los golpes deben estar entre 1 y 10"},
		{"putts above cap", 9, 5, "Los putts deben estar entre 0 y 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Evaluate(Draft{Hole: 1, Par: 4, Strokes: intPtr(tt.strokes), Putts: intPtr(tt.putts)})
			assert.Contains(t, errs, tt.wantErr)
		})
	}
}

func TestEvaluatePenaltiesExceedApproach(t *testing.T) {
	_, errs := Evaluate(Draft{
		Hole: 9, Par: 4, Strokes: intPtr(5), Putts: intPtr(2),
		PenaltyOB: 2, PenaltyWater: 2,
	})
	assert.Contains(t, errs, "Los golpes de penalidad exceden los tiros de aproximación")
}

func TestEvaluateUpDownSuccess(t *testing.T) {
	// Missed green on a par 5 but still made par: up and down converted.
	d, errs := Evaluate(Draft{Hole: 10, Par: 5, Strokes: intPtr(5), Putts: intPtr(1)})

	require.Empty(t, errs)
	assert.Equal(t, TriNo, d.Green)
	assert.True(t, d.UpDownAttempt)
	assert.True(t, d.UpDownSuccess)
}

func TestEvaluateUntouchedDraftDerivesNothing(t *testing.T) {
	d, errs := Evaluate(Draft{Hole: 11, Par: 4})

	assert.Empty(t, errs)
	assert.Equal(t, TriUnset, d.Green)
	assert.Empty(t, d.Result)
}

func TestResultLabels(t *testing.T) {
	tests := []struct {
		strokes int
		par     int
		want    string
	}{
		{2, 4, models.ResultEagleOrBetter},
		{1, 4, models.ResultEagleOrBetter},
		{3, 4, models.ResultBirdie},
		{4, 4, models.ResultPar},
		{5, 4, models.ResultBogey},
		{6, 4, models.ResultDoubleBogey},
		{7, 4, models.ResultTripleOrWorse},
		{10, 4, models.ResultTripleOrWorse},
	}
	for _, tt := range tests {
		d, _ := Evaluate(Draft{Hole: 1, Par: tt.par, Strokes: intPtr(tt.strokes), Putts: intPtr(1)})
		assert.Equal(t, tt.want, d.Result, "strokes %d on par %d", tt.strokes, tt.par)
	}
}

func TestParseTriState(t *testing.T) {
	assert.Equal(t, TriYes, ParseTriState("Sí"))
	assert.Equal(t, TriYes, ParseTriState("Yes"))
	assert.Equal(t, TriYes, ParseTriState("TRUE"))
	assert.Equal(t, TriNo, ParseTriState("No"))
	assert.Equal(t, TriNo, ParseTriState("anything else"))
	assert.Equal(t, TriUnset, ParseTriState(""))
	assert.Equal(t, TriNotApplicable, ParseTriState("N/A"))
}
