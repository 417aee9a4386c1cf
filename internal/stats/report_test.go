package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadotour/gado-stats/internal/models"
)

func TestGroupReportExcludesZeroRoundPlayers(t *testing.T) {
	snap := testSnapshot(testSummary("player_1", "round_1", "75"))

	report := ComputeGroupReport(snap, ReportFilter{})
	require.True(t, report.HasData)
	require.Len(t, report.Players, 1)
	assert.Equal(t, "player_1", report.Players[0].PlayerID)
}

func TestGroupReportFilterByPlayerIDs(t *testing.T) {
	snap := testSnapshot(
		testSummary("player_1", "round_1", "75"),
		testSummary("player_2", "round_1", "72"),
	)

	report := ComputeGroupReport(snap, ReportFilter{PlayerIDs: []string{"player_2"}})
	require.Len(t, report.Players, 1)
	assert.Equal(t, "player_2", report.Players[0].PlayerID)
}

func TestGroupReportFilterByCohort(t *testing.T) {
	snap := testSnapshot(
		testSummary("player_1", "round_1", "75"), // 12-13 F Club Norte
		testSummary("player_2", "round_1", "72"), // 14-15 M Club Sur
		testSummary("player_3", "round_1", "80"), // 12-13 F Club Norte
	)

	report := ComputeGroupReport(snap, ReportFilter{Category: "12-13", Sex: "F", Club: "Club Norte"})
	require.Len(t, report.Players, 2)
}

func TestGroupReportScoreSpread(t *testing.T) {
	snap := testSnapshot(
		testSummary("player_1", "round_1", "82"),
		testSummary("player_1", "round_2", "74"),
	)

	report := ComputeGroupReport(snap, ReportFilter{})
	require.Len(t, report.Players, 1)
	pr := report.Players[0]
	assert.Equal(t, 78.0, pr.AvgScore)
	assert.Equal(t, 74, pr.BestScore)
	assert.Equal(t, 82, pr.WorstScore)
}

func TestGroupReportStrengthsAndWeaknesses(t *testing.T) {
	strong := testSummary("player_1", "round_1", "70")
	strong.GIRPercent = floatPtr(60)
	strong.FIRPercent = floatPtr(25)
	strong.AvgPutts = floatPtr(1.7)
	strong.ScramblingPercent = floatPtr(15)

	report := ComputeGroupReport(testSnapshot(strong), ReportFilter{})
	require.Len(t, report.Players, 1)
	pr := report.Players[0]

	assert.Contains(t, pr.Strengths, "Greens en regulación")
	assert.Contains(t, pr.Strengths, "Putting")
	assert.Contains(t, pr.Weaknesses, "Precisión desde el tee")
	assert.Contains(t, pr.Weaknesses, "Juego corto")
}

func TestGroupReportThresholdBoundariesAreNeutral(t *testing.T) {
	// Exactly at a threshold is neither strength nor weakness.
	s := testSummary("player_1", "round_1", "70")
	s.GIRPercent = floatPtr(50)
	s.FIRPercent = floatPtr(30)
	s.AvgPutts = floatPtr(1.9)
	s.ScramblingPercent = floatPtr(40)

	report := ComputeGroupReport(testSnapshot(s), ReportFilter{})
	require.Len(t, report.Players, 1)
	assert.Empty(t, report.Players[0].Strengths)
	assert.Empty(t, report.Players[0].Weaknesses)
}

func TestGroupReportParAverages(t *testing.T) {
	sum := testSummary("player_1", "round_1", "75")
	snap := testSnapshot(sum)
	snap.HoleEntries = []models.HoleEntry{
		{SummaryKey: sum.Key, Par: 3, Strokes: 4},
		{SummaryKey: sum.Key, Par: 3, Strokes: 3},
		{SummaryKey: sum.Key, Par: 4, Strokes: 5},
		{SummaryKey: "someone:else", Par: 5, Strokes: 6},
	}

	report := ComputeGroupReport(snap, ReportFilter{})
	require.Len(t, report.Players, 1)
	pa := report.Players[0].ParAverages

	require.NotNil(t, pa.Par3)
	assert.Equal(t, 3.5, *pa.Par3)
	require.NotNil(t, pa.Par4)
	assert.Equal(t, 5.0, *pa.Par4)
	assert.Nil(t, pa.Par5, "other players' entries never leak in")
}

func TestGroupReportTrendWindows(t *testing.T) {
	// Twelve rounds trending down: first five average well above last five.
	snap := testSnapshot()
	snap.Rounds = nil
	for i := 1; i <= 12; i++ {
		snap.Rounds = append(snap.Rounds, models.Round{
			ID:   fmt.Sprintf("round_%d", i),
			Date: fmt.Sprintf("%02d-03-2026", i),
		})
		snap.Summaries = append(snap.Summaries,
			testSummary("player_1", fmt.Sprintf("round_%d", i), fmt.Sprintf("%d", 90-i)))
	}

	report := ComputeGroupReport(snap, ReportFilter{})
	require.Len(t, report.Players, 1)
	pr := report.Players[0]

	assert.Equal(t, 87.0, pr.FirstAvg, "rounds 1..5 score 89..85")
	assert.Equal(t, 80.0, pr.LastAvg, "rounds 8..12 score 82..78")
	assert.Equal(t, 7.0, pr.Trend)
}

func TestGroupReportShortHistoryUsesAllRounds(t *testing.T) {
	snap := testSnapshot(
		testSummary("player_1", "round_1", "80"),
		testSummary("player_1", "round_2", "76"),
	)

	report := ComputeGroupReport(snap, ReportFilter{})
	require.Len(t, report.Players, 1)
	pr := report.Players[0]
	assert.Equal(t, 78.0, pr.FirstAvg)
	assert.Equal(t, 78.0, pr.LastAvg)
	assert.Equal(t, 0.0, pr.Trend)
}

func TestGroupReportDistributionTotals(t *testing.T) {
	r1 := testSummary("player_1", "round_1", "75")
	r1.Birdies, r1.Pars, r1.Bogeys = 2, 10, 6
	r2 := testSummary("player_1", "round_2", "73")
	r2.Eagles, r2.Birdies, r2.Pars = 1, 3, 11

	report := ComputeGroupReport(testSnapshot(r1, r2), ReportFilter{})
	require.Len(t, report.Players, 1)
	d := report.Players[0].Distribution
	assert.Equal(t, 1, d.Eagles)
	assert.Equal(t, 5, d.Birdies)
	assert.Equal(t, 21, d.Pars)
	assert.Equal(t, 6, d.Bogeys)
}
