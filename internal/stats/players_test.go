package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadotour/gado-stats/internal/models"
)

func findPlayerStats(t *testing.T, all []PlayerStats, playerID string) PlayerStats {
	t.Helper()
	for _, ps := range all {
		if ps.PlayerID == playerID {
			return ps
		}
	}
	t.Fatalf("player %s not in stats output", playerID)
	return PlayerStats{}
}

func TestPlayerStatsZeroRoundsFlagged(t *testing.T) {
	snap := testSnapshot(testSummary("player_1", "round_1", "75"))

	all := ComputePlayerStats(snap)
	ps := findPlayerStats(t, all, "player_2")
	assert.False(t, ps.HasStats)
	assert.Zero(t, ps.GamesPlayed)
}

func TestPlayerStatsSingleRoundSuppressesAdvanced(t *testing.T) {
	s := testSummary("player_1", "round_1", "75")
	s.FIRPercent = floatPtr(60)
	s.GIRPercent = floatPtr(40)
	s.AvgPutts = floatPtr(2.0)

	ps := findPlayerStats(t, ComputePlayerStats(testSnapshot(s)), "player_1")
	assert.True(t, ps.HasStats)
	assert.False(t, ps.Advanced)
	assert.Equal(t, 1, ps.GamesPlayed)
	assert.Equal(t, 75.0, ps.AvgScore)
	assert.Equal(t, 75, ps.BestScore)
	assert.Nil(t, ps.AvgFIR, "single round reports nil, never zero")
	assert.Nil(t, ps.AvgGIR)
	assert.Nil(t, ps.AvgPutts)
	assert.Nil(t, ps.Improvement)
}

func TestPlayerStatsMultiRoundAverages(t *testing.T) {
	r1 := testSummary("player_1", "round_1", "80")
	r1.FIRPercent = floatPtr(50)
	r1.GIRPercent = floatPtr(30)
	r1.AvgPutts = floatPtr(2.2)

	r2 := testSummary("player_1", "round_2", "74")
	r2.FIRPercent = floatPtr(60)
	// GIR blank this round: excluded from that average's denominator.
	r2.AvgPutts = floatPtr(1.8)

	ps := findPlayerStats(t, ComputePlayerStats(testSnapshot(r1, r2)), "player_1")
	require.True(t, ps.Advanced)
	assert.Equal(t, 2, ps.GamesPlayed)
	assert.Equal(t, 77.0, ps.AvgScore)
	assert.Equal(t, 74, ps.BestScore)

	require.NotNil(t, ps.AvgFIR)
	assert.Equal(t, 55.0, *ps.AvgFIR)
	require.NotNil(t, ps.AvgGIR)
	assert.Equal(t, 30.0, *ps.AvgGIR, "blank round excluded, not zeroed")
	require.NotNil(t, ps.AvgPutts)
	assert.Equal(t, 2.0, *ps.AvgPutts)
}

func TestPlayerStatsImprovementUsesRoundDates(t *testing.T) {
	// Summaries arrive out of chronological order; round_1 (15-03) precedes
	// round_2 (16-03), so improvement is 80 - 74 = 6.
	newer := testSummary("player_1", "round_2", "74")
	older := testSummary("player_1", "round_1", "80")

	ps := findPlayerStats(t, ComputePlayerStats(testSnapshot(newer, older)), "player_1")
	require.NotNil(t, ps.Improvement)
	assert.Equal(t, 6, *ps.Improvement)
}

func TestPlayerStatsNegativeImprovement(t *testing.T) {
	older := testSummary("player_1", "round_1", "70")
	newer := testSummary("player_1", "round_2", "78")

	ps := findPlayerStats(t, ComputePlayerStats(testSnapshot(older, newer)), "player_1")
	require.NotNil(t, ps.Improvement)
	assert.Equal(t, -8, *ps.Improvement, "scores went up, negative improvement")
}

func TestPlayerStatsIgnoresIncompleteRounds(t *testing.T) {
	complete := testSummary("player_1", "round_1", "75")
	pending := models.RoundSummary{
		Key: "player_1:round_2", PlayerID: "player_1", RoundID: "round_2",
		Status: "en curso",
	}

	ps := findPlayerStats(t, ComputePlayerStats(testSnapshot(complete, pending)), "player_1")
	assert.Equal(t, 1, ps.GamesPlayed)
	assert.False(t, ps.Advanced)
}
