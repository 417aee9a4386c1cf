package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadotour/gado-stats/internal/models"
)

func TestScoreBadgeTiers(t *testing.T) {
	assert.Equal(t, BadgeParOrBetter, ScoreBadge(-3))
	assert.Equal(t, BadgeParOrBetter, ScoreBadge(0))
	assert.Equal(t, BadgeOverPar, ScoreBadge(1))
	assert.Equal(t, BadgeOverPar, ScoreBadge(5))
	assert.Equal(t, BadgeHighOverPar, ScoreBadge(6))
}

func TestCaptureTimes(t *testing.T) {
	snap := testSnapshot()
	snap.HoleEntries = []models.HoleEntry{
		{SummaryKey: "player_1:round_1", Hole: 17, Timestamp: "15/03/2026 11:00:00"},
		{SummaryKey: "player_1:round_1", Hole: 18, Timestamp: "15/03/2026 11:45:00"},
		{SummaryKey: "player_2:round_1", Hole: 18, Timestamp: "15/03/2026 12:10:00"},
		{SummaryKey: "", Hole: 18, Timestamp: "15/03/2026 13:00:00"},
	}

	times := CaptureTimes(snap)
	require.Len(t, times, 2)
	assert.Equal(t, "15/03/2026 11:45:00", times["player_1:round_1"])
	assert.Equal(t, "15/03/2026 12:10:00", times["player_2:round_1"])
}

func TestRecentGamesNewestFirst(t *testing.T) {
	first := testSummary("player_1", "round_1", "75")
	second := testSummary("player_2", "round_1", "72")
	third := testSummary("player_3", "round_2", "80")
	snap := testSnapshot(first, second, third)

	captureTimes := map[string]string{
		first.Key:  "15/03/2026 10:00:00",
		second.Key: "15/03/2026 14:30:00",
		third.Key:  "16/03/2026 09:00:00",
	}

	games := RecentGames(snap, captureTimes, 2)
	require.Len(t, games, 2)
	assert.Equal(t, third.Key, games[0].SummaryKey)
	assert.Equal(t, second.Key, games[1].SummaryKey)
	assert.Equal(t, "16/03/2026 09:00:00", games[0].CapturedAt)
}

func TestRecentGamesFallsBackToRoundDate(t *testing.T) {
	older := testSummary("player_1", "round_1", "75")
	newer := testSummary("player_2", "round_2", "72")
	snap := testSnapshot(older, newer)

	games := RecentGames(snap, nil, 0)
	require.Len(t, games, 2)
	assert.Equal(t, newer.Key, games[0].SummaryKey, "round_2 is dated a day later")
}

func TestRecentGamesCarriesBadge(t *testing.T) {
	s := testSummary("player_1", "round_1", "79")
	s.ScoreToPar = 7
	games := RecentGames(testSnapshot(s), nil, 0)
	require.Len(t, games, 1)
	assert.Equal(t, BadgeHighOverPar, games[0].Badge)
	assert.Equal(t, 79, games[0].Score)
	assert.Equal(t, "Ana Torres", games[0].PlayerName)
}

func TestCompletedGamesSortedByScore(t *testing.T) {
	snap := testSnapshot(
		testSummary("player_1", "round_1", "82"),
		testSummary("player_2", "round_1", "69"),
		testSummary("player_3", "round_1", "75"),
	)

	games := CompletedGames(snap)
	require.Len(t, games, 3)
	assert.Equal(t, 69, games[0].Score)
	assert.Equal(t, 75, games[1].Score)
	assert.Equal(t, 82, games[2].Score)
}
