package stats

import (
	"sort"
	"time"

	"github.com/gadotour/gado-stats/internal/models"
)

// Badge tiers for the relative-to-par pill shown next to a recent game.
const (
	BadgeParOrBetter = "green"
	BadgeOverPar     = "yellow"
	BadgeHighOverPar = "red"
)

// ScoreBadge maps a round's score relative to par to its badge tier.
func ScoreBadge(scoreToPar int) string {
	switch {
	case scoreToPar <= 0:
		return BadgeParOrBetter
	case scoreToPar <= 5:
		return BadgeOverPar
	default:
		return BadgeHighOverPar
	}
}

// CaptureTimes maps each summary key to the timestamp of that round's
// 18th-hole entry. The final hole's capture moment serves as the round's
// completion time for recency ordering.
func CaptureTimes(snap *Snapshot) map[string]string {
	captured := make(map[string]string)
	for _, e := range snap.HoleEntries {
		if e.Hole == 18 && e.SummaryKey != "" && e.Timestamp != "" {
			captured[e.SummaryKey] = e.Timestamp
		}
	}
	return captured
}

// Game is one completed round enriched for the recent-games and history views.
type Game struct {
	SummaryKey string   `json:"summary_key"`
	PlayerID   string   `json:"player_id"`
	PlayerName string   `json:"player_name"`
	Category   string   `json:"category"`
	Club       string   `json:"club"`
	RoundName  string   `json:"round_name"`
	EventName  string   `json:"event_name"`
	CourseName string   `json:"course_name"`
	Date       string   `json:"date"`
	Score      int      `json:"score"`
	ScoreToPar int      `json:"score_to_par"`
	Badge      string   `json:"badge"`
	GIRPercent *float64 `json:"gir_percent"`
	FIRPercent *float64 `json:"fir_percent"`
	AvgPutts   *float64 `json:"avg_putts"`
	CapturedAt string   `json:"captured_at"`
}

func newGame(snap *Snapshot, s models.RoundSummary) Game {
	h := expandHolder(snap, s)
	score, _ := s.Score()
	return Game{
		SummaryKey: s.Key,
		PlayerID:   s.PlayerID,
		PlayerName: h.PlayerName,
		Category:   h.Category,
		Club:       h.Club,
		RoundName:  h.RoundName,
		EventName:  h.EventName,
		CourseName: h.CourseName,
		Date:       h.Date,
		Score:      score,
		ScoreToPar: s.ScoreToPar,
		Badge:      ScoreBadge(s.ScoreToPar),
		GIRPercent: s.GIRPercent,
		FIRPercent: s.FIRPercent,
		AvgPutts:   s.AvgPutts,
	}
}

// RecentGames returns the newest completed rounds, most recent first.
// Recency comes from the round's 18th-hole capture timestamp when one exists
// (captureTimes, keyed by summary key); rounds without one fall back to the
// parent round's date and sort after timestamped ones of the same day.
func RecentGames(snap *Snapshot, captureTimes map[string]string, limit int) []Game {
	eligible := snap.Eligible()
	games := make([]Game, 0, len(eligible))
	times := make([]time.Time, 0, len(eligible))
	for _, s := range eligible {
		g := newGame(snap, s)
		var at time.Time
		if raw, ok := captureTimes[s.Key]; ok {
			if t, err := time.Parse("02/01/2006 15:04:05", raw); err == nil {
				at = t
				g.CapturedAt = raw
			}
		}
		if at.IsZero() {
			if t, ok := snap.roundDate(s); ok {
				at = t
			}
		}
		games = append(games, g)
		times = append(times, at)
	}

	idx := make([]int, len(games))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return times[idx[a]].After(times[idx[b]]) })

	if limit <= 0 || limit > len(idx) {
		limit = len(idx)
	}
	out := make([]Game, 0, limit)
	for _, i := range idx[:limit] {
		out = append(out, games[i])
	}
	return out
}

// CompletedGames returns every completed round sorted by score, best first.
// Equal scores keep sheet order.
func CompletedGames(snap *Snapshot) []Game {
	eligible := snap.Eligible()
	out := make([]Game, 0, len(eligible))
	for _, s := range eligible {
		out = append(out, newGame(snap, s))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}
