package stats

import (
	"github.com/gadotour/gado-stats/internal/models"
)

// PlayerStats is one player's rolling statistics card.
//
// HasStats is false when the player has no eligible rounds; such records are
// emitted flagged so the caller decides whether to show or drop them.
// Advanced is false with exactly one round: the multi-round averages
// (AvgFIR/AvgGIR/AvgPutts) and Improvement are nil, not zero.
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Category   string `json:"category"`
	Club       string `json:"club"`
	Sex        string `json:"sex"`

	GamesPlayed int     `json:"games_played"`
	AvgScore    float64 `json:"avg_score"`
	BestScore   int     `json:"best_score"`

	AvgFIR      *float64 `json:"avg_fir"`
	AvgGIR      *float64 `json:"avg_gir"`
	AvgPutts    *float64 `json:"avg_putts"`
	Improvement *int     `json:"improvement"`

	HasStats bool `json:"has_stats"`
	Advanced bool `json:"advanced"`
}

// ComputePlayerStats emits one record per registered player. Eligible rounds
// are ordered chronologically by parent round date; improvement is the
// second-to-last score minus the most recent score, positive meaning the
// player improved.
func ComputePlayerStats(snap *Snapshot) []PlayerStats {
	eligible := snap.Eligible()
	byPlayer := make(map[string][]models.RoundSummary)
	for _, s := range eligible {
		byPlayer[s.PlayerID] = append(byPlayer[s.PlayerID], s)
	}

	out := make([]PlayerStats, 0, len(snap.Players))
	for _, p := range snap.Players {
		ps := PlayerStats{
			PlayerID:   p.ID,
			PlayerName: p.DisplayName,
			Category:   p.Category,
			Club:       p.Club,
			Sex:        p.Sex,
		}
		rounds := snap.sortChronological(byPlayer[p.ID])
		if len(rounds) == 0 {
			out = append(out, ps)
			continue
		}

		scores := make([]float64, 0, len(rounds))
		best := 0
		for _, r := range rounds {
			v, _ := r.Score()
			scores = append(scores, float64(v))
			if best == 0 || v < best {
				best = v
			}
		}
		ps.HasStats = true
		ps.GamesPlayed = len(rounds)
		ps.AvgScore = round1(mean(scores))
		ps.BestScore = best

		if len(rounds) >= 2 {
			ps.Advanced = true
			firs := make([]*float64, 0, len(rounds))
			girs := make([]*float64, 0, len(rounds))
			putts := make([]*float64, 0, len(rounds))
			for _, r := range rounds {
				firs = append(firs, r.FIRPercent)
				girs = append(girs, r.GIRPercent)
				putts = append(putts, r.AvgPutts)
			}
			ps.AvgFIR = meanPtr(firs)
			ps.AvgGIR = meanPtr(girs)
			ps.AvgPutts = meanPtr(putts)

			last, _ := rounds[len(rounds)-1].Score()
			prev, _ := rounds[len(rounds)-2].Score()
			imp := prev - last
			ps.Improvement = &imp
		}
		out = append(out, ps)
	}
	return out
}
