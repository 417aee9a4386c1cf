package stats

import (
	"sort"

	"github.com/gadotour/gado-stats/internal/models"
)

// CategoryOrder is the tour's canonical age-bracket ordering. Groups are
// sorted by position in this list; any category not listed sorts after all
// listed ones.
var CategoryOrder = []string{"10-11", "12-13", "14-15", "16-18"}

func categoryRank(category string) int {
	for i, c := range CategoryOrder {
		if c == category {
			return i
		}
	}
	return len(CategoryOrder)
}

// CategoryStat is one (category, sex) cell of the cross-tab.
type CategoryStat struct {
	Category   string  `json:"category"`
	Sex        string  `json:"sex"`
	AvgScore   float64 `json:"avg_score"`
	Rounds     int     `json:"rounds"`
	Players    int     `json:"players"`
	BestScore  int     `json:"best_score"`
	WorstScore int     `json:"worst_score"`
}

// CategoryStats is the full cross-tab plus the overall tour average.
// HasData is false when no eligible summary exists.
type CategoryStats struct {
	Groups     []CategoryStat `json:"groups"`
	OverallAvg float64        `json:"overall_avg"`
	HasData    bool           `json:"has_data"`
}

// ComputeCategoryStats groups eligible summaries by (category, sex) and
// aggregates each cell. Order: canonical category rank, then "M" before any
// other sex value.
func ComputeCategoryStats(snap *Snapshot) CategoryStats {
	eligible := snap.Eligible()
	if len(eligible) == 0 {
		return CategoryStats{}
	}

	type key struct{ category, sex string }
	type acc struct {
		scores  []float64
		players map[string]struct{}
		best    int
		worst   int
	}
	groups := make(map[key]*acc)
	var overall []float64

	for _, s := range eligible {
		score, _ := s.Score()
		overall = append(overall, float64(score))
		k := key{s.Category, s.Sex}
		g, ok := groups[k]
		if !ok {
			g = &acc{players: make(map[string]struct{}), best: score, worst: score}
			groups[k] = g
		}
		g.scores = append(g.scores, float64(score))
		g.players[s.PlayerID] = struct{}{}
		if score < g.best {
			g.best = score
		}
		if score > g.worst {
			g.worst = score
		}
	}

	out := make([]CategoryStat, 0, len(groups))
	for k, g := range groups {
		out = append(out, CategoryStat{
			Category:   k.category,
			Sex:        k.sex,
			AvgScore:   round1(mean(g.scores)),
			Rounds:     len(g.scores),
			Players:    len(g.players),
			BestScore:  g.best,
			WorstScore: g.worst,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := categoryRank(out[i].Category), categoryRank(out[j].Category)
		if ri != rj {
			return ri < rj
		}
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return sexRank(out[i].Sex) < sexRank(out[j].Sex)
	})

	return CategoryStats{Groups: out, OverallAvg: round1(mean(overall)), HasData: true}
}

func sexRank(sex string) int {
	if sex == models.SexMale {
		return 0
	}
	return 1
}
