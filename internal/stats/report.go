package stats

import (
	"github.com/gadotour/gado-stats/internal/models"
)

// Strength/weakness thresholds for the coach report classifier.
const (
	girStrengthPct   = 50.0
	girWeaknessPct   = 30.0
	firStrengthPct   = 50.0
	firWeaknessPct   = 30.0
	puttsStrength    = 1.9
	puttsWeakness    = 2.1
	scrambleStrength = 40.0
	scrambleWeakness = 20.0
)

// trendWindow is how many rounds at each end feed the first-vs-last trend.
const trendWindow = 5

// ReportFilter selects the cohort. A non-empty PlayerIDs wins; otherwise the
// category/sex/club fields each narrow the set when non-empty.
type ReportFilter struct {
	PlayerIDs []string
	Category  string
	Sex       string
	Club      string
}

func (f ReportFilter) matches(p models.Player) bool {
	if len(f.PlayerIDs) > 0 {
		for _, id := range f.PlayerIDs {
			if id == p.ID {
				return true
			}
		}
		return false
	}
	if f.Category != "" && f.Category != p.Category {
		return false
	}
	if f.Sex != "" && f.Sex != p.Sex {
		return false
	}
	if f.Club != "" && f.Club != p.Club {
		return false
	}
	return true
}

// ParAverages holds per-par-type stroke averages computed from hole entries.
// A par type the player never recorded stays nil.
type ParAverages struct {
	Par3 *float64 `json:"par3"`
	Par4 *float64 `json:"par4"`
	Par5 *float64 `json:"par5"`
}

// ScoreDistribution totals scoring outcomes across a player's eligible rounds.
type ScoreDistribution struct {
	Eagles        int `json:"eagles"`
	Birdies       int `json:"birdies"`
	Pars          int `json:"pars"`
	Bogeys        int `json:"bogeys"`
	Doubles       int `json:"doubles"`
	TripleOrWorse int `json:"triple_or_worse"`
}

// PlayerReport is one player's block of the cohort report.
type PlayerReport struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Category   string `json:"category"`
	Club       string `json:"club"`
	Sex        string `json:"sex"`

	Rounds     int     `json:"rounds"`
	AvgScore   float64 `json:"avg_score"`
	BestScore  int     `json:"best_score"`
	WorstScore int     `json:"worst_score"`

	AvgFIR        *float64 `json:"avg_fir"`
	AvgGIR        *float64 `json:"avg_gir"`
	AvgPutts      *float64 `json:"avg_putts"`
	AvgScrambling *float64 `json:"avg_scrambling"`

	ParAverages ParAverages `json:"par_averages"`

	FirstAvg float64 `json:"first_rounds_avg"`
	LastAvg  float64 `json:"last_rounds_avg"`
	// Trend is first-window average minus last-window average; positive
	// means scores are coming down.
	Trend float64 `json:"trend"`

	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`

	Distribution ScoreDistribution `json:"distribution"`
}

// GroupReport is the cohort report for every qualifying player with at least
// one eligible round. Players with zero eligible rounds are omitted entirely.
type GroupReport struct {
	Players []PlayerReport `json:"players"`
	HasData bool           `json:"has_data"`
}

// ComputeGroupReport builds the comparative coach report for the filtered
// cohort.
func ComputeGroupReport(snap *Snapshot, filter ReportFilter) GroupReport {
	eligible := snap.Eligible()
	byPlayer := make(map[string][]models.RoundSummary)
	for _, s := range eligible {
		byPlayer[s.PlayerID] = append(byPlayer[s.PlayerID], s)
	}

	entriesByKey := make(map[string][]models.HoleEntry)
	for _, e := range snap.HoleEntries {
		entriesByKey[e.SummaryKey] = append(entriesByKey[e.SummaryKey], e)
	}

	var report GroupReport
	for _, p := range snap.Players {
		if !filter.matches(p) {
			continue
		}
		rounds := snap.sortChronological(byPlayer[p.ID])
		if len(rounds) == 0 {
			continue
		}
		report.Players = append(report.Players, buildPlayerReport(p, rounds, entriesByKey))
	}
	report.HasData = len(report.Players) > 0
	return report
}

func buildPlayerReport(p models.Player, rounds []models.RoundSummary, entriesByKey map[string][]models.HoleEntry) PlayerReport {
	pr := PlayerReport{
		PlayerID:   p.ID,
		PlayerName: p.DisplayName,
		Category:   p.Category,
		Club:       p.Club,
		Sex:        p.Sex,
		Rounds:     len(rounds),
	}

	scores := make([]float64, 0, len(rounds))
	firs := make([]*float64, 0, len(rounds))
	girs := make([]*float64, 0, len(rounds))
	putts := make([]*float64, 0, len(rounds))
	scrambles := make([]*float64, 0, len(rounds))
	best, worst := 0, 0
	for _, r := range rounds {
		v, _ := r.Score()
		scores = append(scores, float64(v))
		if best == 0 || v < best {
			best = v
		}
		if v > worst {
			worst = v
		}
		firs = append(firs, r.FIRPercent)
		girs = append(girs, r.GIRPercent)
		putts = append(putts, r.AvgPutts)
		scrambles = append(scrambles, r.ScramblingPercent)

		pr.Distribution.Eagles += r.Eagles
		pr.Distribution.Birdies += r.Birdies
		pr.Distribution.Pars += r.Pars
		pr.Distribution.Bogeys += r.Bogeys
		pr.Distribution.Doubles += r.Doubles
		pr.Distribution.TripleOrWorse += r.TripleOrWorse
	}
	pr.AvgScore = round1(mean(scores))
	pr.BestScore = best
	pr.WorstScore = worst
	pr.AvgFIR = meanPtr(firs)
	pr.AvgGIR = meanPtr(girs)
	pr.AvgPutts = meanPtr(putts)
	pr.AvgScrambling = meanPtr(scrambles)
	pr.ParAverages = parAverages(rounds, entriesByKey)

	window := trendWindow
	if len(scores) < window {
		window = len(scores)
	}
	pr.FirstAvg = round1(mean(scores[:window]))
	pr.LastAvg = round1(mean(scores[len(scores)-window:]))
	pr.Trend = round1(pr.FirstAvg - pr.LastAvg)

	pr.Strengths, pr.Weaknesses = classify(pr)
	return pr
}

func parAverages(rounds []models.RoundSummary, entriesByKey map[string][]models.HoleEntry) ParAverages {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, r := range rounds {
		for _, e := range entriesByKey[r.Key] {
			sums[e.Par] += float64(e.Strokes)
			counts[e.Par]++
		}
	}
	avg := func(par int) *float64 {
		if counts[par] == 0 {
			return nil
		}
		v := round1(sums[par] / float64(counts[par]))
		return &v
	}
	return ParAverages{Par3: avg(3), Par4: avg(4), Par5: avg(5)}
}

// classify applies the fixed thresholds to a player's averages. Metrics with
// no data contribute nothing to either list.
func classify(pr PlayerReport) (strengths, weaknesses []string) {
	if pr.AvgGIR != nil {
		switch {
		case *pr.AvgGIR > girStrengthPct:
			strengths = append(strengths, "Greens en regulación")
		case *pr.AvgGIR < girWeaknessPct:
			weaknesses = append(weaknesses, "Greens en regulación")
		}
	}
	if pr.AvgFIR != nil {
		switch {
		case *pr.AvgFIR > firStrengthPct:
			strengths = append(strengths, "Precisión desde el tee")
		case *pr.AvgFIR < firWeaknessPct:
			weaknesses = append(weaknesses, "Precisión desde el tee")
		}
	}
	if pr.AvgPutts != nil {
		switch {
		case *pr.AvgPutts < puttsStrength:
			strengths = append(strengths, "Putting")
		case *pr.AvgPutts > puttsWeakness:
			weaknesses = append(weaknesses, "Putting")
		}
	}
	if pr.AvgScrambling != nil {
		switch {
		case *pr.AvgScrambling > scrambleStrength:
			strengths = append(strengths, "Juego corto")
		case *pr.AvgScrambling < scrambleWeakness:
			weaknesses = append(weaknesses, "Juego corto")
		}
	}
	return strengths, weaknesses
}
