package stats

import (
	"fmt"
	"strings"

	"github.com/gadotour/gado-stats/internal/models"
)

// RecordHolder is one tied record entry, fully joined for display.
type RecordHolder struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Category   string `json:"category"`
	Club       string `json:"club"`
	Sex        string `json:"sex"`
	EventName  string `json:"event_name"`
	RoundName  string `json:"round_name"`
	CourseName string `json:"course_name"`
	Location   string `json:"location"`
	Date       string `json:"date"`
}

// MetricRecord is the best value of one metric across the eligible set plus
// every summary that ties it. HasData is false when no eligible summary
// carried the metric at all, so callers render "no data yet" instead of zeros.
type MetricRecord struct {
	Metric  string         `json:"metric"`
	Value   float64        `json:"value"`
	Display string         `json:"display"`
	Holders []RecordHolder `json:"holders"`
	HasData bool           `json:"has_data"`
}

// TourRecords bundles every leaderboard record the dashboard shows.
type TourRecords struct {
	BestScore   MetricRecord `json:"best_score"`
	BestFIR     MetricRecord `json:"best_fir"`
	BestGIR     MetricRecord `json:"best_gir"`
	MostEagles  MetricRecord `json:"most_eagles"`
	MostBirdies MetricRecord `json:"most_birdies"`
	BestPutts   MetricRecord `json:"best_putts"`
}

// ComputeRecords finds the extremum of each metric over the eligible
// summaries and expands the full tie group for each.
func ComputeRecords(snap *Snapshot) TourRecords {
	eligible := snap.Eligible()
	return TourRecords{
		BestScore: bestOf(snap, eligible, "best_score", false, func(s models.RoundSummary) (float64, bool) {
			v, ok := s.Score()
			return float64(v), ok
		}),
		BestFIR: bestOf(snap, eligible, "best_fir", true, func(s models.RoundSummary) (float64, bool) {
			if s.FIRPercent == nil {
				return 0, false
			}
			return *s.FIRPercent, true
		}),
		BestGIR: bestOf(snap, eligible, "best_gir", true, func(s models.RoundSummary) (float64, bool) {
			if s.GIRPercent == nil {
				return 0, false
			}
			return *s.GIRPercent, true
		}),
		MostEagles: bestOf(snap, eligible, "most_eagles", true, func(s models.RoundSummary) (float64, bool) {
			return float64(s.Eagles), true
		}),
		MostBirdies: bestOf(snap, eligible, "most_birdies", true, func(s models.RoundSummary) (float64, bool) {
			return float64(s.Birdies), true
		}),
		BestPutts: bestOf(snap, eligible, "best_putts", false, func(s models.RoundSummary) (float64, bool) {
			if s.AvgPutts == nil {
				return 0, false
			}
			return *s.AvgPutts, true
		}),
	}
}

// bestOf scans the eligible set for the extremal metric value and returns
// every summary whose value equals it. Summaries where the metric is blank
// are skipped entirely, never treated as zero.
func bestOf(snap *Snapshot, eligible []models.RoundSummary, metric string, maximize bool, value func(models.RoundSummary) (float64, bool)) MetricRecord {
	var best float64
	found := false
	for _, s := range eligible {
		v, ok := value(s)
		if !ok {
			continue
		}
		if !found || (maximize && v > best) || (!maximize && v < best) {
			best = v
			found = true
		}
	}
	if !found {
		return MetricRecord{Metric: metric}
	}

	rec := MetricRecord{Metric: metric, Value: best, Display: formatMetric(best), HasData: true}
	for _, s := range eligible {
		v, ok := value(s)
		if ok && v == best {
			rec.Holders = append(rec.Holders, expandHolder(snap, s))
		}
	}
	return rec
}

func formatMetric(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// expandHolder joins a summary with its player, round, event and course.
// Broken joins resolve to placeholder strings, never an error.
func expandHolder(snap *Snapshot, s models.RoundSummary) RecordHolder {
	h := RecordHolder{
		PlayerID:   s.PlayerID,
		PlayerName: UnknownPlayer,
		EventName:  UnknownEvent,
		RoundName:  UnknownRound,
		CourseName: UnknownCourse,
		Category:   s.Category,
		Club:       s.Club,
		Sex:        s.Sex,
	}
	if p, ok := snap.PlayerByID(s.PlayerID); ok {
		h.PlayerName = p.DisplayName
		if h.Category == "" {
			h.Category = p.Category
		}
		if h.Club == "" {
			h.Club = p.Club
		}
		if h.Sex == "" {
			h.Sex = p.Sex
		}
	} else if s.PlayerName != "" {
		h.PlayerName = s.PlayerName
	}
	if r, ok := snap.RoundByID(s.RoundID); ok {
		h.RoundName = r.Name
		h.Date = FormatDate(r.Date)
		if e, ok := snap.EventByID(r.EventID); ok {
			h.EventName = e.Name
		}
	}
	if c, ok := snap.CourseByID(s.CourseID); ok {
		parts := []string{c.Name}
		if c.City != "" {
			parts = append(parts, c.City)
		}
		if c.State != "" {
			parts = append(parts, c.State)
		}
		h.CourseName = c.Name
		h.Location = strings.Join(parts[1:], ", ")
	} else if s.CourseName != "" {
		h.CourseName = s.CourseName
	}
	return h
}
