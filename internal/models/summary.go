package models

import (
	"strconv"
	"strings"
)

// StatusComplete is the canonical completion marker a round summary must carry
// before it becomes eligible for any aggregation.
const StatusComplete = "completa"

// RoundSummary is one aggregated row per (player, round), derived by the
// workbook's own formulas from that round's hole entries. This system only
// reads summaries; it never writes them.
//
// TotalScore is kept as the raw cell text because eligibility is defined as
// "parses to a valid positive integer", so a blank or garbled cell must make
// the row ineligible, not silently become zero. The optional percentage fields are
// nil when the cell is blank so averages can exclude them from the denominator.
type RoundSummary struct {
	Key         string `json:"summary_key"`
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	Sex         string `json:"sex"`
	Club        string `json:"club"`
	RoundID     string `json:"round_id"`
	CourseID    string `json:"course_id"`
	CourseName  string `json:"course_name"`
	Category    string `json:"category"`
	TeeID       string `json:"tee_id"`
	TeeSet      string `json:"tee_set"`
	TotalYards  int    `json:"total_yards"`
	HolesPlayed int    `json:"holes_played"`

	TotalScore string `json:"total_score"`
	ScoreToPar int    `json:"score_to_par"`

	FIRPercent        *float64 `json:"fir_percent"`
	GIRPercent        *float64 `json:"gir_percent"`
	TotalPutts        int      `json:"total_putts"`
	AvgPutts          *float64 `json:"avg_putts"`
	ScramblingPercent *float64 `json:"scrambling_percent"`
	SandSavePercent   *float64 `json:"sand_save_percent"`

	Penalties     int `json:"penalties"`
	Eagles        int `json:"eagles"`
	Birdies       int `json:"birdies"`
	Pars          int `json:"pars"`
	Bogeys        int `json:"bogeys"`
	Doubles       int `json:"doubles"`
	TripleOrWorse int `json:"triple_or_worse"`

	Status       string `json:"status"`
	CustomStatus string `json:"custom_status"`
}

// Score parses the raw total-score cell. The second return is false when the
// cell does not hold a positive integer.
func (s *RoundSummary) Score() (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s.TotalScore))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// Eligible reports whether this summary may enter statistics: the round must
// be marked complete and its score must parse.
func (s *RoundSummary) Eligible() bool {
	if s.Status != StatusComplete {
		return false
	}
	_, ok := s.Score()
	return ok
}
