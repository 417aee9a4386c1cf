package models

// Scoring labels stored in the result column, keyed by strokes relative to par.
const (
	ResultEagleOrBetter = "Eagle o mejor"
	ResultBirdie        = "Birdie"
	ResultPar           = "Par"
	ResultBogey         = "Bogey"
	ResultDoubleBogey   = "Doble Bogey"
	ResultTripleOrWorse = "Triple o peor"
)

// ResultLabel maps strokes-minus-par to the stored scoring label.
func ResultLabel(scoreToPar int) string {
	switch {
	case scoreToPar <= -2:
		return ResultEagleOrBetter
	case scoreToPar == -1:
		return ResultBirdie
	case scoreToPar == 0:
		return ResultPar
	case scoreToPar == 1:
		return ResultBogey
	case scoreToPar == 2:
		return ResultDoubleBogey
	default:
		return ResultTripleOrWorse
	}
}

// HoleEntry is the raw capture unit: one row per (player, round, hole) in the
// stats_hole sheet. Entries are append-only; once written they are never
// mutated by this system. SummaryKey is player id + ":" + round id and links
// the entry to its parent round summary.
type HoleEntry struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	RoundID    string `json:"round_id"`
	TeeID      string `json:"tee_id"`
	Hole       int    `json:"hole"`
	Par        int    `json:"par"`
	Strokes    int    `json:"strokes"`
	ScoreToPar int    `json:"score_to_par"`
	Result     string `json:"result"`
	Putts      int    `json:"putts"`
	TeeClub    string `json:"tee_club"`

	FairwayHit        bool `json:"fairway_hit"`
	GreenInRegulation bool `json:"green_in_regulation"`
	Bunker            bool `json:"bunker"`

	PenaltyOB      int     `json:"penalty_ob"`
	PenaltyWater   int     `json:"penalty_water"`
	FirstPuttDistM float64 `json:"first_putt_dist_m"`

	UpDownAttempt bool `json:"up_down_attempt"`
	UpDownSuccess bool `json:"up_down_success"`

	Notes      string `json:"notes"`
	SummaryKey string `json:"summary_key"`
}
