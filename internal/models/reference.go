package models

// Reference data decoded from the tour workbook. One struct per sheet; the
// column-to-field mapping lives in the sheets package so nothing outside the
// store boundary ever touches positional row indices.

// Sex values as stored in the workbook.
const (
	SexMale   = "M"
	SexFemale = "F"
)

// Player is a registered tour player (players sheet).
type Player struct {
	ID           string `json:"player_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DisplayName  string `json:"display_name"`
	Category     string `json:"category"`
	DefaultTeeID string `json:"default_tee_id"`
	Sex          string `json:"sex"`
	BirthDate    string `json:"birth_date"`
	Age          int    `json:"age"`
	Club         string `json:"club"`
	CURP         string `json:"curp"`
}

// Course is a golf course (courses sheet). Static reference data.
type Course struct {
	ID      string `json:"course_id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// CourseTee is one tee set of a course (course_tee sheet).
type CourseTee struct {
	ID          string  `json:"tee_id"`
	CourseID    string  `json:"course_id"`
	TeeSet      string  `json:"tee_set"`
	ParTotal    int     `json:"par_total"`
	TotalYards  int     `json:"total_yards"`
	RatingMen   float64 `json:"rating_men"`
	SlopeMen    int     `json:"slope_men"`
	RatingWomen float64 `json:"rating_women"`
	SlopeWomen  int     `json:"slope_women"`
}

// Hole is one hole of a course (holes sheet).
type Hole struct {
	CourseID    string `json:"course_id"`
	Number      int    `json:"number"`
	Par         int    `json:"par"`
	StrokeIndex int    `json:"stroke_index"`
	ID          string `json:"hole_id"`
}

// Event groups rounds at a course over a date range (events sheet).
// Dates are stored as DD-MM-YYYY strings.
type Event struct {
	ID        string `json:"event_id"`
	Name      string `json:"name"`
	Venue     string `json:"venue"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CourseID  string `json:"course_id"`
}

// Round is a single tour round (rounds sheet). At most a handful are active
// for capture at any time; the workbook does not enforce uniqueness.
type Round struct {
	ID       string `json:"round_id"`
	Name     string `json:"name"`
	EventID  string `json:"event_id"`
	Date     string `json:"date"`
	Number   int    `json:"number"`
	CourseID string `json:"course_id"`
	Active   bool   `json:"active"`
}

// RoundEntry is a player's registration for a round (round_entries sheet).
type RoundEntry struct {
	ID           string `json:"entry_id"`
	RoundID      string `json:"round_id"`
	PlayerID     string `json:"player_id"`
	DisplayName  string `json:"display_name"`
	TeeID        string `json:"tee_id"`
	TeeTime      string `json:"tee_time"`
	StartingHole int    `json:"starting_hole"`
	Notes        string `json:"notes"`
}

// Motivation is a single motivational phrase (motivations sheet).
type Motivation struct {
	Phrase string `json:"phrase"`
}
