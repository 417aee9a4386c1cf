package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/gadotour/gado-stats/internal/models"
)

// Placeholder strings for broken joins. Display output carries these instead
// of failing when a referenced id has no matching record.
const (
	UnknownPlayer = "Jugador no encontrado"
	UnknownEvent  = "Evento no encontrado"
	UnknownRound  = "Ronda no encontrada"
	UnknownCourse = "Campo no encontrado"
)

// Snapshot is the full in-memory view of the workbook that every aggregation
// operates on. All operations in this package are pure functions over a
// snapshot; none of them perform I/O or keep state between calls.
type Snapshot struct {
	Players     []models.Player
	Courses     []models.Course
	Tees        []models.CourseTee
	Holes       []models.Hole
	Events      []models.Event
	Rounds      []models.Round
	Summaries   []models.RoundSummary
	HoleEntries []models.HoleEntry
	Motivations []models.Motivation
}

// Eligible returns the summaries that may enter statistics, preserving sheet
// order. See models.RoundSummary.Eligible for the rule.
func (s *Snapshot) Eligible() []models.RoundSummary {
	out := make([]models.RoundSummary, 0, len(s.Summaries))
	for _, sum := range s.Summaries {
		if sum.Eligible() {
			out = append(out, sum)
		}
	}
	return out
}

func (s *Snapshot) PlayerByID(id string) (models.Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return models.Player{}, false
}

func (s *Snapshot) CourseByID(id string) (models.Course, bool) {
	for _, c := range s.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

func (s *Snapshot) EventByID(id string) (models.Event, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

func (s *Snapshot) RoundByID(id string) (models.Round, bool) {
	for _, r := range s.Rounds {
		if r.ID == id {
			return r, true
		}
	}
	return models.Round{}, false
}

// HolesForCourse returns a course's holes sorted by hole number.
func (s *Snapshot) HolesForCourse(courseID string) []models.Hole {
	out := make([]models.Hole, 0, 18)
	for _, h := range s.Holes {
		if h.CourseID == courseID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// roundDate resolves a summary's chronological key: the parent round's date.
// Summaries whose round is missing or undated sort before everything else,
// and ties keep sheet insertion order (the sort used on top of this key must
// be stable).
func (s *Snapshot) roundDate(sum models.RoundSummary) (time.Time, bool) {
	r, ok := s.RoundByID(sum.RoundID)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse("02-01-2006", r.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sortChronological orders summaries by parent round date, oldest first,
// keeping insertion order among equal or unparseable dates.
func (s *Snapshot) sortChronological(sums []models.RoundSummary) []models.RoundSummary {
	out := make([]models.RoundSummary, len(sums))
	copy(out, sums)
	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := s.roundDate(out[i])
		tj, jok := s.roundDate(out[j])
		if iok != jok {
			return !iok
		}
		return ti.Before(tj)
	})
	return out
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders a DD-MM-YYYY workbook date for display. Unparseable
// dates pass through untouched.
func FormatDate(raw string) string {
	t, err := time.Parse("02-01-2006", raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// round1 rounds to one decimal place the way the leaderboards expect:
// multiply by ten, round to nearest, divide by ten.
func round1(x float64) float64 {
	if x >= 0 {
		return float64(int(x*10+0.5)) / 10
	}
	return float64(int(x*10-0.5)) / 10
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// meanPtr averages only the non-nil samples. It returns nil when every sample
// is blank so callers can distinguish "no data" from a real zero.
func meanPtr(values []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := round1(sum / float64(n))
	return &avg
}
