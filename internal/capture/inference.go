package capture

import (
	"fmt"

	"github.com/gadotour/gado-stats/internal/models"
)

// Capture flow limits. A hole with more than MaxStrokes is picked up, not
// holed out, and recorded at the cap by the operator.
const (
	MinStrokes = 1
	MaxStrokes = 10
	MaxPutts   = 4
)

// TriState is a yes/no field that starts unset so auto-fill can tell an
// untouched field from an explicit operator choice. NotApplicable is reserved
// for fairway-hit on par-3 holes.
type TriState int

const (
	TriUnset TriState = iota
	TriYes
	TriNo
	TriNotApplicable
)

func (t TriState) String() string {
	switch t {
	case TriYes:
		return "Sí"
	case TriNo:
		return "No"
	case TriNotApplicable:
		return "N/A"
	default:
		return ""
	}
}

// Bool collapses the tri-state for storage; only an explicit yes is true.
func (t TriState) Bool() bool {
	return t == TriYes
}

// ParseTriState reads operator input. Any of the accepted affirmative spellings
// is yes; "N/A" is the par-3 sentinel; anything else non-empty is no.
func ParseTriState(raw string) TriState {
	switch raw {
	case "":
		return TriUnset
	case "Sí", "Si", "Yes", "true", "TRUE":
		return TriYes
	case "N/A", "NA":
		return TriNotApplicable
	default:
		return TriNo
	}
}

// Draft is one hole's in-progress entry during a capture session. Strokes and
// Putts are nil until the operator types them; derivation only runs once both
// are present.
type Draft struct {
	Hole int
	Par  int

	Strokes *int
	Putts   *int
	TeeClub string

	Fairway TriState
	Green   TriState
	Bunker  TriState

	PenaltyOB      int
	PenaltyWater   int
	FirstPuttDistM float64
	Notes          string

	// Derived on Evaluate. UpDownAttempt and UpDownSuccess are never
	// operator-editable.
	ApproachShots int
	UpDownAttempt bool
	UpDownSuccess bool
	Result        string
}

// Started reports whether the operator has begun entering this hole.
func (d *Draft) Started() bool {
	return d.Strokes != nil || d.Putts != nil
}

// Evaluate derives the golf-semantic fields of a draft and returns the
// updated draft with the validation messages that block saving it. It is a
// pure function; call it after every field edit.
//
// Auto-fill only touches unset fields. An explicit operator value that
// contradicts the derivation produces an error instead of a silent override,
// except for the bunker/green mutual exclusion, which both errors and
// corrects.
func Evaluate(d Draft) (Draft, []string) {
	var errs []string

	if d.Par == 3 {
		d.Fairway = TriNotApplicable
	}

	if d.Strokes == nil || d.Putts == nil {
		return d, nil
	}
	strokes, putts := *d.Strokes, *d.Putts

	d.ApproachShots = strokes - putts
	gir := d.ApproachShots == d.Par-2

	if d.Green == TriUnset {
		if gir {
			d.Green = TriYes
		} else {
			d.Green = TriNo
		}
	} else if d.Green.Bool() != gir {
		errs = append(errs, fmt.Sprintf(
			"Green en regulación marcado %s pero golpes y putts indican %s (golpes %d − putts %d vs par %d)",
			d.Green, boolWord(gir), strokes, putts, d.Par))
	}

	if d.Par != 3 && d.Fairway == TriUnset {
		if gir {
			d.Fairway = TriYes
		} else {
			d.Fairway = TriNo
		}
	}

	if gir && d.Bunker == TriYes {
		errs = append(errs, "Green en regulación y bunker son excluyentes; bunker corregido a No")
		d.Bunker = TriNo
	}

	if gir && d.Par != 3 && d.Fairway == TriNo {
		errs = append(errs, "Green en regulación implica fairway; fairway corregido a Sí")
		d.Fairway = TriYes
	}

	if d.Bunker == TriYes && d.Green == TriYes {
		errs = append(errs, "Bunker implica no llegar al green en regulación; green corregido a No")
		d.Green = TriNo
	}

	d.UpDownAttempt = !gir
	d.UpDownSuccess = d.UpDownAttempt && strokes-d.Par <= 0

	if strokes < MinStrokes || strokes > MaxStrokes {
		errs = append(errs, fmt.Sprintf("Los golpes deben estar entre %d y %d", MinStrokes, MaxStrokes))
	}
	if putts < 0 || putts > MaxPutts {
		errs = append(errs, fmt.Sprintf("Los putts deben estar entre 0 y %d", MaxPutts))
	}
	if putts > strokes {
		errs = append(errs, "Los putts no pueden exceder el total de golpes")
	}
	if penalties := d.PenaltyOB + d.PenaltyWater; penalties > 0 && penalties > d.ApproachShots {
		errs = append(errs, "Los golpes de penalidad exceden los tiros de aproximación")
	}

	d.Result = models.ResultLabel(strokes - d.Par)
	return d, errs
}

func boolWord(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// Complete reports whether an already-evaluated draft can be persisted.
func Complete(d Draft, errs []string) bool {
	return d.Strokes != nil && d.Putts != nil && len(errs) == 0
}
