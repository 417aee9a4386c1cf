package capture

import (
	"fmt"
	"sort"
)

// MinHolesToSave is the fewest valid holes a session needs before it may be
// persisted. Below this the whole session is rejected; there is no
// partial-round save path.
const MinHolesToSave = 9

// SessionState is the capture session lifecycle.
type SessionState string

const (
	StateEmpty      SessionState = "EMPTY"
	StateInProgress SessionState = "IN_PROGRESS"
	StateReady      SessionState = "READY"
	StateSaved      SessionState = "SAVED"
)

// Session tracks one player's live capture of one round, hole by hole. It is
// not safe for concurrent use; each operator owns one session.
type Session struct {
	PlayerID string
	RoundID  string

	drafts map[int]Draft
	errs   map[int][]string
	saved  bool
}

func NewSession(playerID, roundID string) *Session {
	return &Session{
		PlayerID: playerID,
		RoundID:  roundID,
		drafts:   make(map[int]Draft),
		errs:     make(map[int][]string),
	}
}

// SetHole records an edit to one hole's draft, re-running derivation and
// validation. The evaluated draft and its current errors are returned.
func (s *Session) SetHole(d Draft) (Draft, []string, error) {
	if s.saved {
		return Draft{}, nil, fmt.Errorf("session already saved")
	}
	evaluated, errs := Evaluate(d)
	s.drafts[d.Hole] = evaluated
	s.errs[d.Hole] = errs
	return evaluated, errs, nil
}

// Hole returns the current draft and errors for a hole number.
func (s *Session) Hole(n int) (Draft, []string, bool) {
	d, ok := s.drafts[n]
	return d, s.errs[n], ok
}

// ValidHoles counts holes with a complete, error-free entry.
func (s *Session) ValidHoles() int {
	count := 0
	for n, d := range s.drafts {
		if Complete(d, s.errs[n]) {
			count++
		}
	}
	return count
}

// CanLeaveHole reports whether the operator may navigate away from a hole.
// A started entry that still has errors pins the operator; an untouched hole
// never blocks.
func (s *Session) CanLeaveHole(n int) bool {
	d, ok := s.drafts[n]
	if !ok || !d.Started() {
		return true
	}
	return len(s.errs[n]) == 0
}

// State derives the lifecycle state from the drafts entered so far. READY
// requires both enough valid holes and no outstanding errors on any hole, so
// it never disagrees with CanSave.
func (s *Session) State() SessionState {
	if s.saved {
		return StateSaved
	}
	switch {
	case s.ValidHoles() >= MinHolesToSave && !s.hasErrors():
		return StateReady
	case len(s.drafts) > 0:
		return StateInProgress
	default:
		return StateEmpty
	}
}

func (s *Session) hasErrors() bool {
	for _, errs := range s.errs {
		if len(errs) > 0 {
			return true
		}
	}
	return false
}

// CanSave reports whether the session may be persisted, with the blocking
// reason when it may not.
func (s *Session) CanSave() error {
	if s.saved {
		return fmt.Errorf("la sesión ya fue guardada")
	}
	for n, errs := range s.errs {
		if len(errs) > 0 {
			return fmt.Errorf("el hoyo %d tiene errores sin resolver", n)
		}
	}
	if valid := s.ValidHoles(); valid < MinHolesToSave {
		return fmt.Errorf("se requieren al menos %d hoyos completos, hay %d", MinHolesToSave, valid)
	}
	return nil
}

// CompleteDrafts returns the valid drafts in hole order, for persistence.
func (s *Session) CompleteDrafts() []Draft {
	out := make([]Draft, 0, len(s.drafts))
	for n, d := range s.drafts {
		if Complete(d, s.errs[n]) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hole < out[j].Hole })
	return out
}

// MarkSaved moves the session to its terminal state after a successful write.
func (s *Session) MarkSaved() error {
	if err := s.CanSave(); err != nil {
		return err
	}
	s.saved = true
	return nil
}
