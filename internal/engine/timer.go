package engine

import (
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/catalog"
)

var zeroTime time.Time

// Remaining is the time left on the active deadline. A paused room reports the frozen value.
func Remaining(s State, now time.Time) time.Duration {
	if s.StepEndsAt.IsZero() {
		return 0
	}
	ref := now
	if s.Paused && s.PausedAt != nil {
		ref = *s.PausedAt
	}
	return max(0, s.StepEndsAt.Sub(ref))
}

// Deadline returns the instant a timeout should fire, or false when nothing is pending.
func Deadline(s State) (time.Time, bool) {
	if s.Status != StatusRunning || s.Paused || s.StepEndsAt.IsZero() {
		return zeroTime, false
	}
	return s.StepEndsAt, true
}

// TimeoutCommand is what the room submits on behalf of nobody when the deadline passes.
func TimeoutCommand(s State) (Command, bool) {
	if _, ok := Deadline(s); !ok {
		return nil, false
	}
	switch s.Phase {
	case PhaseDraft:
		step, ok := CurrentStep(s.Cursor)
		if !ok {
			return nil, false
		}
		if step.Action == ActionBan {
			return Ban{By: RoleSystem, CharacterID: catalog.NoBan}, true
		}
		return Pick{By: RoleSystem, CharacterID: catalog.Random}, true
	case PhaseSwap:
		return FinishSwap{By: RoleSystem}, true
	}
	return nil, false
}

func applyPause(s *State, act *DraftAction, c PauseGame, now time.Time) error {
	if c.By != RoleReferee {
		return ErrNotAuthorized
	}
	if s.Status != StatusRunning {
		return ErrGameNotActive
	}
	if s.Paused {
		return ErrAlreadyPaused
	}
	s.Paused = true
	s.PausedAt = &now
	s.PauseReason = c.Reason
	act.Reason = c.Reason
	return nil
}

func applyResume(s *State, c ResumeGame, now time.Time) error {
	if c.By != RoleReferee {
		return ErrNotAuthorized
	}
	if !s.Paused {
		return ErrNotPaused
	}
	if !s.StepEndsAt.IsZero() && s.PausedAt != nil {
		remaining := max(0, s.StepEndsAt.Sub(*s.PausedAt))
		s.StepEndsAt = now.Add(remaining)
	}
	s.Paused = false
	s.PausedAt = nil
	s.PauseReason = ""
	return nil
}
