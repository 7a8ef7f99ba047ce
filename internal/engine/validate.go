package engine

import (
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/catalog"
)

// checkDraftActive requires a running, unpaused game still inside the draft order.
func checkDraftActive(s State) (DraftStep, error) {
	if s.Status != StatusRunning || s.Phase != PhaseDraft {
		return DraftStep{}, ErrGameNotActive
	}
	if s.Paused {
		return DraftStep{}, errPaused
	}
	step, ok := CurrentStep(s.Cursor)
	if !ok {
		return DraftStep{}, ErrGameNotActive
	}
	return step, nil
}

// authorizeTurn lets the side on the clock act, plus referee and system.
func authorizeTurn(s State, step DraftStep, by Role) error {
	if by.privileged() {
		return nil
	}
	side, ok := s.SideOf(by)
	if !ok || side != step.Side {
		return ErrWrongTurn
	}
	return nil
}

// validateSelection checks, in order: draft active, turn, catalog and step kind, taken, fearless.
// It returns the step and the normalized character id. A random pick comes back already resolved.
func validateSelection(s State, kind Action, by Role, id string) (DraftStep, string, error) {
	step, err := checkDraftActive(s)
	if err != nil {
		return DraftStep{}, "", err
	}
	if err := authorizeTurn(s, step, by); err != nil {
		return DraftStep{}, "", err
	}

	c, ok := catalog.Lookup(id)
	if !ok || kind != step.Action {
		return DraftStep{}, "", ErrInvalidSelection
	}
	id = c.ID
	switch {
	case id == catalog.NoBan && kind != ActionBan,
		id == catalog.Random && kind != ActionPick:
		return DraftStep{}, "", ErrInvalidSelection
	case catalog.IsSentinel(id):
		// sentinels are never "taken"
	case s.used(id):
		return DraftStep{}, "", ErrAlreadyTaken
	case s.fearlessExcluded(id):
		return DraftStep{}, "", ErrFearlessBanned
	}

	if id == catalog.Random {
		resolved, ok := chooseRandomLegal(s)
		if !ok {
			return DraftStep{}, "", ErrNoLegalCharacter
		}
		id = resolved
	}
	return step, id, nil
}

func applySelection(s *State, act *DraftAction, kind Action, by Role, id string, now time.Time) error {
	step, id, err := validateSelection(*s, kind, by, id)
	if err != nil {
		return err
	}

	list := s.list(step.Side, step.Action)
	*list = append(*list, id)
	s.Cursor++

	act.StepIndex = step.Position
	act.Side = step.Side
	act.CharacterID = id

	if s.Cursor >= StepCount {
		enterSwap(s, now)
		return nil
	}
	s.StepEndsAt = now.Add(s.Rules.StepDuration)
	return nil
}
