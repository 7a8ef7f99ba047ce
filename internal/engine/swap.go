package engine

import (
	"time"

	"github.com/cockroachdb/errors"
)

func enterSwap(s *State, now time.Time) {
	s.Phase = PhaseSwap
	s.BlueSwapSel = nil
	s.RedSwapSel = nil
	s.BlueSwapDone = false
	s.RedSwapDone = false
	s.StepEndsAt = zeroTime
	if s.Rules.SwapDuration > 0 {
		s.StepEndsAt = now.Add(s.Rules.SwapDuration)
	}
}

func checkSwapWindow(s State) error {
	if s.Status != StatusRunning || s.Phase != PhaseSwap {
		return ErrWrongPhase
	}
	if s.Paused {
		return errPaused
	}
	return nil
}

// authorizeSide lets the referee act for either side and a team only for its own.
func authorizeSide(s State, by Role, side Side) error {
	if !side.Valid() {
		return ErrMalformedCommand
	}
	if by.privileged() {
		return nil
	}
	own, ok := s.SideOf(by)
	if !ok || own != side {
		return ErrNotAuthorized
	}
	return nil
}

func checkSlot(picks []string, i int) error {
	if i < 0 || i >= len(picks) {
		return errors.Wrapf(ErrInvalidSwap, "index %d out of range", i)
	}
	if picks[i] == "" {
		return errors.Wrapf(ErrInvalidSwap, "slot %d is empty", i)
	}
	return nil
}

func applySwap(s *State, act *DraftAction, c Swap) error {
	if err := checkSwapWindow(*s); err != nil {
		return err
	}
	if err := authorizeSide(*s, c.By, c.Side); err != nil {
		return err
	}
	picks := s.picks(c.Side)
	if err := checkSlot(*picks, c.From); err != nil {
		return err
	}
	if err := checkSlot(*picks, c.To); err != nil {
		return err
	}
	if c.From == c.To {
		return errors.Wrap(ErrInvalidSwap, "indices must differ")
	}

	(*picks)[c.From], (*picks)[c.To] = (*picks)[c.To], (*picks)[c.From]
	*s.swapSel(c.Side) = nil
	act.Side = c.Side
	act.Swap = &SwapIndices{From: c.From, To: c.To}
	return nil
}

// applySwapClick handles one click of the two-click protocol.
func applySwapClick(s *State, act *DraftAction, c SwapClick) error {
	if err := checkSwapWindow(*s); err != nil {
		return err
	}
	if err := authorizeSide(*s, c.By, c.Side); err != nil {
		return err
	}
	picks := s.picks(c.Side)
	if err := checkSlot(*picks, c.Index); err != nil {
		return err
	}

	// An actor holding a click on one side cannot finish it on the other.
	if other := *s.swapSel(c.Side.Opposite()); other != nil && other.By == c.By {
		return ErrCrossSideSwap
	}

	slot := s.swapSel(c.Side)
	sel := *slot
	switch {
	case sel == nil:
		*slot = &SwapSelection{Index: c.Index, By: c.By}
	case sel.Index == c.Index:
		*slot = nil
	default:
		(*picks)[sel.Index], (*picks)[c.Index] = (*picks)[c.Index], (*picks)[sel.Index]
		act.Swap = &SwapIndices{From: sel.Index, To: c.Index}
		*slot = nil
	}

	idx := c.Index
	act.Side = c.Side
	act.SwapIndex = &idx
	return nil
}

// authorizeFinishSwap returns the confirming side for a team under CONSENT, "" for the referee.
func authorizeFinishSwap(s State, by Role) (Side, error) {
	if by.privileged() {
		return "", nil
	}
	if s.Rules.FinishSwap != FinishSwapConsent {
		return "", ErrNotAuthorized
	}
	side, ok := s.SideOf(by)
	if !ok {
		return "", ErrNotAuthorized
	}
	return side, nil
}

func applyFinishSwap(s *State, act *DraftAction, c FinishSwap) error {
	if err := checkSwapWindow(*s); err != nil {
		return err
	}
	side, err := authorizeFinishSwap(*s, c.By)
	if err != nil {
		return err
	}

	switch side {
	case SideBlue:
		s.BlueSwapDone = true
	case SideRed:
		s.RedSwapDone = true
	}
	act.Side = side
	if side != "" && !(s.BlueSwapDone && s.RedSwapDone) {
		return nil
	}

	s.Status = StatusFinished
	s.Phase = PhaseFinished
	s.StepEndsAt = zeroTime
	s.BlueSwapSel = nil
	s.RedSwapSel = nil
	return nil
}

func (s *State) swapSel(side Side) **SwapSelection {
	if side == SideBlue {
		return &s.BlueSwapSel
	}
	return &s.RedSwapSel
}
