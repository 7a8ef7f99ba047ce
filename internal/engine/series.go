package engine

import (
	"slices"
	"time"

	"github.com/cockroachdb/errors"
)

// WinsNeeded is the majority threshold for the format.
func (m SeriesMode) WinsNeeded() int {
	switch m {
	case SeriesBO2, SeriesBO3:
		return 2
	case SeriesBO5:
		return 3
	}
	return 1
}

// MaxGames is the most games the format can play. A BO2 always plays both.
func (m SeriesMode) MaxGames() int {
	switch m {
	case SeriesBO2:
		return 2
	case SeriesBO3:
		return 3
	case SeriesBO5:
		return 5
	}
	return 1
}

func (m SeriesMode) Valid() bool {
	switch m {
	case SeriesBO1, SeriesBO2, SeriesBO3, SeriesBO5:
		return true
	}
	return false
}

func (m DraftMode) Valid() bool { return m == DraftStandard || m == DraftFearless }

func (p SideSelectionPolicy) Valid() bool {
	switch p {
	case SideSelectLoser, SideSelectAlternate, SideSelectReferee:
		return true
	}
	return false
}

func (p FinishSwapPolicy) Valid() bool { return p == FinishSwapReferee || p == FinishSwapConsent }

func decided(s State) bool {
	need := s.SeriesMode.WinsNeeded()
	return s.TeamA.Wins >= need || s.TeamB.Wins >= need || len(s.SeriesHistory) >= s.SeriesMode.MaxGames()
}

func checkSetSides(s State, by Role) error {
	if s.SeriesOver {
		return ErrSeriesOver
	}
	if s.Status != StatusNotStarted {
		return ErrWrongPhase
	}
	if s.Sides.Assigned() {
		return ErrSidesAlreadySet
	}
	if by != RoleReferee && by != s.NextSideSelector {
		return ErrNotAuthorized
	}
	return nil
}

func applySetSides(s *State, act *DraftAction, c SetSides) error {
	if err := checkSetSides(*s, c.By); err != nil {
		return err
	}
	if !c.SideForA.Valid() {
		return ErrMalformedCommand
	}
	s.Sides = Sides{TeamA: c.SideForA, TeamB: c.SideForA.Opposite()}
	act.Side = c.SideForA
	return nil
}

func checkToggleReady(s State, by Role, side Side) error {
	if s.Status != StatusNotStarted {
		return ErrWrongPhase
	}
	if !s.Sides.Assigned() {
		return ErrSidesNotSet
	}
	return authorizeSide(s, by, side)
}

func applyToggleReady(s *State, act *DraftAction, c ToggleReady) error {
	if err := checkToggleReady(*s, c.By, c.Side); err != nil {
		return err
	}
	if c.Side == SideBlue {
		s.BlueReady = !s.BlueReady
	} else {
		s.RedReady = !s.RedReady
	}
	act.Side = c.Side
	return nil
}

func checkStartGame(s State, by Role) error {
	if by != RoleReferee {
		return ErrNotAuthorized
	}
	if s.SeriesOver {
		return ErrSeriesOver
	}
	if s.Status != StatusNotStarted {
		return ErrWrongPhase
	}
	if !s.Sides.Assigned() {
		return ErrSidesNotSet
	}
	if !s.BlueReady || !s.RedReady {
		return ErrNotReady
	}
	return nil
}

func applyStartGame(s *State, c StartGame, now time.Time) error {
	if err := checkStartGame(*s, c.By); err != nil {
		return err
	}
	s.Status = StatusRunning
	s.Phase = PhaseDraft
	s.Cursor = 0
	s.FearlessBans = FearlessExclusions(s.SeriesHistory, s.DraftMode)
	s.StepEndsAt = now.Add(s.Rules.StepDuration)
	return nil
}

func applyResetGame(s *State, c ResetGame) error {
	if c.By != RoleReferee {
		return ErrNotAuthorized
	}
	resetGame(s)
	return nil
}

func reported(history []GameResult, gameIdx int) bool {
	return slices.ContainsFunc(history, func(g GameResult) bool { return g.GameIdx == gameIdx })
}

func checkReportResult(s State, by Role, gameIdx int) error {
	if by != RoleReferee {
		return ErrNotAuthorized
	}
	if gameIdx == 0 {
		gameIdx = s.CurrentGameIdx
	}
	if reported(s.SeriesHistory, gameIdx) {
		return ErrAlreadyReported
	}
	if gameIdx != s.CurrentGameIdx {
		return errors.Wrapf(ErrMalformedCommand, "no game %d to report", gameIdx)
	}
	if s.Status != StatusFinished {
		return errors.Wrap(ErrWrongPhase, "game not finished")
	}
	return nil
}

func applyReportResult(s *State, act *DraftAction, c ReportResult) error {
	if err := checkReportResult(*s, c.By, c.GameIdx); err != nil {
		return err
	}
	if !c.Winner.Valid() {
		return ErrMalformedCommand
	}

	result := GameResult{
		GameIdx:      s.CurrentGameIdx,
		Winner:       c.Winner,
		BlueSideTeam: s.TeamOn(SideBlue),
		RedSideTeam:  s.TeamOn(SideRed),
		BlueBans:     slices.Clone(s.BlueBans),
		RedBans:      slices.Clone(s.RedBans),
		BluePicks:    slices.Clone(s.BluePicks),
		RedPicks:     slices.Clone(s.RedPicks),
	}
	s.team(c.Winner).Wins++
	s.SeriesHistory = append(s.SeriesHistory, result)
	act.Winner = c.Winner

	if decided(*s) {
		s.SeriesOver = true
		return nil
	}

	selector := s.NextSideSelector
	s.CurrentGameIdx++
	resetGame(s)
	s.Sides = Sides{}
	s.NextSideSelector = nextSideSelector(s.Rules.SideSelection, selector, result)
	return nil
}

func nextSideSelector(p SideSelectionPolicy, previous Role, last GameResult) Role {
	switch p {
	case SideSelectReferee:
		return RoleReferee
	case SideSelectAlternate:
		switch previous {
		case RoleTeamA:
			return RoleTeamB
		case RoleTeamB:
			return RoleTeamA
		}
		// the referee chose last time: the team that played red gets the next choice
		return Role(last.RedSideTeam)
	}
	return Role(last.Winner.Other())
}
