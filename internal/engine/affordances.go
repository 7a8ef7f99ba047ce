package engine

import "time"

// Affordances is a read-only projection of what role may do right now, built from the same
// checks Apply runs.
type Affordances struct {
	Role           Role       `json:"role"`
	Side           Side       `json:"side,omitempty"`
	Step           *DraftStep `json:"step,omitempty"`
	RemainingMs    int64      `json:"remainingMs"`
	CanSelect      bool       `json:"canSelect"`
	CanSwap        bool       `json:"canSwap"`
	CanFinishSwap  bool       `json:"canFinishSwap"`
	CanSetSides    bool       `json:"canSetSides"`
	CanToggleReady bool       `json:"canToggleReady"`
	CanStart       bool       `json:"canStart"`
	CanPause       bool       `json:"canPause"`
	CanResume      bool       `json:"canResume"`
	CanReport      bool       `json:"canReport"`
	CanReset       bool       `json:"canReset"`
}

func Project(s State, role Role, now time.Time) Affordances {
	a := Affordances{
		Role:        role,
		RemainingMs: Remaining(s, now).Milliseconds(),
	}
	side, hasSide := s.SideOf(role)
	if hasSide {
		a.Side = side
	}
	if role != RoleTeamA && role != RoleTeamB && role != RoleReferee {
		return a
	}

	if step, err := checkDraftActive(s); err == nil {
		a.Step = &step
		a.CanSelect = authorizeTurn(s, step, role) == nil
	}
	if checkSwapWindow(s) == nil {
		a.CanSwap = role == RoleReferee || hasSide
		_, err := authorizeFinishSwap(s, role)
		a.CanFinishSwap = err == nil
	}
	a.CanSetSides = checkSetSides(s, role) == nil
	if role == RoleReferee {
		a.CanToggleReady = checkToggleReady(s, role, SideBlue) == nil
	} else if hasSide {
		a.CanToggleReady = checkToggleReady(s, role, side) == nil
	}
	a.CanStart = checkStartGame(s, role) == nil
	a.CanPause = role == RoleReferee && s.Status == StatusRunning && !s.Paused
	a.CanResume = role == RoleReferee && s.Paused
	a.CanReport = checkReportResult(s, role, 0) == nil
	a.CanReset = role == RoleReferee
	return a
}
