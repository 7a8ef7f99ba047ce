package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/DoyleJ11/bp-draft-server/internal/catalog"
)

// SeriesConfig is what a room is created from.
type SeriesConfig struct {
	MatchTitle        string
	TeamA             string
	TeamB             string
	SeriesMode        SeriesMode
	DraftMode         DraftMode
	FirstSideSelector Role
}

func NewState(cfg SeriesConfig, rules Rules) State {
	selector := cfg.FirstSideSelector
	if selector != RoleTeamA && selector != RoleTeamB {
		selector = RoleReferee
	}
	s := State{
		MatchTitle:       cfg.MatchTitle,
		SeriesMode:       cfg.SeriesMode,
		DraftMode:        cfg.DraftMode,
		TeamA:            Team{Name: cfg.TeamA},
		TeamB:            Team{Name: cfg.TeamB},
		CurrentGameIdx:   1,
		NextSideSelector: selector,
		SeriesHistory:    []GameResult{},
		Rules:            rules,
	}
	resetGame(&s)
	return s
}

func NewEmptyState() State {
	return NewState(SeriesConfig{TeamA: "Team A", TeamB: "Team B", SeriesMode: SeriesBO1, DraftMode: DraftStandard}, DefaultRules())
}

// Clone deep-copies every slice and pointer so the copy can be mutated freely.
func (s State) Clone() State {
	c := s
	c.BlueBans = cloneList(s.BlueBans)
	c.RedBans = cloneList(s.RedBans)
	c.BluePicks = cloneList(s.BluePicks)
	c.RedPicks = cloneList(s.RedPicks)
	c.FearlessBans = cloneList(s.FearlessBans)
	c.SeriesHistory = slices.Clone(s.SeriesHistory)
	if c.SeriesHistory == nil {
		c.SeriesHistory = []GameResult{}
	}
	if s.PausedAt != nil {
		t := *s.PausedAt
		c.PausedAt = &t
	}
	c.BlueSwapSel = cloneSel(s.BlueSwapSel)
	c.RedSwapSel = cloneSel(s.RedSwapSel)
	return c
}

func cloneSel(sel *SwapSelection) *SwapSelection {
	if sel == nil {
		return nil
	}
	c := *sel
	return &c
}

func cloneList(l []string) []string {
	out := make([]string, len(l), max(len(l), 5))
	copy(out, l)
	return out
}

// resetGame clears every per-game field. Sides, history and wins are left alone.
func resetGame(s *State) {
	s.Status = StatusNotStarted
	s.Phase = PhaseDraft
	s.Cursor = 0
	s.BlueBans = []string{}
	s.RedBans = []string{}
	s.BluePicks = []string{}
	s.RedPicks = []string{}
	s.FearlessBans = []string{}
	s.StepEndsAt = zeroTime
	s.BlueReady = false
	s.RedReady = false
	s.Paused = false
	s.PauseReason = ""
	s.PausedAt = nil
	s.BlueSwapSel = nil
	s.RedSwapSel = nil
	s.BlueSwapDone = false
	s.RedSwapDone = false
}

// SideOf reports which side role currently plays, if any.
func (s State) SideOf(role Role) (Side, bool) {
	team, ok := role.team()
	if !ok {
		return "", false
	}
	side := s.sideOfTeam(team)
	return side, side != ""
}

func (s State) sideOfTeam(t TeamID) Side {
	if t == TeamA {
		return s.Sides.TeamA
	}
	return s.Sides.TeamB
}

// TeamOn returns the team occupying side, or "" when sides are unassigned.
func (s State) TeamOn(side Side) TeamID {
	switch side {
	case s.Sides.TeamA:
		return TeamA
	case s.Sides.TeamB:
		return TeamB
	}
	return ""
}

func (s *State) team(t TeamID) *Team {
	if t == TeamA {
		return &s.TeamA
	}
	return &s.TeamB
}

func (s *State) list(side Side, a Action) *[]string {
	switch {
	case side == SideBlue && a == ActionBan:
		return &s.BlueBans
	case side == SideRed && a == ActionBan:
		return &s.RedBans
	case side == SideBlue:
		return &s.BluePicks
	default:
		return &s.RedPicks
	}
}

func (s *State) picks(side Side) *[]string { return s.list(side, ActionPick) }

// used reports whether id sits in any of the current game's four lists.
func (s State) used(id string) bool {
	return slices.Contains(s.BlueBans, id) || slices.Contains(s.RedBans, id) ||
		slices.Contains(s.BluePicks, id) || slices.Contains(s.RedPicks, id)
}

func (s State) fearlessExcluded(id string) bool {
	return s.DraftMode == DraftFearless && slices.Contains(s.FearlessBans, id)
}

var chooseRandomLegal = func(s State) (string, bool) {
	var pool []string
	for _, c := range catalog.Champions() {
		if !s.used(c.ID) && !s.fearlessExcluded(c.ID) {
			pool = append(pool, c.ID)
		}
	}
	if len(pool) == 0 {
		return "", false
	}
	return pool[rand.IntN(len(pool))], true
}
