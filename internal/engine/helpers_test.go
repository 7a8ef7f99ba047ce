package engine

import (
	"testing"
	"time"

	"github.com/DoyleJ11/bp-draft-server/internal/catalog"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

func mustApply(t *testing.T, s State, cmd Command) State {
	t.Helper()
	_, next, err := Apply(s, cmd, t0)
	require.NoError(t, err, "apply %T", cmd)
	return next
}

func newSeries(mode DraftMode, series SeriesMode) State {
	return NewState(SeriesConfig{
		MatchTitle: "Finals",
		TeamA:      "T1",
		TeamB:      "GEN",
		SeriesMode: series,
		DraftMode:  mode,
	}, DefaultRules())
}

// startGame assigns TEAM_A to blue, readies both sides and starts the current game.
func startGame(t *testing.T, s State) State {
	t.Helper()
	s = mustApply(t, s, SetSides{By: RoleReferee, SideForA: SideBlue})
	s = mustApply(t, s, ToggleReady{By: RoleTeamA, Side: SideBlue})
	s = mustApply(t, s, ToggleReady{By: RoleTeamB, Side: SideRed})
	return mustApply(t, s, StartGame{By: RoleReferee})
}

func roleFor(s State, side Side) Role {
	return Role(s.TeamOn(side))
}

func selection(s State, id string) Command {
	step, _ := CurrentStep(s.Cursor)
	by := roleFor(s, step.Side)
	if step.Action == ActionBan {
		return Ban{By: by, CharacterID: id}
	}
	return Pick{By: by, CharacterID: id}
}

// draftAll plays all 20 steps with distinct characters starting at catalog offset.
func draftAll(t *testing.T, s State, offset int) State {
	t.Helper()
	champs := catalog.Champions()
	for i := 0; i < StepCount; i++ {
		s = mustApply(t, s, selection(s, champs[offset+i].ID))
	}
	return s
}

// playGame runs a whole game from NOT_STARTED to a reported result.
func playGame(t *testing.T, s State, offset int, winner TeamID) State {
	t.Helper()
	s = startGame(t, s)
	s = draftAll(t, s, offset)
	s = mustApply(t, s, FinishSwap{By: RoleReferee})
	return mustApply(t, s, ReportResult{By: RoleReferee, Winner: winner})
}
