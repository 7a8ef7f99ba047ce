package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesThresholds(t *testing.T) {
	cases := []struct {
		mode       SeriesMode
		winsNeeded int
		maxGames   int
	}{
		{SeriesBO1, 1, 1},
		{SeriesBO2, 2, 2},
		{SeriesBO3, 2, 3},
		{SeriesBO5, 3, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.winsNeeded, c.mode.WinsNeeded(), c.mode)
		assert.Equal(t, c.maxGames, c.mode.MaxGames(), c.mode)
		assert.True(t, c.mode.Valid())
	}
	assert.False(t, SeriesMode("BO7").Valid())
}

func TestReportResultBO3(t *testing.T) {
	s := playGame(t, newSeries(DraftStandard, SeriesBO3), 0, TeamA)

	assert.Equal(t, 2, s.CurrentGameIdx)
	assert.Equal(t, 1, s.TeamA.Wins)
	assert.False(t, s.SeriesOver)
	assert.Equal(t, StatusNotStarted, s.Status)
	assert.False(t, s.Sides.Assigned())
	require.Len(t, s.SeriesHistory, 1)
	g := s.SeriesHistory[0]
	assert.Equal(t, 1, g.GameIdx)
	assert.Equal(t, TeamA, g.Winner)
	assert.Equal(t, TeamA, g.BlueSideTeam)
	assert.Len(t, g.BluePicks, 5)

	_, after, err := Apply(s, ReportResult{By: RoleReferee, Winner: TeamA, GameIdx: 1}, t0)
	require.ErrorIs(t, err, ErrAlreadyReported)
	assert.Equal(t, "already reported", err.Error())
	assert.Equal(t, 2, after.CurrentGameIdx)
	assert.Equal(t, 1, after.TeamA.Wins)
}

func TestReportResultRejections(t *testing.T) {
	running := startGame(t, newSeries(DraftStandard, SeriesBO3))
	finished := mustApply(t, draftAll(t, running, 0), FinishSwap{By: RoleReferee})

	cases := []struct {
		name  string
		state State
		cmd   ReportResult
		want  error
	}{
		{"team reports", finished, ReportResult{By: RoleTeamA, Winner: TeamA}, ErrNotAuthorized},
		{"still drafting", running, ReportResult{By: RoleReferee, Winner: TeamA}, ErrWrongPhase},
		{"future game", finished, ReportResult{By: RoleReferee, Winner: TeamA, GameIdx: 3}, ErrMalformedCommand},
		{"bad winner", finished, ReportResult{By: RoleReferee, Winner: "TEAM_C"}, ErrMalformedCommand},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := Apply(c.state, c.cmd, t0)
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestSeriesDecided(t *testing.T) {
	cases := []struct {
		name    string
		mode    SeriesMode
		winners []TeamID
	}{
		{"bo1", SeriesBO1, []TeamID{TeamB}},
		{"bo2 split", SeriesBO2, []TeamID{TeamA, TeamB}},
		{"bo3 sweep", SeriesBO3, []TeamID{TeamB, TeamB}},
		{"bo3 full", SeriesBO3, []TeamID{TeamA, TeamB, TeamA}},
		{"bo5", SeriesBO5, []TeamID{TeamA, TeamA, TeamB, TeamA}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newSeries(DraftStandard, c.mode)
			for i, w := range c.winners {
				require.False(t, s.SeriesOver, "game %d", i+1)
				s = playGame(t, s, 0, w)
			}
			assert.True(t, s.SeriesOver)
			assert.Len(t, s.SeriesHistory, len(c.winners))
			assert.Equal(t, len(c.winners), s.CurrentGameIdx)

			_, _, err := Apply(s, StartGame{By: RoleReferee}, t0)
			require.ErrorIs(t, err, ErrSeriesOver)
		})
	}
}

func TestSideSelectors(t *testing.T) {
	cases := []struct {
		name     string
		policy   SideSelectionPolicy
		winners  []TeamID
		expected Role
	}{
		{"loser chooses", SideSelectLoser, []TeamID{TeamA}, RoleTeamB},
		{"loser chooses again", SideSelectLoser, []TeamID{TeamB, TeamA}, RoleTeamB},
		{"referee", SideSelectReferee, []TeamID{TeamA}, RoleReferee},
		// the referee picked game one, so the team that played red picks next
		{"alternate from referee", SideSelectAlternate, []TeamID{TeamA}, RoleTeamB},
		{"alternate flips", SideSelectAlternate, []TeamID{TeamA, TeamB}, RoleTeamA},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newSeries(DraftStandard, SeriesBO5)
			s.Rules.SideSelection = c.policy
			for _, w := range c.winners {
				s = playGameAsSelector(t, s, w)
			}
			assert.Equal(t, c.expected, s.NextSideSelector)
		})
	}
}

// playGameAsSelector is playGame with sides set by whoever holds the choice.
func playGameAsSelector(t *testing.T, s State, winner TeamID) State {
	t.Helper()
	s = mustApply(t, s, SetSides{By: s.NextSideSelector, SideForA: SideBlue})
	s = mustApply(t, s, ToggleReady{By: RoleReferee, Side: SideBlue})
	s = mustApply(t, s, ToggleReady{By: RoleReferee, Side: SideRed})
	s = mustApply(t, s, StartGame{By: RoleReferee})
	s = draftAll(t, s, 0)
	s = mustApply(t, s, FinishSwap{By: RoleReferee})
	return mustApply(t, s, ReportResult{By: RoleReferee, Winner: winner})
}

func TestSetSides(t *testing.T) {
	s := NewState(SeriesConfig{TeamA: "A", TeamB: "B", SeriesMode: SeriesBO3, DraftMode: DraftStandard, FirstSideSelector: RoleTeamB}, DefaultRules())
	require.Equal(t, RoleTeamB, s.NextSideSelector)

	_, _, err := Apply(s, SetSides{By: RoleTeamA, SideForA: SideBlue}, t0)
	require.ErrorIs(t, err, ErrNotAuthorized)

	_, _, err = Apply(s, SetSides{By: RoleTeamB, SideForA: "PURPLE"}, t0)
	require.ErrorIs(t, err, ErrMalformedCommand)

	act, s, err := Apply(s, SetSides{By: RoleTeamB, SideForA: SideRed}, t0)
	require.NoError(t, err)
	assert.Equal(t, SideRed, act.Side)
	assert.Equal(t, Sides{TeamA: SideRed, TeamB: SideBlue}, s.Sides)
	assert.Equal(t, TeamB, s.TeamOn(SideBlue))

	_, _, err = Apply(s, SetSides{By: RoleReferee, SideForA: SideBlue}, t0)
	require.ErrorIs(t, err, ErrSidesAlreadySet)
}

func TestToggleReady(t *testing.T) {
	s := newSeries(DraftStandard, SeriesBO1)
	_, _, err := Apply(s, ToggleReady{By: RoleTeamA, Side: SideBlue}, t0)
	require.ErrorIs(t, err, ErrSidesNotSet)

	s = mustApply(t, s, SetSides{By: RoleReferee, SideForA: SideBlue})
	_, _, err = Apply(s, ToggleReady{By: RoleTeamA, Side: SideRed}, t0)
	require.ErrorIs(t, err, ErrNotAuthorized)

	s = mustApply(t, s, ToggleReady{By: RoleTeamA, Side: SideBlue})
	assert.True(t, s.BlueReady)
	s = mustApply(t, s, ToggleReady{By: RoleTeamA, Side: SideBlue})
	assert.False(t, s.BlueReady)
}

func TestResetGameKeepsSeries(t *testing.T) {
	s := playGame(t, newSeries(DraftStandard, SeriesBO3), 0, TeamB)
	s = startGame(t, s)
	s = mustApply(t, s, Ban{By: RoleTeamA, CharacterID: "zed"})

	_, _, err := Apply(s, ResetGame{By: RoleTeamA}, t0)
	require.ErrorIs(t, err, ErrNotAuthorized)

	s = mustApply(t, s, ResetGame{By: RoleReferee})
	assert.Equal(t, StatusNotStarted, s.Status)
	assert.Equal(t, 0, s.Cursor)
	assert.Empty(t, s.BlueBans)
	assert.False(t, s.BlueReady)
	assert.True(t, s.Sides.Assigned())
	assert.Equal(t, 2, s.CurrentGameIdx)
	assert.Equal(t, 1, s.TeamB.Wins)
	assert.Len(t, s.SeriesHistory, 1)
}
