package ws

import (
	"testing"

	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/DoyleJ11/bp-draft-server/pkg/types"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) (engine.Command, error) {
	t.Helper()
	var m types.ClientMessage
	require.NoError(t, sonic.UnmarshalString(raw, &m))
	return toEngineCommand(m)
}

func TestToEngineCommand(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want engine.Command
	}{
		{"ban", `{"type":"ACTION_SUBMIT","payload":{"type":"BAN","heroId":"aatrox","actorRole":"TEAM_A"}}`,
			engine.Ban{By: engine.RoleTeamA, CharacterID: "aatrox"}},
		{"pick", `{"type":"ACTION_SUBMIT","payload":{"type":"PICK","heroId":"special_random","actorRole":"TEAM_B"}}`,
			engine.Pick{By: engine.RoleTeamB, CharacterID: "special_random"}},
		{"direct swap", `{"type":"ACTION_SUBMIT","payload":{"type":"SWAP","side":"RED","swapData":{"fromIndex":0,"toIndex":3},"actorRole":"TEAM_B"}}`,
			engine.Swap{By: engine.RoleTeamB, Side: engine.SideRed, From: 0, To: 3}},
		{"swap click", `{"type":"ACTION_SUBMIT","payload":{"type":"SWAP","side":"BLUE","index":2,"actorRole":"TEAM_A"}}`,
			engine.SwapClick{By: engine.RoleTeamA, Side: engine.SideBlue, Index: 2}},
		{"finish swap", `{"type":"ACTION_SUBMIT","payload":{"type":"FINISH_SWAP","actorRole":"REFEREE"}}`,
			engine.FinishSwap{By: engine.RoleReferee}},
		{"start", `{"type":"ACTION_SUBMIT","payload":{"type":"START_GAME","actorRole":"REFEREE"}}`,
			engine.StartGame{By: engine.RoleReferee}},
		{"reset", `{"type":"ACTION_SUBMIT","payload":{"type":"RESET_GAME","actorRole":"REFEREE"}}`,
			engine.ResetGame{By: engine.RoleReferee}},
		{"pause", `{"type":"ACTION_SUBMIT","payload":{"type":"PAUSE_GAME","reason":"tech","actorRole":"REFEREE"}}`,
			engine.PauseGame{By: engine.RoleReferee, Reason: "tech"}},
		{"resume", `{"type":"ACTION_SUBMIT","payload":{"type":"RESUME_GAME","actorRole":"REFEREE"}}`,
			engine.ResumeGame{By: engine.RoleReferee}},
		{"set sides", `{"type":"ACTION_SUBMIT","payload":{"type":"SET_SIDES","sideForA":"RED","actorRole":"TEAM_A"}}`,
			engine.SetSides{By: engine.RoleTeamA, SideForA: engine.SideRed}},
		{"report", `{"type":"ACTION_SUBMIT","payload":{"type":"REPORT_RESULT","winner":"TEAM_B","gameIdx":1,"actorRole":"REFEREE"}}`,
			engine.ReportResult{By: engine.RoleReferee, Winner: engine.TeamB, GameIdx: 1}},
		{"ready as action", `{"type":"ACTION_SUBMIT","payload":{"type":"TOGGLE_READY","side":"BLUE","actorRole":"TEAM_A"}}`,
			engine.ToggleReady{By: engine.RoleTeamA, Side: engine.SideBlue}},
		{"ready message", `{"type":"TOGGLE_READY","payload":{"side":"RED","actorRole":"TEAM_B"}}`,
			engine.ToggleReady{By: engine.RoleTeamB, Side: engine.SideRed}},
		{"spectator passes decoding", `{"type":"ACTION_SUBMIT","payload":{"type":"START_GAME","actorRole":"SPECTATOR"}}`,
			engine.StartGame{By: engine.RoleSpectator}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := decode(t, c.raw)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestToEngineCommandRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"system role", `{"type":"ACTION_SUBMIT","payload":{"type":"BAN","heroId":"ahri","actorRole":"SYSTEM"}}`, engine.ErrMalformedCommand},
		{"no role", `{"type":"ACTION_SUBMIT","payload":{"type":"BAN","heroId":"ahri"}}`, engine.ErrMalformedCommand},
		{"unknown frame", `{"type":"HELLO","payload":{"actorRole":"TEAM_A"}}`, engine.ErrMalformedCommand},
		{"ban without hero", `{"type":"ACTION_SUBMIT","payload":{"type":"BAN","actorRole":"TEAM_A"}}`, engine.ErrMalformedCommand},
		{"swap without indices", `{"type":"ACTION_SUBMIT","payload":{"type":"SWAP","side":"RED","actorRole":"TEAM_B"}}`, engine.ErrMalformedCommand},
		{"swap half indices", `{"type":"ACTION_SUBMIT","payload":{"type":"SWAP","side":"RED","swapData":{"fromIndex":1},"actorRole":"TEAM_B"}}`, engine.ErrMalformedCommand},
		{"index out of range", `{"type":"ACTION_SUBMIT","payload":{"type":"SWAP","side":"RED","index":7,"actorRole":"TEAM_B"}}`, engine.ErrMalformedCommand},
		{"bad side", `{"type":"ACTION_SUBMIT","payload":{"type":"TOGGLE_READY","side":"GREEN","actorRole":"TEAM_B"}}`, engine.ErrMalformedCommand},
		{"bad winner", `{"type":"ACTION_SUBMIT","payload":{"type":"REPORT_RESULT","winner":"BLUE","actorRole":"REFEREE"}}`, engine.ErrMalformedCommand},
		{"unknown action", `{"type":"ACTION_SUBMIT","payload":{"type":"HOVER","actorRole":"TEAM_A"}}`, engine.ErrUnsupportedCommand},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := decode(t, c.raw)
			require.ErrorIs(t, err, c.want)
		})
	}
}
