package ws

import (
	"github.com/DoyleJ11/bp-draft-server/internal/engine"
	"github.com/DoyleJ11/bp-draft-server/pkg/types"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// toEngineCommand turns a client frame into a typed command. Shape problems are
// ErrMalformedCommand; legality is left to engine.Apply.
func toEngineCommand(m types.ClientMessage) (engine.Command, error) {
	if err := validate.Struct(m); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			return nil, errors.Wrapf(engine.ErrMalformedCommand, "bad %s", fields[0].Field())
		}
		return nil, errors.Wrap(engine.ErrMalformedCommand, err.Error())
	}

	p := m.Payload
	by, ok := engine.ParseRole(p.ActorRole)
	if !ok {
		return nil, errors.Wrap(engine.ErrMalformedCommand, "bad actorRole")
	}

	kind := engine.CommandType(p.Type)
	if m.Type == types.MsgToggleReady {
		kind = engine.CmdToggleReady
	}

	switch kind {
	case engine.CmdBan:
		if p.HeroID == "" {
			return nil, missing("heroId")
		}
		return engine.Ban{By: by, CharacterID: p.HeroID}, nil
	case engine.CmdPick:
		if p.HeroID == "" {
			return nil, missing("heroId")
		}
		return engine.Pick{By: by, CharacterID: p.HeroID}, nil
	case engine.CmdSwap:
		if p.Side == "" {
			return nil, missing("side")
		}
		side := engine.Side(p.Side)
		switch {
		case p.SwapData != nil:
			return engine.Swap{By: by, Side: side, From: *p.SwapData.FromIndex, To: *p.SwapData.ToIndex}, nil
		case p.Index != nil:
			return engine.SwapClick{By: by, Side: side, Index: *p.Index}, nil
		}
		return nil, missing("swapData")
	case engine.CmdFinishSwap:
		return engine.FinishSwap{By: by}, nil
	case engine.CmdStartGame:
		return engine.StartGame{By: by}, nil
	case engine.CmdResetGame:
		return engine.ResetGame{By: by}, nil
	case engine.CmdToggleReady:
		if p.Side == "" {
			return nil, missing("side")
		}
		return engine.ToggleReady{By: by, Side: engine.Side(p.Side)}, nil
	case engine.CmdPauseGame:
		return engine.PauseGame{By: by, Reason: p.Reason}, nil
	case engine.CmdResumeGame:
		return engine.ResumeGame{By: by}, nil
	case engine.CmdSetSides:
		if p.SideForA == "" {
			return nil, missing("sideForA")
		}
		return engine.SetSides{By: by, SideForA: engine.Side(p.SideForA)}, nil
	case engine.CmdReportResult:
		if p.Winner == "" {
			return nil, missing("winner")
		}
		return engine.ReportResult{By: by, Winner: engine.TeamID(p.Winner), GameIdx: p.GameIdx}, nil
	}
	return nil, errors.Wrapf(engine.ErrUnsupportedCommand, "%q", p.Type)
}

func missing(field string) error {
	return errors.Wrapf(engine.ErrMalformedCommand, "missing %s", field)
}
