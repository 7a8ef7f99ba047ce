// Package types holds the JSON shapes exchanged with draft clients.
package types

// Client -> Server
//
// ACTION_SUBMIT:
//   payload.type: BAN | PICK | SWAP | FINISH_SWAP | START_GAME | RESET_GAME | TOGGLE_READY |
//                 PAUSE_GAME | RESUME_GAME | SET_SIDES | REPORT_RESULT
//   payload.actorRole: TEAM_A | TEAM_B | REFEREE | SPECTATOR
//   payload.heroId        BAN, PICK
//   payload.side          SWAP, TOGGLE_READY
//   payload.swapData      SWAP (direct form) or payload.index (two-click form)
//   payload.sideForA      SET_SIDES
//   payload.winner        REPORT_RESULT, optional payload.gameIdx
//   payload.reason        PAUSE_GAME, optional
//
// TOGGLE_READY:
//   payload.side, payload.actorRole

// Server -> Client
//
// STATE_SYNC:      payload is the full room state
// ACTION_REJECTED: payload.reason

const (
	MsgActionSubmit   = "ACTION_SUBMIT"
	MsgToggleReady    = "TOGGLE_READY"
	MsgStateSync      = "STATE_SYNC"
	MsgActionRejected = "ACTION_REJECTED"
)

type ClientMessage struct {
	Type    string        `json:"type" validate:"required,oneof=ACTION_SUBMIT TOGGLE_READY"`
	Payload ActionPayload `json:"payload"`
}

type ActionPayload struct {
	Type      string    `json:"type,omitempty"`
	ActorRole string    `json:"actorRole" validate:"required,oneof=TEAM_A TEAM_B REFEREE SPECTATOR"`
	HeroID    string    `json:"heroId,omitempty" validate:"omitempty,max=64"`
	Side      string    `json:"side,omitempty" validate:"omitempty,oneof=BLUE RED"`
	SwapData  *SwapData `json:"swapData,omitempty"`
	Index     *int      `json:"index,omitempty" validate:"omitempty,min=0,max=4"`
	SideForA  string    `json:"sideForA,omitempty" validate:"omitempty,oneof=BLUE RED"`
	Winner    string    `json:"winner,omitempty" validate:"omitempty,oneof=TEAM_A TEAM_B"`
	GameIdx   int       `json:"gameIdx,omitempty" validate:"min=0"`
	Reason    string    `json:"reason,omitempty" validate:"max=200"`
}

type SwapData struct {
	FromIndex *int `json:"fromIndex" validate:"required,min=0,max=4"`
	ToIndex   *int `json:"toIndex" validate:"required,min=0,max=4"`
}

type ServerMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type RejectedPayload struct {
	Reason string `json:"reason"`
}
