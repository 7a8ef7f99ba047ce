package types

import "github.com/DoyleJ11/bp-draft-server/internal/engine"

// CreateRoomRequest is the body of POST /rooms.
type CreateRoomRequest struct {
	MatchTitle        string `json:"matchTitle" validate:"max=100"`
	TeamA             string `json:"teamA" validate:"required,max=50"`
	TeamB             string `json:"teamB" validate:"required,max=50"`
	SeriesMode        string `json:"seriesMode" validate:"required,oneof=BO1 BO2 BO3 BO5"`
	DraftMode         string `json:"draftMode" validate:"required,oneof=STANDARD FEARLESS"`
	FirstSideSelector string `json:"firstSideSelector,omitempty" validate:"omitempty,oneof=TEAM_A TEAM_B REFEREE"`
}

type CreateRoomResponse struct {
	RoomID string `json:"roomId"`
}

// RoomView is GET /rooms/{id}: the state plus what the asking role may do.
type RoomView struct {
	State       engine.State       `json:"state"`
	Affordances engine.Affordances `json:"affordances"`
}

type ActionsResponse struct {
	Actions []engine.DraftAction `json:"actions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
