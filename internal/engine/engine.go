package engine

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Rejection reasons. The message of each is what the submitting client sees.
var (
	ErrGameNotActive      = errors.New("game not active")
	ErrWrongTurn          = errors.New("not your turn")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidSelection   = errors.New("invalid selection for step type")
	ErrAlreadyTaken       = errors.New("already taken")
	ErrFearlessBanned     = errors.New("fearless-banned")
	ErrNoLegalCharacter   = errors.New("no legal character left")
	ErrWrongPhase         = errors.New("wrong phase")
	ErrAlreadyPaused      = errors.New("game already paused")
	ErrNotPaused          = errors.New("game not paused")
	ErrSidesNotSet        = errors.New("sides not assigned")
	ErrSidesAlreadySet    = errors.New("sides already set")
	ErrNotReady           = errors.New("both sides must be ready")
	ErrAlreadyReported    = errors.New("already reported")
	ErrSeriesOver         = errors.New("series already decided")
	ErrInvalidSwap        = errors.New("invalid swap")
	ErrCrossSideSwap      = errors.New("cross-side swap")
	ErrMalformedCommand   = errors.New("malformed command")
	ErrUnsupportedCommand = errors.New("unsupported command")
)

// errPaused keeps errors.Is(err, ErrGameNotActive) true while telling the client why.
var errPaused = errors.Wrap(ErrGameNotActive, "game paused")

type Side string

const (
	SideBlue Side = "BLUE"
	SideRed  Side = "RED"
)

func (s Side) Valid() bool { return s == SideBlue || s == SideRed }

func (s Side) Opposite() Side {
	if s == SideBlue {
		return SideRed
	}
	return SideBlue
}

// Action is the kind of a draft step.
type Action string

const (
	ActionBan  Action = "BAN"
	ActionPick Action = "PICK"
)

type TeamID string

const (
	TeamA TeamID = "TEAM_A"
	TeamB TeamID = "TEAM_B"
)

func (t TeamID) Valid() bool { return t == TeamA || t == TeamB }

func (t TeamID) Other() TeamID {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// Role is who submitted an action. RoleSystem is reserved for timer expiry.
type Role string

const (
	RoleTeamA     Role = "TEAM_A"
	RoleTeamB     Role = "TEAM_B"
	RoleReferee   Role = "REFEREE"
	RoleSpectator Role = "SPECTATOR"
	RoleSystem    Role = "SYSTEM"
)

// ParseRole accepts the roles a client may claim. SYSTEM is never accepted from the wire.
func ParseRole(v string) (Role, bool) {
	switch r := Role(v); r {
	case RoleTeamA, RoleTeamB, RoleReferee, RoleSpectator:
		return r, true
	}
	return "", false
}

func (r Role) team() (TeamID, bool) {
	switch r {
	case RoleTeamA:
		return TeamA, true
	case RoleTeamB:
		return TeamB, true
	}
	return "", false
}

func (r Role) privileged() bool { return r == RoleReferee || r == RoleSystem }

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusRunning    Status = "RUNNING"
	StatusFinished   Status = "FINISHED"
)

type Phase string

const (
	PhaseDraft    Phase = "DRAFT"
	PhaseSwap     Phase = "SWAP"
	PhaseFinished Phase = "FINISHED"
)

type SeriesMode string

const (
	SeriesBO1 SeriesMode = "BO1"
	SeriesBO2 SeriesMode = "BO2"
	SeriesBO3 SeriesMode = "BO3"
	SeriesBO5 SeriesMode = "BO5"
)

type DraftMode string

const (
	DraftStandard DraftMode = "STANDARD"
	DraftFearless DraftMode = "FEARLESS"
)

type SideSelectionPolicy string

const (
	// SideSelectLoser lets the loser of the previous game choose.
	SideSelectLoser SideSelectionPolicy = "LOSER"
	// SideSelectAlternate hands the choice to the team that did not choose last time.
	SideSelectAlternate SideSelectionPolicy = "ALTERNATE"
	SideSelectReferee   SideSelectionPolicy = "REFEREE"
)

type FinishSwapPolicy string

const (
	FinishSwapReferee FinishSwapPolicy = "REFEREE"
	// FinishSwapConsent also ends the window once both sides have confirmed.
	FinishSwapConsent FinishSwapPolicy = "CONSENT"
)

// Rules are per-deployment settings carried with every room.
type Rules struct {
	StepDuration  time.Duration       `json:"stepDuration"`
	SwapDuration  time.Duration       `json:"swapDuration"`
	SideSelection SideSelectionPolicy `json:"sideSelection"`
	FinishSwap    FinishSwapPolicy    `json:"finishSwap"`
}

func DefaultRules() Rules {
	return Rules{
		StepDuration:  30 * time.Second,
		SideSelection: SideSelectLoser,
		FinishSwap:    FinishSwapReferee,
	}
}

type Team struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// Sides holds the side each team occupies in the current game. Empty means unassigned.
type Sides struct {
	TeamA Side `json:"TEAM_A,omitempty"`
	TeamB Side `json:"TEAM_B,omitempty"`
}

func (s Sides) Assigned() bool { return s.TeamA != "" && s.TeamB != "" }

// SwapSelection is the first click of a two-click swap on one side's picks.
type SwapSelection struct {
	Index int  `json:"index"`
	By    Role `json:"by"`
}

type SwapIndices struct {
	From int `json:"fromIndex"`
	To   int `json:"toIndex"`
}

// GameResult is the frozen record of one completed game.
type GameResult struct {
	GameIdx      int      `json:"gameIdx"`
	Winner       TeamID   `json:"winner"`
	BlueSideTeam TeamID   `json:"blueSideTeam"`
	RedSideTeam  TeamID   `json:"redSideTeam"`
	BlueBans     []string `json:"blueBans"`
	RedBans      []string `json:"redBans"`
	BluePicks    []string `json:"bluePicks"`
	RedPicks     []string `json:"redPicks"`
}

// State is the whole draft room. Apply never mutates the State it is given.
type State struct {
	LastActionSeq int64 `json:"lastActionSeq"`

	MatchTitle       string       `json:"matchTitle"`
	SeriesMode       SeriesMode   `json:"seriesMode"`
	DraftMode        DraftMode    `json:"draftMode"`
	TeamA            Team         `json:"teamA"`
	TeamB            Team         `json:"teamB"`
	CurrentGameIdx   int          `json:"currentGameIdx"`
	Sides            Sides        `json:"sides"`
	NextSideSelector Role         `json:"nextSideSelector"`
	SeriesHistory    []GameResult `json:"seriesHistory"`
	SeriesOver       bool         `json:"seriesOver"`

	Status       Status         `json:"status"`
	Phase        Phase          `json:"phase"`
	Cursor       int            `json:"stepIndex"`
	BlueBans     []string       `json:"blueBans"`
	RedBans      []string       `json:"redBans"`
	BluePicks    []string       `json:"bluePicks"`
	RedPicks     []string       `json:"redPicks"`
	FearlessBans []string       `json:"fearlessBans"`
	StepEndsAt   time.Time      `json:"stepEndsAt,omitzero"`
	BlueReady    bool           `json:"blueReady"`
	RedReady     bool           `json:"redReady"`
	Paused       bool           `json:"paused"`
	PauseReason  string         `json:"pauseReason,omitempty"`
	PausedAt     *time.Time     `json:"pausedAt,omitempty"`
	BlueSwapSel  *SwapSelection `json:"blueSwapSelection,omitempty"`
	RedSwapSel   *SwapSelection `json:"redSwapSelection,omitempty"`
	BlueSwapDone bool           `json:"blueSwapDone"`
	RedSwapDone  bool           `json:"redSwapDone"`

	Rules Rules `json:"rules"`
}

// DraftAction is one accepted state transition as recorded in the action log.
type DraftAction struct {
	Seq         int64        `json:"seq"`
	GameIdx     int          `json:"gameIdx"`
	StepIndex   int          `json:"stepIndex"`
	Type        CommandType  `json:"type"`
	Side        Side         `json:"side,omitempty"`
	CharacterID string       `json:"heroId,omitempty"`
	Swap        *SwapIndices `json:"swapData,omitempty"`
	SwapIndex   *int         `json:"swapIndex,omitempty"`
	Winner      TeamID       `json:"winner,omitempty"`
	Reason      string       `json:"reason,omitempty"`
	ActorRole   Role         `json:"actorRole"`
	At          time.Time    `json:"at"`
}

// Apply validates cmd against s and, if legal, returns the log entry and the next state.
// On error the returned state is s, untouched.
func Apply(s State, cmd Command, now time.Time) (DraftAction, State, error) {
	if cmd == nil {
		return DraftAction{}, s, ErrMalformedCommand
	}
	switch cmd.Actor() {
	case RoleTeamA, RoleTeamB, RoleReferee, RoleSystem:
	default:
		return DraftAction{}, s, ErrNotAuthorized
	}

	next := s.Clone()
	act := DraftAction{
		GameIdx:   s.CurrentGameIdx,
		StepIndex: s.Cursor,
		Type:      cmd.Type(),
		ActorRole: cmd.Actor(),
		At:        now,
	}

	var err error
	switch c := cmd.(type) {
	case Ban:
		err = applySelection(&next, &act, ActionBan, c.By, c.CharacterID, now)
	case Pick:
		err = applySelection(&next, &act, ActionPick, c.By, c.CharacterID, now)
	case Swap:
		err = applySwap(&next, &act, c)
	case SwapClick:
		err = applySwapClick(&next, &act, c)
	case FinishSwap:
		err = applyFinishSwap(&next, &act, c)
	case StartGame:
		err = applyStartGame(&next, c, now)
	case ResetGame:
		err = applyResetGame(&next, c)
	case ToggleReady:
		err = applyToggleReady(&next, &act, c)
	case PauseGame:
		err = applyPause(&next, &act, c, now)
	case ResumeGame:
		err = applyResume(&next, c, now)
	case SetSides:
		err = applySetSides(&next, &act, c)
	case ReportResult:
		err = applyReportResult(&next, &act, c)
	default:
		err = ErrUnsupportedCommand
	}
	if err != nil {
		return DraftAction{}, s, err
	}

	next.LastActionSeq++
	act.Seq = next.LastActionSeq
	return act, next, nil
}
