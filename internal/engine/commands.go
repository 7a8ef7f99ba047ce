package engine

type CommandType string

const (
	CmdBan          CommandType = "BAN"
	CmdPick         CommandType = "PICK"
	CmdSwap         CommandType = "SWAP"
	CmdFinishSwap   CommandType = "FINISH_SWAP"
	CmdStartGame    CommandType = "START_GAME"
	CmdResetGame    CommandType = "RESET_GAME"
	CmdToggleReady  CommandType = "TOGGLE_READY"
	CmdPauseGame    CommandType = "PAUSE_GAME"
	CmdResumeGame   CommandType = "RESUME_GAME"
	CmdSetSides     CommandType = "SET_SIDES"
	CmdReportResult CommandType = "REPORT_RESULT"
)

/*
	Ban / Pick     -> selection validator, cursor +1, deadline reset (SWAP at cursor 20)
	Swap           -> exchange two picks of one side during SWAP
	SwapClick      -> two-click variant of Swap, pending selection lives in State
	FinishSwap     -> SWAP -> FINISHED
	StartGame      -> NOT_STARTED -> RUNNING, first deadline, fearless set
	ResetGame      -> per-game fields back to NOT_STARTED
	ToggleReady    -> flips a side's ready flag
	PauseGame      -> freezes the deadline
	ResumeGame     -> deadline = now + frozen remaining
	SetSides       -> once per game, by the side selector or referee
	ReportResult   -> once per game index, may advance the series
*/

// Command is a typed client intent. Each variant carries exactly the fields its kind needs.
type Command interface {
	Type() CommandType
	Actor() Role
}

type Ban struct {
	By          Role
	CharacterID string
}

type Pick struct {
	By          Role
	CharacterID string
}

type Swap struct {
	By       Role
	Side     Side
	From, To int
}

type SwapClick struct {
	By    Role
	Side  Side
	Index int
}

type FinishSwap struct{ By Role }

type StartGame struct{ By Role }

type ResetGame struct{ By Role }

type ToggleReady struct {
	By   Role
	Side Side
}

type PauseGame struct {
	By     Role
	Reason string
}

type ResumeGame struct{ By Role }

type SetSides struct {
	By       Role
	SideForA Side
}

// ReportResult targets GameIdx, or the current game when GameIdx is zero.
type ReportResult struct {
	By      Role
	Winner  TeamID
	GameIdx int
}

func (Ban) Type() CommandType          { return CmdBan }
func (Pick) Type() CommandType         { return CmdPick }
func (Swap) Type() CommandType         { return CmdSwap }
func (SwapClick) Type() CommandType    { return CmdSwap }
func (FinishSwap) Type() CommandType   { return CmdFinishSwap }
func (StartGame) Type() CommandType    { return CmdStartGame }
func (ResetGame) Type() CommandType    { return CmdResetGame }
func (ToggleReady) Type() CommandType  { return CmdToggleReady }
func (PauseGame) Type() CommandType    { return CmdPauseGame }
func (ResumeGame) Type() CommandType   { return CmdResumeGame }
func (SetSides) Type() CommandType     { return CmdSetSides }
func (ReportResult) Type() CommandType { return CmdReportResult }

func (c Ban) Actor() Role          { return c.By }
func (c Pick) Actor() Role         { return c.By }
func (c Swap) Actor() Role         { return c.By }
func (c SwapClick) Actor() Role    { return c.By }
func (c FinishSwap) Actor() Role   { return c.By }
func (c StartGame) Actor() Role    { return c.By }
func (c ResetGame) Actor() Role    { return c.By }
func (c ToggleReady) Actor() Role  { return c.By }
func (c PauseGame) Actor() Role    { return c.By }
func (c ResumeGame) Actor() Role   { return c.By }
func (c SetSides) Actor() Role     { return c.By }
func (c ReportResult) Actor() Role { return c.By }
