package engine

// DraftStep is one fixed entry of the pro-play order.
type DraftStep struct {
	Position int    `json:"position"`
	Side     Side   `json:"side"`
	Action   Action `json:"action"`
}

var GameOrder = [...]DraftStep{
	// Ban Phase 1
	{Position: 0, Side: SideBlue, Action: ActionBan},
	{Position: 1, Side: SideRed, Action: ActionBan},
	{Position: 2, Side: SideBlue, Action: ActionBan},
	{Position: 3, Side: SideRed, Action: ActionBan},
	{Position: 4, Side: SideBlue, Action: ActionBan},
	{Position: 5, Side: SideRed, Action: ActionBan},
	// Pick Phase 1
	{Position: 6, Side: SideBlue, Action: ActionPick},
	{Position: 7, Side: SideRed, Action: ActionPick},
	{Position: 8, Side: SideRed, Action: ActionPick},
	{Position: 9, Side: SideBlue, Action: ActionPick},
	{Position: 10, Side: SideBlue, Action: ActionPick},
	{Position: 11, Side: SideRed, Action: ActionPick},
	// Ban Phase 2
	{Position: 12, Side: SideRed, Action: ActionBan},
	{Position: 13, Side: SideBlue, Action: ActionBan},
	{Position: 14, Side: SideRed, Action: ActionBan},
	{Position: 15, Side: SideBlue, Action: ActionBan},
	// Pick Phase 2
	{Position: 16, Side: SideRed, Action: ActionPick},
	{Position: 17, Side: SideBlue, Action: ActionPick},
	{Position: 18, Side: SideBlue, Action: ActionPick},
	{Position: 19, Side: SideRed, Action: ActionPick},
}

// StepCount is the cursor value meaning the order is exhausted.
const StepCount = len(GameOrder)

// CurrentStep returns the step at cursor, or false once the order is exhausted.
func CurrentStep(cursor int) (DraftStep, bool) {
	if cursor < 0 || cursor >= StepCount {
		return DraftStep{}, false
	}
	return GameOrder[cursor], true
}
