package core

// Action is a session-wide intent, separate from the per-seat game keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // select menu entry
	ActionBack           // leave the current screen
	ActionRestart        // new game once the match is over
	ActionQuit           // exit the program or SSH session
	ActionPause          // pause both fields
	ActionGhost          // toggle the landing preview
	ActionScores         // open the scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionGhost:
		return "Ghost"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}
