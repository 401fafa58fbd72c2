package core

// Action represents a semantic input action, abstracted from physical key presses.
// Drivers translate keys into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - nudge paddle up
	ActionDown           // S, Down arrow - nudge paddle down
	ActionConfirm        // Enter - start game from the landing view
	ActionBack           // B, Escape - back to the landing view
	ActionRestart        // R - rematch after a win
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
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
	default:
		return "Unknown"
	}
}
