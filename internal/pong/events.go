package pong

// MatchState is derived from the two scores and the win threshold.
type MatchState int

const (
	InProgress MatchState = iota
	WonByPlayer
	WonByComputer
)

// String returns a human-readable state name.
func (s MatchState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case WonByPlayer:
		return "won by player"
	case WonByComputer:
		return "won by computer"
	default:
		return "unknown"
	}
}

// Terminal reports whether the match has a winner.
func (s MatchState) Terminal() bool {
	return s != InProgress
}

// Side identifies a paddle.
type Side int

const (
	NoSide Side = iota
	Player
	Computer
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Player:
		return "player"
	case Computer:
		return "computer"
	default:
		return "none"
	}
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPlayerHit
	EventComputerHit
	EventPlayerScored
	EventComputerScored
	EventMatchWon
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPlayerHit:
		return "player_hit"
	case EventComputerHit:
		return "computer_hit"
	case EventPlayerScored:
		return "player_scored"
	case EventComputerScored:
		return "computer_scored"
	case EventMatchWon:
		return "match_won"
	default:
		return "unknown"
	}
}

// Event is emitted by Advance. Side is set for scoring and match events.
type Event struct {
	Kind EventKind
	Side Side
}

// StepResult is the outcome of one Advance call.
type StepResult struct {
	Tick   uint64
	Events []Event
	State  MatchState
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
