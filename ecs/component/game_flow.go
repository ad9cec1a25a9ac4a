package component

import "github.com/milk9111/raindrop/common"

type GameState int

const (
	StateTitle GameState = iota
	StateMain
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateMain:
		return "main"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameFlow is the run-level state machine singleton.
type GameFlow struct {
	State GameState
	Timer common.Timer
	// Victory is set after the boss dies; the player then flies off ahead of
	// the camera by Disposition².
	Victory     bool
	Disposition float64
	// StartRequested is set on the attack edge at the title; the session
	// performs the reset.
	StartRequested bool
	Runs           int
}

var GameFlowComponent = NewComponent[GameFlow]()
