// Package snake implements the grid snake engine: lifecycle state machine,
// the per-step tick algorithm, collision rules, scoring and food placement.
// It has no dependency on the terminal, timers or storage; the platform drives
// it through commands and observes it through snapshots and events.
package snake

import "time"

// Board and pacing constants.
const (
	GridSize = 20

	InitialTickInterval = 100 * time.Millisecond
	MinTickInterval     = 50 * time.Millisecond
	SpeedDecay          = 0.98

	FoodScore = 10
)

// StartCell is where a new session places the snake's head.
var StartCell = Cell{X: 10, Y: 10}

// NoCell marks the absence of food when the board has no free cell left.
var NoCell = Cell{X: -1, Y: -1}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell shifted by the given offsets.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether the cell lies inside [0, GridSize) on both axes.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// State is the engine lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records what ended a session.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}
