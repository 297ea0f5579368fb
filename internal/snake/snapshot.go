package snake

import "time"

// Snapshot is a read-only copy of the engine state for renderers and tests.
type Snapshot struct {
	Tick         uint64
	Snake        []Cell // Head first
	Food         Cell
	Score        int
	TickInterval time.Duration
	Direction    Direction
	State        State
	Cause        Cause
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return NoCell
	}
	return s.Snake[0]
}

// Occupied reports whether a snake segment sits on c.
func (s Snapshot) Occupied(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// GameOver reports whether the session has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	body := make([]Cell, len(e.snake))
	copy(body, e.snake)

	return Snapshot{
		Tick:         e.tick,
		Snake:        body,
		Food:         e.food,
		Score:        e.score,
		TickInterval: e.interval,
		Direction:    e.direction,
		State:        e.state,
		Cause:        e.cause,
	}
}
