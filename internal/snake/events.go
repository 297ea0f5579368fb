package snake

// Event is published by the engine to its listener.
type Event interface {
	engineEvent()
}

// StartedEvent is sent when a new session begins.
type StartedEvent struct{}

func (StartedEvent) engineEvent() {}

// ScoreChangedEvent is sent whenever the score increases.
type ScoreChangedEvent struct {
	Score int
}

func (ScoreChangedEvent) engineEvent() {}

// GameOverEvent is sent once when a session ends on a collision.
type GameOverEvent struct {
	Score  int
	Length int
	Cause  Cause
}

func (GameOverEvent) engineEvent() {}

// SnapshotEvent carries the board after a start or an executed tick.
type SnapshotEvent struct {
	Snapshot Snapshot
}

func (SnapshotEvent) engineEvent() {}

// Listener receives engine events synchronously, on the caller's goroutine.
type Listener func(Event)

// Listeners fans a single event out to several listeners in order.
func Listeners(ls ...Listener) Listener {
	return func(ev Event) {
		for _, l := range ls {
			if l != nil {
				l(ev)
			}
		}
	}
}
