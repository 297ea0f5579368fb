package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Engine owns all simulation state of one snake session.
// It is not safe for concurrent use: commands and ticks must be serialized by
// the caller, which the bubbletea update loop does naturally.
type Engine struct {
	rng      *rand.Rand
	listener Listener

	tick      uint64
	snake     []Cell // Head at index 0
	food      Cell
	direction Direction
	score     int
	interval  time.Duration
	state     State
	cause     Cause
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the food placement RNG for reproducible sessions.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses the given RNG for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithListener registers the receiver of engine events.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

// New creates an engine in the NotStarted state with the board already seeded,
// so a renderer has something to draw before the first Start.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.seed()
	e.state = StateNotStarted
	return e
}

// seed resets the board to the beginning of a session without touching the lifecycle.
func (e *Engine) seed() {
	e.tick = 0
	e.snake = []Cell{StartCell}
	e.direction = DirRight
	e.score = 0
	e.interval = InitialTickInterval
	e.cause = CauseNone
	e.food = placeFood(e.rng, e.snake)
}

// Start begins a new session, discarding whatever state the engine held.
func (e *Engine) Start() {
	e.seed()
	e.state = StateRunning

	e.emit(StartedEvent{})
	e.emit(SnapshotEvent{Snapshot: e.Snapshot()})
}

// SetDirection requests a new heading. A request for the exact opposite of the
// active direction is ignored. While NotStarted an accepted request also starts
// movement on the already seeded board without resetting it.
func (e *Engine) SetDirection(d Direction) {
	switch e.state {
	case StateRunning, StateNotStarted:
	default:
		return
	}

	if d == e.direction.Opposite() {
		return
	}
	e.direction = d

	if e.state == StateNotStarted {
		e.state = StateRunning
		e.emit(StartedEvent{})
	}
}

// TogglePause flips between Running and Paused. It does nothing in other states.
func (e *Engine) TogglePause() {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
	case StatePaused:
		e.state = StateRunning
	}
}

// Tick advances the simulation by one step and returns the resulting snapshot.
// Outside of Running it changes nothing.
func (e *Engine) Tick() Snapshot {
	if e.state != StateRunning {
		return e.Snapshot()
	}
	e.tick++

	dx, dy := e.direction.Delta()
	head := e.snake[0].Add(dx, dy)

	if !head.InBounds() {
		e.endGame(CauseWall)
		return e.publish()
	}

	// The tail cell still counts even though it would vacate this step.
	if e.occupied(head) {
		e.endGame(CauseSelf)
		return e.publish()
	}

	e.snake = append(e.snake, Cell{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = head

	if head == e.food {
		e.score += FoodScore
		e.food = placeFood(e.rng, e.snake)
		e.interval = nextInterval(e.interval)
		e.emit(ScoreChangedEvent{Score: e.score})
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	return e.publish()
}

// nextInterval speeds the game up after food, never below MinTickInterval.
func nextInterval(d time.Duration) time.Duration {
	next := time.Duration(float64(d) * SpeedDecay)
	if next < MinTickInterval {
		return MinTickInterval
	}
	return next
}

func (e *Engine) endGame(cause Cause) {
	e.state = StateGameOver
	e.cause = cause
	e.emit(GameOverEvent{Score: e.score, Length: len(e.snake), Cause: cause})
}

func (e *Engine) occupied(c Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

func (e *Engine) publish() Snapshot {
	snap := e.Snapshot()
	e.emit(SnapshotEvent{Snapshot: snap})
	return snap
}

func (e *Engine) emit(ev Event) {
	if e.listener != nil {
		e.listener(ev)
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current session score.
func (e *Engine) Score() int {
	return e.score
}

// TickInterval returns how long the scheduler should wait before the next Tick.
func (e *Engine) TickInterval() time.Duration {
	return e.interval
}

// Direction returns the active direction.
func (e *Engine) Direction() Direction {
	return e.direction
}

// DebugState returns a string representation of the engine state.
func (e *Engine) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, State: %s\n", e.tick, e.score, e.state))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Interval: %s\n", len(e.snake), e.direction, e.interval))
	if len(e.snake) > 0 {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d)\n", e.snake[0].X, e.snake[0].Y, e.food.X, e.food.Y))
	}
	return b.String()
}
