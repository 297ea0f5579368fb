// Package highscore tracks the best score across sessions and persists it
// through a pluggable Store. Persistence is best effort: storage failures are
// logged and never reach the game.
package highscore

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-snake/internal/snake"
)

// Key is the fixed storage key the high score lives under.
const Key = "neonSnakeHighScore"

// Session is the record of one finished game.
type Session struct {
	ID       string
	Player   string
	Score    int
	Length   int
	Cause    string
	Duration time.Duration
	EndedAt  time.Time
}

// Store persists the high score and finished sessions.
type Store interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
	RecordSession(s Session) error
}

// Keeper holds the in-memory best score and writes new maxima to its store.
// It is safe for concurrent use; SSH sessions share one Keeper.
type Keeper struct {
	mu     sync.Mutex
	store  Store
	logger *log.Logger
	best   int
	now    func() time.Time
}

// NewKeeper creates a keeper and reads the stored high score once.
// A nil store gives a purely in-memory keeper.
func NewKeeper(store Store, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	k := &Keeper{
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	if store != nil {
		best, err := store.HighScore()
		if err != nil {
			logger.Warn("could not read high score", "error", err)
		} else {
			k.best = best
		}
	}
	return k
}

// Best returns the highest score seen so far.
func (k *Keeper) Best() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

// Observe compares a session score with the best and persists it when larger.
// Reports whether the score is a new best.
func (k *Keeper) Observe(score int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if score <= k.best {
		return false
	}
	k.best = score

	if k.store != nil {
		if err := k.store.SaveHighScore(score); err != nil {
			k.logger.Warn("could not save high score", "score", score, "error", err)
		}
	}
	return true
}

// Record stores a finished session.
func (k *Keeper) Record(s Session) {
	if k.store == nil {
		return
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := k.store.RecordSession(s); err != nil {
		k.logger.Warn("could not record session", "id", s.ID, "error", err)
		return
	}
	k.logger.Debug("session recorded", "id", s.ID, "player", s.Player, "score", s.Score, "cause", s.Cause)
}

// Tracker follows the events of one engine and feeds them to the keeper.
type Tracker struct {
	keeper  *Keeper
	player  string
	started time.Time
	newBest bool
}

// Track returns a tracker for one player's engine.
func (k *Keeper) Track(player string) *Tracker {
	return &Tracker{keeper: k, player: player}
}

// NewBest reports whether the current session has beaten the previous best.
func (t *Tracker) NewBest() bool {
	return t.newBest
}

// Listener returns the engine listener that drives this tracker.
func (t *Tracker) Listener() snake.Listener {
	return t.handle
}

func (t *Tracker) handle(ev snake.Event) {
	switch ev := ev.(type) {
	case snake.StartedEvent:
		t.started = t.keeper.now()
		t.newBest = false
	case snake.ScoreChangedEvent:
		if t.keeper.Observe(ev.Score) {
			t.newBest = true
		}
	case snake.GameOverEvent:
		ended := t.keeper.now()
		var dur time.Duration
		if !t.started.IsZero() {
			dur = ended.Sub(t.started)
		}
		t.keeper.Record(Session{
			ID:       uuid.NewString(),
			Player:   t.player,
			Score:    ev.Score,
			Length:   ev.Length,
			Cause:    ev.Cause.String(),
			Duration: dur,
			EndedAt:  ended,
		})
	}
}
