package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/highscore"
	"github.com/vovakirdan/neon-snake/internal/snake"
)

// Model is the Bubble Tea model for one player's game.
// Bubble Tea serializes Update calls, so engine commands and ticks never overlap.
type Model struct {
	engine  *snake.Engine
	keeper  *highscore.Keeper
	tracker *highscore.Tracker
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	styles  Styles
	screen  *core.Screen
	player  string
	width   int
	height  int
	gen     int // Current tick chain; bumped whenever scheduling restarts
	quit    bool
}

// NewModel creates a model with a fresh engine in the NotStarted state.
func NewModel(keeper *highscore.Keeper, styles Styles, logger *log.Logger, cfg core.RuntimeConfig, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	if keeper == nil {
		keeper = highscore.NewKeeper(nil, logger)
	}

	tracker := keeper.Track(player)
	logger = logger.With("player", player)

	engine := snake.New(
		snake.WithSeed(cfg.Seed),
		snake.WithListener(snake.Listeners(tracker.Listener(), logEvents(logger))),
	)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:  engine,
		keeper:  keeper,
		tracker: tracker,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		styles:  styles,
		screen:  core.NewScreen(ScreenW, ScreenH),
		player:  player,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// logEvents reports session milestones to the logger.
func logEvents(logger *log.Logger) snake.Listener {
	return func(ev snake.Event) {
		switch ev := ev.(type) {
		case snake.StartedEvent:
			logger.Debug("session started")
		case snake.ScoreChangedEvent:
			logger.Debug("score changed", "score", ev.Score)
		case snake.GameOverEvent:
			logger.Info("game over", "score", ev.Score, "length", ev.Length, "cause", ev.Cause)
		}
	}
}

// Engine exposes the underlying engine, mainly for tests and diagnostics.
func (m Model) Engine() *snake.Engine {
	return m.engine
}

// Init does not start ticking: the board waits for the first input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// apply routes an action to the engine according to the lifecycle state.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	if action == core.ActionQuit {
		m.quit = true
		return m, tea.Quit
	}

	switch m.engine.State() {
	case snake.StateNotStarted:
		// The first input both seeds and starts the session.
		if action == core.ActionNone {
			return m, nil
		}
		m.engine.Start()
		if d, ok := direction(action); ok {
			m.engine.SetDirection(d)
		}
		return m.schedule()

	case snake.StateGameOver:
		if action == core.ActionRestart {
			m.engine.Start()
			return m.schedule()
		}
		return m, nil

	default:
		if d, ok := direction(action); ok {
			m.engine.SetDirection(d)
			return m, nil
		}
		if action == core.ActionPrimary || action == core.ActionPause {
			m.engine.TogglePause()
			if m.engine.State() == snake.StateRunning {
				return m.schedule()
			}
			// Orphan the pending tick
			m.gen++
		}
		return m, nil
	}
}

// schedule starts a new tick chain at the engine's current interval.
func (m Model) schedule() (tea.Model, tea.Cmd) {
	m.gen++
	return m, tickCmd(m.engine.TickInterval(), m.gen)
}

// handleTick runs one engine step and re-reads the interval for the next one.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	snap := m.engine.Tick()
	if snap.GameOver() {
		m.logger.Debug("final board", "state", m.engine.DebugState())
	}
	if snap.State != snake.StateRunning {
		return m, nil
	}
	return m, tickCmd(m.engine.TickInterval(), m.gen)
}

func direction(a core.Action) (snake.Direction, bool) {
	if !a.IsDirection() {
		return 0, false
	}
	switch a {
	case core.ActionUp:
		return snake.DirUp, true
	case core.ActionDown:
		return snake.DirDown, true
	case core.ActionLeft:
		return snake.DirLeft, true
	case core.ActionRight:
		return snake.DirRight, true
	}
	return 0, false
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	DrawBoard(m.screen, m.engine.Snapshot(), HUD{
		HighScore: m.keeper.Best(),
		NewBest:   m.tracker.NewBest(),
	})

	view := lipgloss.JoinVertical(lipgloss.Center,
		RenderScreen(m.screen, m.styles),
		"",
		m.help.View(m.keys),
	)

	if m.width <= 0 || m.height <= 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// Run starts the Bubble Tea program for a local player.
func Run(keeper *highscore.Keeper, styles Styles, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model := NewModel(keeper, styles, logger, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
