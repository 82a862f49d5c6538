package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehall/blockfall/internal/core"
	"github.com/arcadehall/blockfall/internal/storage"
	"github.com/arcadehall/blockfall/internal/tetris"
)

// Model is the Bubble Tea model for a single game session. Key messages are
// queued as input events and handed to the engine on the next tick together
// with the real time elapsed since the previous tick, so the simulation
// speed does not depend on the configured frame rate.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	pending    []core.InputEvent
	lastTick   time.Time
	gameState  core.GameState
	highScore  int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		keys:   NewKeyMapper(),
		config: cfg,
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events, isQuit := m.keys.MapKeyToEvents(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.pending = append(m.pending, events...)
	return m, nil
}

// handleResize adjusts the screen buffer. The playfield has fixed
// dimensions, so the game itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result := m.game.Advance(elapsed, m.pending)
	m.pending = nil
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
	} else if wasOver {
		// Restart went through; the next game over saves again.
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the finished game once per game over. Best effort; a
// failed save never interrupts play.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.gameState.Score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.gameState.Score, m.gameState.Lines, m.gameState.Level)
	m.scoreSaved = true
	if m.gameState.Score > m.highScore {
		m.highScore = m.gameState.Score
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.game.Snapshot(), m.highScore)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
