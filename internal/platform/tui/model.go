package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is what the host needs from a frame-driven game session.
type Game interface {
	ID() string
	Title() string
	// Reset starts a brand new session for the given screen.
	Reset(cfg core.RuntimeConfig)
	// Step applies the collected input and advances one frame by dt.
	Step(in core.InputFrame, dt time.Duration) core.GameState
	// Restart replaces the session; the returned state carries a new generation.
	Restart() core.GameState
	// Resize records a new screen size. A running session keeps going; the
	// size applies from the next restart.
	Resize(w, h int) core.GameState
	// PollScore publishes the authoritative score to the display and returns it.
	PollScore() int
	Render(dst *core.Screen)
	// RestartRegion is the clickable restart prompt shown after game over.
	RestartRegion() core.Rect
	State() core.GameState
}

// Options configures the host.
type Options struct {
	Runtime       core.RuntimeConfig
	ScorePoll     time.Duration // Interval between score polls
	MaxFrameDelta time.Duration // Upper bound for the elapsed time fed to one frame
	Logger        *log.Logger
	ScreenshotDir string // Defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	state      core.GameState
	lastFrame  time.Time
	quitting   bool
}

// NewModel creates a model and starts the first session.
// The help line takes the last terminal row, the game gets the rest.
func NewModel(game Game, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScorePoll <= 0 {
		opts.ScorePoll = 100 * time.Millisecond
	}
	if opts.MaxFrameDelta <= 0 {
		opts.MaxFrameDelta = 4 * opts.Runtime.FrameInterval()
	}

	rc := opts.Runtime
	rc.ScreenH = playfieldHeight(rc.ScreenH)
	game.Reset(rc)

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(rc.ScreenW, rc.ScreenH),
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     opts.Logger,
		inputFrame: core.NewInputFrame(),
		state:      game.State(),
	}
}

// Init starts the frame loop and the score poll.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "width", m.screen.Width(), "height", m.screen.Height())
	return m.startLoops()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case ScorePollMsg:
		return m.handlePoll(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quit", "score", m.state.DisplayScore)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Restart):
		if m.state.GameOver() {
			return m.restart()
		}

	case key.Matches(msg, m.keys.Tap):
		if !m.state.GameOver() {
			m.inputFrame.Set(core.ActionTap)
		}
	}

	return m, nil
}

// handleMouse treats a left click as a tap while running and as a restart
// when it lands on the restart prompt after game over.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.state.GameOver() {
		if m.game.RestartRegion().Contains(msg.X, msg.Y) {
			return m.restart()
		}
		return m, nil
	}
	m.inputFrame.Set(core.ActionTap)
	return m, nil
}

// handleResize resizes the screen buffer. It never restarts the loops.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, playfieldHeight(msg.Height)
	m.help.Width = msg.Width
	if w == m.screen.Width() && h == m.screen.Height() {
		return m, nil
	}

	m.screen.Resize(w, h)
	m.state = m.game.Resize(w, h)
	m.logger.Debug("resize", "width", w, "height", h, "run", m.state.Run)
	return m, nil
}

// handleFrame runs one tick of the current session.
// The loop is not rescheduled once the game is over, which stops it.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.state.Generation || m.state.GameOver() {
		return m, nil
	}

	dt := m.opts.Runtime.FrameInterval()
	if !m.lastFrame.IsZero() {
		dt = msg.Time.Sub(m.lastFrame)
	}
	dt = max(0, min(dt, m.opts.MaxFrameDelta))
	m.lastFrame = msg.Time

	m.state = m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	if m.state.GameOver() {
		m.logger.Info("game over", "score", m.state.Score, "generation", m.state.Generation)
		return m, nil
	}
	return m, frameCmd(m.state.Generation, m.opts.Runtime.FrameInterval())
}

// handlePoll copies the score to the display while the session runs.
func (m Model) handlePoll(msg ScorePollMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.state.Generation || m.state.GameOver() {
		return m, nil
	}
	m.state.DisplayScore = m.game.PollScore()
	return m, pollCmd(m.state.Generation, m.opts.ScorePoll)
}

// restart starts a new session and remounts both loops under the new generation.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.state = m.game.Restart()
	m.inputFrame.Clear()
	m.lastFrame = time.Time{}
	m.logger.Info("restart", "generation", m.state.Generation)
	return m, m.startLoops()
}

func (m Model) startLoops() tea.Cmd {
	gen := m.state.Generation
	return tea.Batch(
		frameCmd(gen, m.opts.Runtime.FrameInterval()),
		pollCmd(gen, m.opts.ScorePoll),
	)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.forState(m.state.GameOver()))
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}

func playfieldHeight(h int) int {
	return max(h-1, 1)
}
