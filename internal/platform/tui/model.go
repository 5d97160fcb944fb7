package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/haskell-hop/internal/config"
	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/registry"
	"github.com/vovakirdan/haskell-hop/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Store      *storage.Store // Optional; nil disables run history
	Runtime    core.RuntimeConfig
	HoldWindow time.Duration
	Logger     *log.Logger        // Optional; nil discards
	Renderer   *lipgloss.Renderer // Optional; per SSH session
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	holds    *HoldTracker
	logger   *log.Logger
	renderer *lipgloss.Renderer
	start    time.Time
	state    core.GameState
	best     int // High score when the run started
	quitting bool
	saved    bool
}

// NewModel creates a model and starts a fresh run of game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.SimulationRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hold := opts.HoldWindow
	if hold <= 0 {
		hold = config.DefaultHopConfig().Input.HoldWindow()
	}

	game.Reset(cfg)
	best := 0
	if opts.Store != nil {
		if hs, err := opts.Store.HighScore(game.ID()); err == nil {
			best = hs
		}
	}
	logger.Info("run started", "game", game.ID(), "seed", cfg.Seed, "best", best)

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    opts.Store,
		config:   cfg,
		keys:     NewKeyMapper(),
		holds:    NewHoldTracker(hold),
		logger:   logger,
		renderer: opts.Renderer,
		start:    time.Now(),
		state:    game.State(),
		best:     best,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has a fixed size; only the view changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.BlurMsg:
		// Key repeats stop arriving once the terminal loses focus.
		m.holds.Release()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit, core.ActionBack:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	default:
		m.holds.Press(action, time.Now())
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	result := m.game.Step(m.holds.Frame(at), at.Sub(m.start))
	m.state = result.State
	m.logEvents(result.Events)
	return m, tickCmd()
}

func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		if ev.Kind == core.EventStageChanged {
			m.logger.Info(ev.Message, ev.Keyvals...)
			continue
		}
		m.logger.Debug(ev.Message, append([]any{"kind", ev.Kind.String()}, ev.Keyvals...)...)
	}
}

// saveRun records the run once. Runs without a jump are not kept.
func (m *Model) saveRun() {
	if m.saved {
		return
	}
	m.saved = true
	m.logger.Info("run ended", "jumps", m.state.Score, "stage", m.state.Stage, "ticks", m.state.Ticks)
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Jumps:  m.state.Score,
		Stage:  m.state.Stage,
		Ticks:  m.state.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	if m.state.Score > m.best {
		m.logger.Info("new high score", "jumps", m.state.Score, "previous", m.best)
	}
}

// saveScreenshot saves the current screen as plain text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dataDir, err := config.DataDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(dataDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// ProgramOptions returns the Bubble Tea options the model runs with.
// The simulation ticks at core.SimulationRate whatever the redraw rate.
func (m Model) ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithFPS(m.config.FrameRate),
	}
}

// State returns the latest run summary.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.renderer, m.screen)
}

// Run plays game in the local terminal until the player quits.
func Run(game registry.Game, opts Options) error {
	m := NewModel(game, opts)
	p := tea.NewProgram(m, m.ProgramOptions()...)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	// Interrupted programs skip the quit key path.
	if m, ok := final.(Model); ok {
		m.saveRun()
	}
	return nil
}
