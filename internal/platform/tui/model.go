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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures the terminal front end.
type Options struct {
	Game     *flappy.Game
	Width    int // terminal columns
	Height   int // terminal rows, including the help line
	CellW    float64
	CellH    float64
	TickRate int
	Seed     int64
	// ScreenshotDir receives ctrl+s captures. Empty uses ~/.flappy/screenshots.
	ScreenshotDir string
	Logger        *log.Logger
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	canvas   *core.Canvas
	styles   styleCache
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	state    flappy.GameState
	tickRate int
	shotDir  string
	logger   *log.Logger
	quitting bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates the model and sizes the game to the terminal.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := max(opts.Width, 1), max(opts.Height-1, 1)
	screen := core.NewScreen(w, h)
	canvas := core.NewCanvas(screen, opts.CellW, opts.CellH)

	worldW, worldH := canvas.Size()
	opts.Game.Reset(core.RuntimeConfig{
		Width:    worldW,
		Height:   worldH,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	hm := help.New()
	hm.Width = w

	return Model{
		game:     opts.Game,
		screen:   screen,
		canvas:   canvas,
		styles:   make(styleCache),
		keys:     DefaultKeyMap(),
		help:     hm,
		input:    core.NewInputFrame(),
		state:    opts.Game.State(),
		tickRate: opts.TickRate,
		shotDir:  opts.ScreenshotDir,
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
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

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(a)
	}
	return m, nil
}

// handleMouse turns a left click into a pointer press at the centre of the
// clicked cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < 0 || msg.Y >= m.screen.Height() || msg.X < 0 || msg.X >= m.screen.Width() {
		return m, nil
	}
	x, y := m.canvas.CellToWorld(msg.X, msg.Y)
	m.input.Press(x, y)
	return m, nil
}

// handleResize keeps the session and only changes the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
	m.canvas.Begin()
	m.game.Resize(m.canvas.Size())
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	res := m.game.Step(m.input)
	m.state = res.State
	m.input.Clear()
	return m, tickCmd(m.tickRate)
}

// State returns the game state after the last tick.
func (m Model) State() flappy.GameState { return m.state }

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	m.draw()
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m Model) draw() {
	m.canvas.Begin()
	m.game.Render(m.canvas)
	m.canvas.Flush()
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return renderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
