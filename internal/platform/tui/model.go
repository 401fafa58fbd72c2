package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong-arcade/internal/audio"
	"github.com/vovakirdan/pong-arcade/internal/config"
	"github.com/vovakirdan/pong-arcade/internal/core"
	"github.com/vovakirdan/pong-arcade/internal/loop"
	"github.com/vovakirdan/pong-arcade/internal/pong"
)

// Minimum terminal size that still shows a playable field.
const (
	MinWidth  = 20
	MinHeight = 8
)

type view int

const (
	viewLanding view = iota
	viewGame
)

// Option configures a Model.
type Option func(*Model)

// WithCues plays sound cues for simulation events.
func WithCues(c *audio.Cues) Option {
	return func(m *Model) { m.cues = c }
}

// WithClock sets the clock used to measure frame time.
func WithClock(c loop.Clock) Option {
	return func(m *Model) { m.timer = loop.NewFrameTimer(c) }
}

// WithLogger sets the logger passed to the game.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithDirectStart skips the landing view.
func WithDirectStart() Option {
	return func(m *Model) { m.view = viewGame }
}

// Model is the Bubble Tea model for the arcade: a landing view and the game.
type Model struct {
	cfg      config.PongConfig
	runtime  core.RuntimeConfig
	game     *pong.Game
	stepper  *loop.Stepper
	timer    *loop.FrameTimer
	cues     *audio.Cues
	logger   *log.Logger
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	view     view
	pointerY float64
	paused   bool
	quitting bool
}

// NewModel creates the arcade model. A zero seed in rt picks a random one.
func NewModel(cfg config.PongConfig, rt core.RuntimeConfig, opts ...Option) (Model, error) {
	m := Model{
		cfg:     cfg,
		runtime: rt,
		timer:   loop.NewFrameTimer(nil),
		logger:  log.New(io.Discard),
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	gameOpts := []pong.Option{pong.WithLogger(m.logger)}
	if rt.Seed != 0 {
		gameOpts = append(gameOpts, pong.WithSeed(rt.Seed))
	}
	game, err := pong.New(cfg, gameOpts...)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	stepper, err := loop.NewStepper(cfg.Loop.TickRate, cfg.Loop.MaxCatchUp)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	m.game = game
	m.stepper = stepper
	m.pointerY = cfg.Playfield.Height / 2
	return m, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.view == viewGame {
			m.movePointer(m.viewport().ToFieldY(msg.Y))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.handleTick()
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.activeKeys().Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.view == viewLanding {
		if action == core.ActionConfirm {
			m.startGame()
		}
		return m, nil
	}

	nudge := m.cfg.Playfield.Height / 20
	switch action {
	case core.ActionUp:
		m.movePointer(m.pointerY - nudge)
	case core.ActionDown:
		m.movePointer(m.pointerY + nudge)
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionRestart:
		m.game.ResetMatch()
		m.stepper.Reset()
		m.timer.Restart()
	case core.ActionBack:
		m.view = viewLanding
		m.paused = false
	}
	return m, nil
}

// handleTick feeds elapsed frame time to the fixed-step driver.
func (m *Model) handleTick() {
	elapsed := m.timer.Elapsed()
	if m.view != viewGame || m.paused || m.game.State().Terminal() {
		return
	}
	before := m.stepper.Dropped()
	m.stepper.Advance(elapsed, func() bool {
		res := m.game.Advance()
		m.cues.Handle(res.Events)
		return !res.State.Terminal()
	})
	if d := m.stepper.Dropped() - before; d > 0 {
		m.logger.Debug("frame late, ticks dropped", "dropped", d, "total", m.stepper.Dropped())
	}
}

func (m *Model) startGame() {
	m.game.ResetMatch()
	m.stepper.Reset()
	m.timer.Restart()
	m.paused = false
	m.view = viewGame
	m.movePointer(m.cfg.Playfield.Height / 2)
}

func (m *Model) movePointer(y float64) {
	m.pointerY = core.ClampF(y, 0, m.cfg.Playfield.Height)
	m.game.SetPlayerPaddlePosition(m.pointerY)
}

// viewport maps the playfield below the score header.
func (m Model) viewport() core.Viewport {
	rows := m.screen.Height() - 1
	return core.NewViewport(m.cfg.Playfield.Width, m.cfg.Playfield.Height, m.screen.Width(), rows, 1)
}

func (m Model) activeKeys() KeyMap {
	if m.view == viewLanding {
		return m.keys.forLanding()
	}
	return m.keys.forGame(m.game.State().Terminal())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen.Width() < MinWidth || m.screen.Height() < MinHeight-1 {
		return fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight)
	}

	m.screen.Clear()
	if m.view == viewLanding {
		m.drawLanding()
	} else {
		m.drawGame()
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.activeKeys()))
	return sb.String()
}

func (m Model) drawLanding() {
	w, h := m.screen.Width(), m.screen.Height()
	m.screen.DrawBox(core.NewRect(0, 0, w, h), core.ColorDarkGray)

	mid := h / 2
	m.screen.DrawTextCentered(mid-3, "Welcome to the Arcade", core.ColorBrightWhite)
	m.screen.DrawTextCentered(mid-1, "Select a game to play", core.ColorGray)
	m.screen.DrawTextCentered(mid+1, "▶ Pong", core.ColorBrightCyan)
	m.screen.DrawTextCentered(mid+3, fmt.Sprintf("first to %d wins", m.game.WinScore()), core.ColorDarkGray)
}

func (m Model) drawGame() {
	m.game.Render(newCellSurface(m.screen, m.viewport()))

	scores := m.game.Scores()
	m.screen.DrawTextCentered(0, fmt.Sprintf("Player: %d   Computer: %d", scores.Player, scores.Computer), core.ColorBrightWhite)

	mid := m.screen.Height() / 2
	switch {
	case m.game.State().Terminal():
		m.drawBanner(mid, Banner(m.game.Winner()), "R play again · B back")
	case m.paused:
		m.drawBanner(mid, "PAUSED", "P resume")
	}
}

func (m Model) drawBanner(y int, title, hint string) {
	width := max(len([]rune(title)), len([]rune(hint))) + 4
	x := (m.screen.Width() - width) / 2
	box := core.NewRect(x, y-2, width, 5)
	m.screen.DrawRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, core.ColorCyan)
	m.screen.DrawTextCentered(y-1, title, core.ColorBrightWhite)
	m.screen.DrawTextCentered(y+1, hint, core.ColorGray)
}

// Banner returns the end-of-match message for the winning side.
func Banner(winner pong.Side) string {
	switch winner {
	case pong.Player:
		return "You Win!"
	case pong.Computer:
		return "Computer Wins!"
	default:
		return ""
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg config.PongConfig, rt core.RuntimeConfig, opts ...Option) error {
	model, err := NewModel(cfg, rt, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steers the paddle
	)

	_, err = p.Run()
	return err
}
