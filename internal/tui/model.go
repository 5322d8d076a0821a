package tui

import (
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/metrics"
	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/pkg/motion"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// ────────────────────────────────────────────────────────────
// Options
// ────────────────────────────────────────────────────────────

// Options tunes the interactive dashboard.
type Options struct {
	// FPS is the animation tick rate.
	FPS int
	// Animate enables the tick loop. When false the frame is pinned at
	// motion.Settled and no ticks are scheduled.
	Animate bool
}

// DefaultOptions returns the interactive defaults.
func DefaultOptions() Options {
	return Options{FPS: 12, Animate: true}
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the dashboard. The page tree is
// fixed for the model's lifetime; only presentation state changes.
type Model struct {
	page   page.Page
	opts   Options
	logger *zap.Logger

	// Animation clock
	elapsed time.Duration
	paused  bool

	// UI state
	viewport viewport.Model
	focus    int
	width    int
	height   int
}

// NewModel creates a dashboard model for p. A nil logger is replaced by
// a no-op logger.
func NewModel(p page.Page, opts Options, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}

	m := Model{
		page:     p,
		opts:     opts,
		logger:   logger,
		viewport: viewport.New(0, 0),
	}
	if !opts.Animate {
		m.elapsed = motion.Settled
	}
	return m
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

// tickMsg advances the animation clock by one frame.
type tickMsg time.Time

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	if !m.opts.Animate {
		return nil
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(motion.FrameInterval(m.opts.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = maxInt(msg.Height-headerHeight(m)-1, 1)
		m.logger.Debug("window resized",
			zap.Int("width", msg.Width), zap.Int("height", msg.Height))
		m.refresh()
		return m, nil

	case tickMsg:
		if !m.paused {
			m.elapsed += motion.FrameInterval(m.opts.FPS)
			metrics.RecordFrame(metrics.SurfaceTUI)
		}
		m.refresh()
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := len(m.page.Cards())

	switch msg.String() {
	case "q", "ctrl+c":
		m.logger.Info("dashboard closed", zap.Duration("elapsed", m.elapsed))
		return m, tea.Quit

	case "tab":
		if cards > 0 {
			m.focus = (m.focus + 1) % cards
		}
		m.refresh()
		return m, nil

	case "shift+tab":
		if cards > 0 {
			m.focus = (m.focus + cards - 1) % cards
		}
		m.refresh()
		return m, nil

	case "p":
		if m.opts.Animate {
			m.paused = !m.paused
			m.logger.Debug("animation toggled", zap.Bool("paused", m.paused))
		}
		return m, nil

	case "r":
		if m.opts.Animate {
			m.elapsed = 0
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the body into the viewport, keeping the scroll
// position.
func (m *Model) refresh() {
	if m.width == 0 {
		return
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(renderBody(m.page, m.frame()))
	m.viewport.SetYOffset(offset)
}

func (m Model) frame() Frame {
	return Frame{Width: m.width, Elapsed: m.elapsed, Focus: m.focus}
}

func headerHeight(m Model) int {
	return lipgloss.Height(renderHeader(m.page.Header, m.width)) + 1
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(m.page.Header, m.width)
	footer := renderFooter(&m)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer)
}

// Elapsed returns the animation clock.
func (m Model) Elapsed() time.Duration { return m.elapsed }

// Focus returns the focused card index.
func (m Model) Focus() int { return m.focus }

// Paused reports whether the animation clock is stopped.
func (m Model) Paused() bool { return m.paused }
