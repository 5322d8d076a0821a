package tui

import (
	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Color Palette — cyberpunk on near-black
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBgPanel   = lipgloss.Color("#0b1020")
	colorBgSurface = lipgloss.Color("#121a2e")

	// Text
	colorText      = lipgloss.Color("#e6f7ff")
	colorTextDim   = lipgloss.Color("#7d8ca3")
	colorTextMuted = lipgloss.Color("#3b4660")

	// Accents
	colorPrimary     = lipgloss.Color("#00f0ff")
	colorPrimaryDim  = lipgloss.Color("#0a6b75")
	colorSecondary   = lipgloss.Color("#ff2bd6")
	colorAccent      = lipgloss.Color("#f5e642")
	colorSuccess     = lipgloss.Color("#22c55e")
	colorDestructive = lipgloss.Color("#ff3b5c")
	colorWhite       = lipgloss.Color("#ffffff")

	// Structural
	colorGrid    = lipgloss.Color("#122a33")
	colorLink    = lipgloss.Color("#0e5560")
	colorDivider = lipgloss.Color("#1c2a44")
)

// toneColor resolves a palette role from the view tree.
func toneColor(t page.Tone) lipgloss.Color {
	switch t {
	case page.TonePrimary:
		return colorPrimary
	case page.ToneSecondary:
		return colorSecondary
	case page.ToneAccent:
		return colorAccent
	case page.ToneSuccess:
		return colorSuccess
	case page.ToneDestructive:
		return colorDestructive
	case page.ToneMuted:
		return colorTextDim
	default:
		return colorText
	}
}

func toneStyle(t page.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(toneColor(t))
}

// ────────────────────────────────────────────────────────────
// Borders
// ────────────────────────────────────────────────────────────

// cyberBorder clips the top-left and bottom-right corners.
var cyberBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╱",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "╱",
}

// cyberBorderInverse clips the other two corners.
var cyberBorderInverse = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "┌",
	TopRight:    "╲",
	BottomLeft:  "╲",
	BottomRight: "┘",
}

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	headerRuleStyle = lipgloss.NewStyle().
			Foreground(colorPrimaryDim)

	badgeStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Background(colorBgSurface).
			Padding(0, 1)

	headerSubtitleStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	readoutLabelStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)
)

// Cards
var (
	cardStyle = lipgloss.NewStyle().
			Border(cyberBorder).
			BorderForeground(colorPrimaryDim).
			Padding(0, 1)

	cardFocusedStyle = lipgloss.NewStyle().
				Border(cyberBorder).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	cardRuleStyle = lipgloss.NewStyle().
			Foreground(colorDivider)

	glitchPrimaryStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)

	glitchSecondaryStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)
)

// Card content
var (
	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	noteStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorPrimaryDim).
			PaddingLeft(1)

	gaugeLabelStyle = lipgloss.NewStyle().
			Foreground(colorText)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	statTileStyle = lipgloss.NewStyle().
			Background(colorBgPanel).
			Padding(0, 1)

	logPromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	logOKStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	logTextStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	logPayloadStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorDivider).
			PaddingLeft(1)

	bulletRowStyle = lipgloss.NewStyle().
			Background(colorBgPanel).
			Foreground(colorText)
)

// Banner
var (
	bannerStyle = lipgloss.NewStyle().
			Border(cyberBorderInverse).
			BorderForeground(colorDestructive).
			Padding(0, 1)

	bannerTitleStyle = lipgloss.NewStyle().
				Foreground(colorDestructive).
				Bold(true)

	bannerTextStyle = lipgloss.NewStyle().
			Foreground(colorDestructive).
			Faint(true)
)

// Diagram canvas
var (
	gridStyle = lipgloss.NewStyle().
			Foreground(colorGrid)

	linkStyle = lipgloss.NewStyle().
			Foreground(colorLink)

	coreStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	coreDimStyle = lipgloss.NewStyle().
			Foreground(colorPrimaryDim)

	nodeActiveStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	nodeInactiveStyle = lipgloss.NewStyle().
				Foreground(colorTextMuted)

	atomActiveStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	nodeLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	diagramFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimaryDim)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusAccentStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(colorBgSurface).
				Bold(true).
				Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)
