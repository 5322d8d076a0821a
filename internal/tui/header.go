package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/pkg/motion"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// readoutMinWidth hides the status readouts on narrow terminals.
const readoutMinWidth = 80

// titleStops is the primary → white → secondary title gradient.
var titleStops = []colorful.Color{
	mustHex(colorPrimary),
	mustHex(colorWhite),
	mustHex(colorSecondary),
}

// mustHex parses a palette constant. The palette is fixed at compile
// time, so a parse failure is a programming error.
func mustHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		panic(fmt.Sprintf("tui: bad palette colour %q: %v", c, err))
	}
	return col
}

// gradientColor returns the colour of letter i of n along titleStops.
// The first and last letters take the end stops exactly.
func gradientColor(i, n int) colorful.Color {
	last := titleStops[len(titleStops)-1]
	if n <= 1 || i <= 0 {
		return titleStops[0]
	}
	if i >= n-1 {
		return last
	}
	seg := float64(i) / float64(n-1) * float64(len(titleStops)-1)
	j := minInt(int(seg), len(titleStops)-2)
	return titleStops[j].BlendLab(titleStops[j+1], seg-float64(j)).Clamped()
}

// gradientTitle colours each letter of title along titleStops.
func gradientTitle(title string) string {
	runes := []rune(title)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		c := gradientColor(i, len(runes))
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Hex())).
			Render(string(r)))
	}
	return b.String()
}

// renderHeader produces the page chrome:
//
//	Zenith-Nexus                        SYSTEM STATUS  SECURE LINK
//	[V.3.0.1] ASTRO-METALLIC ...               ONLINE    ENCRYPTED
//	──────────────────────────────────────────────────────────────
func renderHeader(h page.Header, width int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		gradientTitle(h.Title),
		badgeStyle.Render(h.Badge)+"  "+headerSubtitleStyle.Render(strings.ToUpper(h.Subtitle)),
	)

	content := left
	if width >= readoutMinWidth && len(h.Readouts) > 0 {
		var readouts []string
		for i, r := range h.Readouts {
			if i > 0 {
				readouts = append(readouts, "   ")
			}
			readouts = append(readouts, lipgloss.JoinVertical(lipgloss.Right,
				readoutLabelStyle.Render(r.Label),
				toneStyle(r.Tone).Bold(true).Render(r.Value),
			))
		}
		right := lipgloss.JoinHorizontal(lipgloss.Top, readouts...)

		gap := maxInt(width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerBarStyle.Width(width).Render(content),
		headerRuleStyle.Render(rule(width)),
	)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	state := statusAccentStyle.Render("● LIVE")
	switch {
	case !m.opts.Animate:
		state = statusAccentStyle.Render("■ STATIC")
	case m.paused:
		state = statusAccentStyle.Render("❚❚ PAUSED")
	}

	meta := fmt.Sprintf("t+%s  %dfps", motion.FormatClock(m.elapsed), m.opts.FPS)
	if m.page.Aesthetic != "" {
		meta += "  " + m.page.Aesthetic
	}
	left := state + statusStyle.Render(meta)

	right := renderHints([]hint{
		{"tab", "focus"},
		{"↑↓", "scroll"},
		{"p", "pause"},
		{"r", "replay"},
		{"q", "quit"},
	})

	line := left
	if lipgloss.Width(left)+lipgloss.Width(right)+1 <= m.width {
		line = spread(left, right, m.width)
	}

	// The viewport height assumes a single footer row.
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(truncate(line, m.width))
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
