package tui

import (
	"strings"
	"testing"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/internal/structure"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestGradientColorEndStops(t *testing.T) {
	n := len("Zenith-Nexus")

	assert.Equal(t, string(colorPrimary), gradientColor(0, n).Hex())
	assert.Equal(t, string(colorSecondary), gradientColor(n-1, n).Hex())
	assert.Equal(t, string(colorPrimary), gradientColor(0, 1).Hex())

	mid := gradientColor(n/2, n).Hex()
	assert.NotEqual(t, string(colorPrimary), mid)
	assert.NotEqual(t, string(colorSecondary), mid)
}

func TestGradientTitleColoursLetters(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(prev)

	out := gradientTitle("Zenith-Nexus")
	assert.Equal(t, "Zenith-Nexus", ansi.Strip(out))

	first := strings.Index(out, "38;2;0;240;255m")
	last := strings.Index(out, "38;2;255;43;214m")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, last, first)
	assert.True(t, strings.HasSuffix(ansi.Strip(out[last:]), "s"))

	assert.Equal(t, "", gradientTitle(""))
}

func TestFooterFitsOneLine(t *testing.T) {
	for _, width := range []int{20, 30, 40, 60, 120} {
		m := NewModel(page.Build(structure.Monolith()), DefaultOptions(), nil)
		m.width = width
		footer := renderFooter(&m)
		assert.Equal(t, 1, lipgloss.Height(footer), "width %d", width)
		assert.LessOrEqual(t, lipgloss.Width(footer), width, "width %d", width)
	}
}
