package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/pkg/motion"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomGlyph(t *testing.T) {
	assert.Equal(t, '◐', atomGlyph(true, 0))
	assert.Equal(t, '◓', atomGlyph(true, atomSpinPeriod/4))
	assert.Equal(t, '∘', atomGlyph(false, 0))
	assert.Equal(t, '∘', atomGlyph(false, atomSpinPeriod/4))
}

func TestHexNodeSettled(t *testing.T) {
	out := ansi.Strip(renderHexNode(page.NodeSpec{Label: "N-01", Active: true}, motion.Settled))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, nodeHeight)

	assert.Equal(t, nodeOutline[0], lines[0])
	assert.Equal(t, nodeOutline[2], lines[2])
	assert.Equal(t, string(atomGlyph(true, motion.Settled)), string([]rune(lines[1])[nodeAnchorX]))
	assert.Equal(t, "N-01", strings.TrimSpace(lines[3]))
}

func TestHexNodeInactive(t *testing.T) {
	out := ansi.Strip(renderHexNode(page.NodeSpec{Label: "N-09"}, motion.Settled))
	assert.Contains(t, out, "∘")
	assert.Contains(t, out, "N-09")
}

func TestHexNodeEntrance(t *testing.T) {
	n := page.NodeSpec{Label: "N-01", Active: true}

	seed := ansi.Strip(renderHexNode(n, 0))
	assert.Contains(t, seed, "·")
	assert.NotContains(t, seed, "N-01")

	// Around 150ms the spring is past the seed stage but not yet full size.
	small := ansi.Strip(renderHexNode(n, 150*time.Millisecond))
	assert.Contains(t, small, "⬡")
	assert.NotContains(t, small, "N-01")

	full := ansi.Strip(renderHexNode(n, motion.Settled))
	assert.Contains(t, full, "N-01")
}

func TestDiagramShowsSixNodes(t *testing.T) {
	c := drawDiagram(page.Diagram(), 43, diagramHeight, motion.Settled)
	out := c.plain()

	for i := 1; i <= 6; i++ {
		label := fmt.Sprintf("N-%02d", i)
		assert.Equal(t, 1, strings.Count(out, label), label)
	}
	assert.Equal(t, 6, strings.Count(out, nodeOutline[2]))
	assert.Equal(t, 1, strings.Count(out, "CORE"))
	assert.Equal(t, 1, strings.Count(out, "Ru"))
	assert.Contains(t, out, "•")
	assert.Contains(t, out, "∘")
}

func TestDiagramNodesAtEntrance(t *testing.T) {
	out := drawDiagram(page.Diagram(), 43, diagramHeight, 0).plain()
	assert.NotContains(t, out, "N-01")
	assert.Equal(t, 1, strings.Count(out, "CORE"))
}

func TestDiagramRingsRotate(t *testing.T) {
	a := drawDiagram(page.Diagram(), 43, diagramHeight, motion.Settled).plain()
	b := drawDiagram(page.Diagram(), 43, diagramHeight, motion.Settled+time.Second).plain()
	assert.NotEqual(t, a, b)
}

func TestDiagramIsDeterministic(t *testing.T) {
	layout := page.Diagram()
	a := renderDiagram(layout, 45, 3*time.Second)
	b := renderDiagram(layout, 45, 3*time.Second)
	assert.Equal(t, a, b)

	lines := strings.Split(ansi.Strip(a), "\n")
	assert.Len(t, lines, diagramHeight+2)
}

func TestProject(t *testing.T) {
	x, y := project(page.Point{X: 50, Y: 50}, 41, 21)
	assert.Equal(t, 20, x)
	assert.Equal(t, 10, y)

	x, y = project(page.Point{X: 0, Y: 100}, 41, 21)
	assert.Equal(t, 0, x)
	assert.Equal(t, 20, y)
}
