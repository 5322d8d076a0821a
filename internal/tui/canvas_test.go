package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCanvasLine(t *testing.T) {
	c := newCanvas(10, 5)
	c.line(0, 0, 9, 4, '*', inkLink)

	assert.Equal(t, '*', c.at(0, 0).r)
	assert.Equal(t, '*', c.at(9, 4).r)

	// A line that is more wide than tall touches every column once.
	for x := 0; x < 10; x++ {
		hits := 0
		for y := 0; y < 5; y++ {
			if c.at(x, y).r == '*' {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "column %d", x)
	}
}

func TestCanvasVerticalLine(t *testing.T) {
	c := newCanvas(3, 6)
	c.line(1, 5, 1, 0, '│', inkLink)
	for y := 0; y < 6; y++ {
		assert.Equal(t, '│', c.at(1, y).r, "row %d", y)
	}
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := newCanvas(4, 2)
	c.set(-1, 0, 'x', inkGrid)
	c.set(4, 0, 'x', inkGrid)
	c.set(0, 2, 'x', inkGrid)
	c.text(2, 1, "abcdef", inkLabel, true)

	assert.Equal(t, "    \n  ab", c.plain())
}

func TestCanvasTransparentText(t *testing.T) {
	c := newCanvas(5, 1)
	c.text(0, 0, "xxxxx", inkGrid, true)
	c.text(0, 0, "a b c", inkLabel, false)
	assert.Equal(t, "axbxc", c.plain())
}

func TestCanvasRenderMatchesPlain(t *testing.T) {
	c := newCanvas(8, 3)
	c.line(0, 1, 7, 1, '─', inkLink)
	c.text(2, 0, "ab", inkLabel, false)
	c.set(7, 2, '•', inkRingA)

	assert.Equal(t, c.plain(), ansi.Strip(c.render()))
	assert.Len(t, strings.Split(c.render(), "\n"), 3)
}
