package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/charmbracelet/lipgloss"
)

// ink selects the style a canvas cell is drawn with.
type ink int

const (
	inkBlank ink = iota
	inkGrid
	inkLink
	inkRingA
	inkRingB
	inkCore
	inkCoreDim
	inkNodeActive
	inkNodeInactive
	inkAtom
	inkLabel
)

func (c *canvas) styleFor(k ink) lipgloss.Style {
	switch k {
	case inkGrid:
		return gridStyle
	case inkLink:
		return linkStyle
	case inkRingA:
		return toneStyle(c.ringTone(0))
	case inkRingB:
		return toneStyle(c.ringTone(1))
	case inkCore:
		return coreStyle
	case inkCoreDim:
		return coreDimStyle
	case inkNodeActive:
		return nodeActiveStyle
	case inkNodeInactive:
		return nodeInactiveStyle
	case inkAtom:
		return atomActiveStyle
	case inkLabel:
		return nodeLabelStyle
	default:
		return lipgloss.NewStyle()
	}
}

type cell struct {
	r rune
	k ink
}

// canvas is a fixed-size grid of single-width cells. Later draws
// overwrite earlier ones; out-of-bounds writes are dropped.
type canvas struct {
	w, h  int
	cells [][]cell

	// ringTones colours inkRingA and inkRingB.
	ringTones []page.Tone
}

func (c *canvas) ringTone(i int) page.Tone {
	if i < len(c.ringTones) {
		return c.ringTones[i]
	}
	return page.ToneMuted
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: maxInt(w, 0), h: maxInt(h, 0)}
	c.cells = make([][]cell, c.h)
	for y := range c.cells {
		row := make([]cell, c.w)
		for x := range row {
			row[x] = cell{r: ' ', k: inkBlank}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, k ink) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, k: k}
}

func (c *canvas) at(x, y int) cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return cell{r: ' '}
	}
	return c.cells[y][x]
}

// text writes s starting at (x, y). Spaces in s are transparent when
// opaque is false.
func (c *canvas) text(x, y int, s string, k ink, opaque bool) {
	i := 0
	for _, r := range s {
		if r != ' ' || opaque {
			c.set(x+i, y, r, k)
		}
		i++
	}
}

// line draws a straight segment with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int, r rune, k ink) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		c.set(x0, y0, r, k)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// render joins the grid into styled lines, one style call per run of
// equally-inked cells.
func (c *canvas) render() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].k == row[start].k {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cl := range row[start:x] {
				run = append(run, cl.r)
			}
			if row[start].k == inkBlank {
				b.WriteString(string(run))
			} else {
				b.WriteString(c.styleFor(row[start].k).Render(string(run)))
			}
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// plain returns the grid without styling, used in tests.
func (c *canvas) plain() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		rs := make([]rune, len(row))
		for x, cl := range row {
			rs[x] = cl.r
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}
