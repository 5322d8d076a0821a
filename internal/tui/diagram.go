package tui

import (
	"math"
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/pkg/motion"
)

// diagramHeight is the canvas height in rows.
const diagramHeight = 21

// ringDashes is the number of dashes drawn around each ring. Only the
// dashes show rotation, the ring itself is a plain ellipse.
const ringDashes = 14

var (
	ringRunes = []rune{'•', '∘'}
	coreBox   = [4]string{
		"╭──────╮",
		"│      │",
		"│      │",
		"╰──────╯",
	}
)

// project maps a percentage position into canvas cells.
func project(p page.Point, w, h int) (int, int) {
	x := int(math.Round(float64(p.X) * float64(w-1) / 100))
	y := int(math.Round(float64(p.Y) * float64(h-1) / 100))
	return x, y
}

// drawDiagram rasterises the layout onto a new canvas.
func drawDiagram(layout page.DiagramLayout, w, h int, elapsed time.Duration) *canvas {
	c := newCanvas(w, h)
	for _, r := range layout.Rings {
		c.ringTones = append(c.ringTones, r.Tone)
	}

	// Grid background
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x += 4 {
			c.set(x, y, '⋅', inkGrid)
		}
	}

	cx, cy := project(layout.Core.At, w, h)

	// Orbital rings
	for i, ring := range layout.Rings {
		drawRing(c, cx, cy, ring, i, elapsed)
	}

	// Connection lines
	for _, l := range layout.Links {
		x0, y0 := project(l.From, w, h)
		x1, y1 := project(l.To, w, h)
		r := '·'
		if x0 == x1 {
			r = '│'
		} else if y0 == y1 {
			r = '─'
		}
		c.line(x0, y0, x1, y1, r, inkLink)
	}

	drawCore(c, cx, cy, layout.Core, elapsed)

	// Peripheral nodes
	for _, n := range layout.Nodes {
		nx, ny := project(n.At, w, h)
		nx = clamp(nx, nodeAnchorX, maxInt(nodeAnchorX, w-nodeWidth+nodeAnchorX))
		ny = clamp(ny, nodeAnchorY, maxInt(nodeAnchorY, h-nodeHeight+nodeAnchorY))
		stampNode(c, nx, ny, n, elapsed)
	}

	return c
}

// drawRing plots a dashed ellipse whose dashes advance with the ring's
// rotation. Terminal cells are about twice as tall as wide, so the
// horizontal radius is doubled.
func drawRing(c *canvas, cx, cy int, ring page.Ring, index int, elapsed time.Duration) {
	ry := float64(ring.Diameter) * float64(c.h) / 200
	rx := minFloat(ry*2, float64(c.w)/2-1)
	if rx <= 0 || ry <= 0 {
		return
	}

	k := inkRingA
	if index%2 == 1 {
		k = inkRingB
	}
	r := ringRunes[index%len(ringRunes)]

	rot := motion.Angle(elapsed, ring.Period, ring.Reverse)
	samples := int(2*math.Pi*math.Max(rx, ry)) * 2
	for s := 0; s < samples; s++ {
		a := 2 * math.Pi * float64(s) / float64(samples)
		phase := math.Mod((a-rot)*ringDashes/(2*math.Pi), 1)
		if phase < 0 {
			phase++
		}
		if phase >= 0.5 {
			continue
		}
		x := cx + int(math.Round(rx*math.Cos(a)))
		y := cy + int(math.Round(ry*math.Sin(a)))
		c.set(x, y, r, k)
	}
}

// drawCore draws the pulsing core marker centred on (cx, cy).
func drawCore(c *canvas, cx, cy int, core page.Core, elapsed time.Duration) {
	k := inkCoreDim
	if motion.PulseBright(elapsed) {
		k = inkCore
	}

	x0 := cx - len([]rune(coreBox[0]))/2
	y0 := cy - 1
	for i, row := range coreBox {
		c.text(x0, y0+i, row, k, true)
	}
	inner := len([]rune(coreBox[0])) - 2
	c.text(x0+1+centerOffset(core.Symbol, inner), y0+1, core.Symbol, k, false)
	c.text(x0+1+centerOffset(core.Label, inner), y0+2, core.Label, k, false)
}

func centerOffset(s string, width int) int {
	return maxInt(0, (width-len([]rune(s)))/2)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// renderDiagram renders the diagram block framed to the given outer width.
func renderDiagram(layout page.DiagramLayout, width int, elapsed time.Duration) string {
	inner := maxInt(width-2, nodeWidth)
	c := drawDiagram(layout, inner, diagramHeight, elapsed)
	return diagramFrameStyle.Render(c.render())
}
