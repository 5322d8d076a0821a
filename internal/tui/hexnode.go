package tui

import (
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/pkg/motion"
)

// Label node geometry. The anchor is the centre of the hex row.
const (
	nodeWidth   = 7
	nodeHeight  = 4
	nodeAnchorX = 3
	nodeAnchorY = 1
)

// atomSpinPeriod is one "spin-slow" revolution of the centre atom.
const atomSpinPeriod = 3 * time.Second

var (
	nodeOutline = [3]string{
		" ╱‾‾‾╲ ",
		"<     >",
		" ╲___╱ ",
	}
	atomPhases = []rune{'◐', '◓', '◑', '◒'}
)

// Spring thresholds for the entrance transition.
const (
	nodeSeedScale  = 0.35
	nodeSmallScale = 0.8
)

// atomGlyph returns the centre glyph of a node at the given time.
func atomGlyph(active bool, elapsed time.Duration) rune {
	if !active {
		return '∘'
	}
	return atomPhases[motion.Step(elapsed, atomSpinPeriod, len(atomPhases))]
}

// stampNode draws a label node with its anchor at (cx, cy).
func stampNode(c *canvas, cx, cy int, n page.NodeSpec, elapsed time.Duration) {
	x0, y0 := cx-nodeAnchorX, cy-nodeAnchorY
	scale := motion.Spring(elapsed)

	switch {
	case scale < nodeSeedScale:
		c.set(cx, cy, '·', inkNodeInactive)
		return
	case scale < nodeSmallScale:
		k := inkNodeInactive
		if n.Active {
			k = inkNodeActive
		}
		c.set(cx, cy, '⬡', k)
		return
	}

	outline := inkNodeInactive
	if n.Active {
		outline = inkNodeActive
	}
	for i, row := range nodeOutline {
		c.text(x0, y0+i, row, outline, true)
	}

	atom := inkNodeInactive
	if n.Active {
		atom = inkAtom
	}
	c.set(cx, cy, atomGlyph(n.Active, elapsed), atom)

	label := []rune(n.Label)
	lx := x0 + (nodeWidth-len(label))/2
	c.text(lx, y0+nodeHeight-1, string(label), inkLabel, false)
}

// renderHexNode renders a single node on its own.
func renderHexNode(n page.NodeSpec, elapsed time.Duration) string {
	c := newCanvas(nodeWidth, nodeHeight)
	stampNode(c, nodeAnchorX, nodeAnchorY, n, elapsed)
	return c.render()
}
