package tui

import (
	"strings"
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/charmbracelet/lipgloss"
)

// wideLayoutMin is the width at which the three-column grid is used.
// Narrower terminals stack every panel in a single column.
const wideLayoutMin = 110

// gridColumns is the total span of the layout grid.
const gridColumns = 12

// Frame is everything a render depends on besides the page itself.
type Frame struct {
	Width   int
	Elapsed time.Duration
	// Focus is the index of the focused card in column order, or -1.
	Focus int
}

// Render produces the full static page: header and body. It is a pure
// function of its arguments.
func Render(p page.Page, f Frame) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(p.Header, f.Width),
		"",
		renderBody(p, f),
	)
}

// renderBody lays out the grid columns.
func renderBody(p page.Page, f Frame) string {
	if f.Width < wideLayoutMin {
		return renderStacked(p, f)
	}
	return renderColumns(p, f)
}

// columnWidths splits the usable width by span, leaving a one-cell
// gutter between columns. The last column absorbs rounding.
func columnWidths(cols []page.Column, width int) []int {
	if len(cols) == 0 {
		return nil
	}
	usable := width - (len(cols) - 1)
	widths := make([]int, len(cols))
	used := 0
	for i, c := range cols {
		if i == len(cols)-1 {
			widths[i] = usable - used
			break
		}
		widths[i] = usable * c.Span / gridColumns
		used += widths[i]
	}
	return widths
}

func renderColumns(p page.Page, f Frame) string {
	widths := columnWidths(p.Columns, f.Width)
	rendered := make([]string, len(p.Columns))

	// Columns without a tall card are rendered first so tall cards can
	// stretch to the tallest of them.
	focusBase := make([]int, len(p.Columns))
	idx := 0
	for i, col := range p.Columns {
		focusBase[i] = idx
		idx += countCards(col)
	}

	tallest := 0
	for i, col := range p.Columns {
		if hasTallCard(col) {
			continue
		}
		rendered[i] = renderColumn(col, widths[i], 0, focusBase[i], f)
		tallest = maxInt(tallest, lipgloss.Height(rendered[i]))
	}
	for i, col := range p.Columns {
		if rendered[i] == "" {
			rendered[i] = renderColumn(col, widths[i], tallest, focusBase[i], f)
		}
	}

	parts := make([]string, 0, len(rendered)*2)
	for i, r := range rendered {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, r)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderStacked(p page.Page, f Frame) string {
	var parts []string
	idx := 0
	for _, col := range p.Columns {
		parts = append(parts, renderColumn(col, f.Width, 0, idx, f))
		idx += countCards(col)
	}
	return strings.Join(parts, "\n\n")
}

// renderColumn stacks a column's panels with a blank line between them.
// tallHeight is the minimum height for tall cards.
func renderColumn(col page.Column, width, tallHeight, focusBase int, f Frame) string {
	var parts []string
	idx := focusBase
	for _, panel := range col.Panels {
		switch panel := panel.(type) {
		case *page.Card:
			minHeight := 0
			if panel.Variant == page.VariantTall {
				minHeight = tallHeight
			}
			parts = append(parts, renderCard(panel, width, minHeight, idx == f.Focus, f.Elapsed))
			idx++
		case *page.Banner:
			parts = append(parts, renderBanner(panel, width))
		}
	}
	return strings.Join(parts, "\n\n")
}

func countCards(col page.Column) int {
	n := 0
	for _, panel := range col.Panels {
		if _, ok := panel.(*page.Card); ok {
			n++
		}
	}
	return n
}

func hasTallCard(col page.Column) bool {
	for _, panel := range col.Panels {
		if c, ok := panel.(*page.Card); ok && c.Variant == page.VariantTall {
			return true
		}
	}
	return false
}
