package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// renderBlock dispatches on the block type. Unknown blocks render as
// nothing.
func renderBlock(b page.Block, width int, elapsed time.Duration) string {
	switch b := b.(type) {
	case *page.Fields:
		return renderFields(b, width)
	case *page.Note:
		return renderNote(b, width)
	case *page.Gauges:
		return renderGauges(b, width)
	case *page.Stats:
		return renderStats(b, width)
	case *page.LogStream:
		return renderLogStream(b, width)
	case *page.Bullets:
		return renderBullets(b, width)
	case *page.DiagramBlock:
		return renderDiagram(b.Layout, width, elapsed)
	default:
		return ""
	}
}

// renderFields lays out label/value rows with a rule under each. Values
// that do not fit beside their label drop to the following lines.
func renderFields(f *page.Fields, width int) string {
	var lines []string
	for _, row := range f.Rows {
		label := fieldLabelStyle.Render(row.Label)
		value := toneStyle(row.Tone)

		if lipgloss.Width(row.Label)+1+lipgloss.Width(row.Value) <= width {
			lines = append(lines, spread(label, value.Render(row.Value), width))
		} else {
			lines = append(lines, label)
			for _, l := range wrapText(row.Value, width) {
				lines = append(lines, value.Width(width).Align(lipgloss.Right).Render(l))
			}
		}
		lines = append(lines, cardRuleStyle.Render(rule(width)))
	}
	return strings.Join(lines, "\n")
}

func renderNote(n *page.Note, width int) string {
	return noteStyle.Render(strings.Join(wrapText(n.Text, maxInt(width-2, 1)), "\n"))
}

// renderGauges draws each gauge as a label/reading line over a bar.
func renderGauges(g *page.Gauges, width int) string {
	var lines []string
	for i, item := range g.Items {
		if i > 0 {
			lines = append(lines, "")
		}
		reading := toneStyle(item.Tone).Render(item.Reading)
		label := truncate(item.Label, width-lipgloss.Width(item.Reading)-1)
		lines = append(lines, spread(gaugeLabelStyle.Render(label), reading, width))
		lines = append(lines, gaugeBar(item, width))
	}
	return strings.Join(lines, "\n")
}

// gaugeBar renders a gauge's fixed percentage.
func gaugeBar(g page.Gauge, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(toneColor(g.Tone))),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = string(colorTextMuted)
	return bar.ViewAs(float64(clamp(g.Percent, 0, 100)) / 100)
}

// renderStats draws label/value tiles two to a row.
func renderStats(s *page.Stats, width int) string {
	tileWidth := maxInt((width-1)/2, 1)

	var rows []string
	for i := 0; i < len(s.Items); i += 2 {
		var tiles []string
		for j := i; j < minInt(i+2, len(s.Items)); j++ {
			item := s.Items[j]
			body := statLabelStyle.Render(truncate(strings.ToUpper(item.Label), tileWidth-2)) + "\n" +
				toneStyle(item.Tone).Bold(true).Render(truncate(item.Value, tileWidth-2))
			if j > i {
				tiles = append(tiles, " ")
			}
			tiles = append(tiles, statTileStyle.Width(tileWidth).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(rows, "\n")
}

// renderLogStream draws the scripted data stream. Step and ok lines get
// a coloured prompt; payload lines are indented behind a rule.
func renderLogStream(s *page.LogStream, width int) string {
	var lines []string
	for _, l := range s.Lines {
		switch l.Kind {
		case page.LogPayload:
			wrapped := wrapText(l.Text, maxInt(width-2, 1))
			lines = append(lines, logPayloadStyle.Render(strings.Join(wrapped, "\n")))

		default:
			prompt := logPromptStyle.Render(">")
			if l.Kind == page.LogOK {
				prompt = logOKStyle.Render(">")
			}
			for i, part := range wrapText(l.Text, maxInt(width-2, 1)) {
				lead := prompt + " "
				if i > 0 {
					lead = "  "
				}
				lines = append(lines, lead+logTextStyle.Render(part))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// renderBullets draws one shaded row per bullet.
func renderBullets(b *page.Bullets, width int) string {
	var rows []string
	for _, item := range b.Items {
		icon := " "
		if item.Icon != nil {
			icon = toneStyle(item.Tone).Render(item.Icon.Symbol())
		}
		text := truncate(item.Text, maxInt(width-5, 1))
		rows = append(rows, bulletRowStyle.Width(width).Render(fmt.Sprintf(" %s  %s", icon, text)))
	}
	return strings.Join(rows, "\n")
}
