package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/internal/structure"
	"github.com/Mr-Dark-debug/zenith/pkg/motion"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settledFrame(width int) Frame {
	return Frame{Width: width, Elapsed: motion.Settled, Focus: -1}
}

func TestRenderHeader(t *testing.T) {
	p := page.Build(structure.Monolith())
	out := ansi.Strip(Render(p, settledFrame(140)))

	assert.Contains(t, out, "Zenith-Nexus")
	assert.Contains(t, out, "V.3.0.1")
	assert.Contains(t, out, "ASTRO-METALLIC MONOLITH ANALYSIS")
	assert.Contains(t, out, "SYSTEM STATUS")
	assert.Contains(t, out, "ONLINE")
	assert.Contains(t, out, "SECURE LINK")
	assert.Contains(t, out, "ENCRYPTED")
}

func TestRenderNarrowHidesReadouts(t *testing.T) {
	p := page.Build(structure.Monolith())
	out := ansi.Strip(Render(p, settledFrame(72)))

	assert.Contains(t, out, "Zenith-Nexus")
	assert.NotContains(t, out, "SYSTEM STATUS")
}

func TestRenderContainsEveryCard(t *testing.T) {
	p := page.Build(structure.Monolith())

	for _, width := range []int{72, 140} {
		out := ansi.Strip(Render(p, settledFrame(width)))

		for _, title := range []string{"IDENTITY MATRIX", "SYSTEM PROPERTIES", "STRUCTURAL VIZ", "DATA STREAM", "ARCHITECTURE", "SECURITY PROTOCOL"} {
			assert.Contains(t, out, title, "width %d", width)
		}
		for i := 1; i <= 6; i++ {
			label := fmt.Sprintf("N-%02d", i)
			assert.Equal(t, 1, strings.Count(out, label), "%s at width %d", label, width)
		}
		assert.Contains(t, out, "AMD-ZENITH-01")
		assert.Contains(t, out, "C138H72Co6N12Ru")
		assert.Contains(t, out, "Ru(II)")
		assert.Contains(t, out, "6x Co(II)")
		assert.Contains(t, out, "Pi-Conjugation")
		assert.Contains(t, out, "READY.")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	p := page.Build(structure.Monolith())
	f := Frame{Width: 140, Elapsed: 4200 * time.Millisecond, Focus: 2}

	assert.Equal(t, Render(p, f), Render(p, f))
}

func TestWideLayoutIsThreeColumns(t *testing.T) {
	p := page.Build(structure.Monolith())
	out := ansi.Strip(Render(p, settledFrame(140)))

	// The identity and data stream cards start on the same row.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "IDENTITY MATRIX") {
			assert.Contains(t, line, "STRUCTURAL VIZ")
			assert.Contains(t, line, "DATA STREAM")
			return
		}
	}
	t.Fatal("identity card heading not found")
}

func TestColumnWidths(t *testing.T) {
	cols := []page.Column{{Span: 4}, {Span: 5}, {Span: 3}}
	assert.Equal(t, []int{40, 50, 30}, columnWidths(cols, 122))

	w := columnWidths(cols, 131)
	assert.Equal(t, 129, w[0]+w[1]+w[2])
	assert.Nil(t, columnWidths(nil, 100))
}

func TestGlitchTitleOnFocusedCard(t *testing.T) {
	p := page.Build(structure.Monolith())

	bright := ansi.Strip(Render(p, Frame{Width: 140, Elapsed: 0, Focus: 0}))
	assert.Contains(t, bright, "IIDENTITY MATRIXX")
	assert.NotContains(t, bright, "SSYSTEM PROPERTIESS")

	dim := ansi.Strip(Render(p, Frame{Width: 140, Elapsed: motion.PulsePeriod / 2, Focus: 0}))
	assert.Contains(t, dim, "IDENTITY MATRIX")
	assert.NotContains(t, dim, "IIDENTITY")

	unfocused := ansi.Strip(Render(p, Frame{Width: 140, Elapsed: 0, Focus: -1}))
	assert.NotContains(t, unfocused, "IIDENTITY")
}

func TestCardWithoutIcon(t *testing.T) {
	card := &page.Card{Title: "Plain", Blocks: []page.Block{&page.Note{Text: "body"}}}
	out := ansi.Strip(renderCard(card, 30, 0, false, 0))

	lines := strings.Split(out, "\n")
	require.True(t, len(lines) > 2)
	assert.Equal(t, "PLAIN", strings.TrimSpace(strings.Trim(lines[1], "│")))
	assert.Contains(t, out, "body")
}

func TestCardMinHeight(t *testing.T) {
	card := &page.Card{Title: "Tall", Icon: page.IconHexagon}
	out := renderCard(card, 30, 12, false, 0)
	assert.Len(t, strings.Split(out, "\n"), 12)
}

func TestFieldsRenderRecordValues(t *testing.T) {
	rec := structure.Monolith()
	f := &page.Fields{Rows: []page.Field{
		{Label: "CLASS", Value: rec.Identity.Class},
		{Label: "FORMULA", Value: rec.Identity.Formula},
	}}
	out := ansi.Strip(renderFields(f, 120))
	assert.Contains(t, out, "Organometallic Coordination Polymer Cluster")
	assert.Contains(t, out, "C138H72Co6N12Ru")

	narrow := ansi.Strip(renderFields(f, 24))
	assert.Contains(t, narrow, "CLASS")
	assert.Contains(t, narrow, "Organometallic")
}

func TestNoteKeepsDescription(t *testing.T) {
	rec := structure.Monolith()
	out := ansi.Strip(renderNote(&page.Note{Text: rec.Identity.Description}, 400))
	assert.Contains(t, out, rec.Identity.Description)
}

func TestGaugeBarsUseFixedPercentages(t *testing.T) {
	card, ok := cardTitled(page.Build(structure.Monolith()), "System Properties")
	require.True(t, ok)
	gauges := card.Blocks[0].(*page.Gauges)

	want := []int{85, 92, 78}
	for i, g := range gauges.Items {
		bar := ansi.Strip(gaugeBar(g, 100))
		assert.Equal(t, want[i], strings.Count(bar, "█"), g.Label)
		assert.Equal(t, 100-want[i], strings.Count(bar, "░"), g.Label)
	}

	out := ansi.Strip(renderGauges(gauges, 60))
	assert.Contains(t, out, "THERMAL STABILITY")
	assert.Contains(t, out, "450°C")
	assert.Contains(t, out, "OPTIMAL")
}

func TestLogStreamEndsReady(t *testing.T) {
	card, ok := cardTitled(page.Build(structure.Monolith()), "Data Stream")
	require.True(t, ok)

	out := ansi.Strip(renderLogStream(card.Blocks[0].(*page.LogStream), 200))
	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)

	assert.Equal(t, "> INITIALIZING SEQUENCE...", lines[0])
	assert.Equal(t, "> READY.", lines[len(lines)-1])
	assert.Contains(t, out, structure.Monolith().Structure.SMILES)
}

func TestLogStreamWrapsNarrow(t *testing.T) {
	s := &page.LogStream{Lines: []page.LogLine{{Kind: page.LogStep, Text: "CONNECTING TO IPFS NODE..."}}}
	lines := strings.Split(ansi.Strip(renderLogStream(s, 17)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "> CONNECTING TO", lines[0])
	assert.Equal(t, "  IPFS NODE...", lines[1])
}

func TestBulletsAndBanner(t *testing.T) {
	b := &page.Bullets{Items: []page.Bullet{{Icon: page.IconZap, Text: "Pi-Conjugation", Tone: page.ToneAccent}}}
	out := ansi.Strip(renderBullets(b, 30))
	assert.Contains(t, out, "ϟ  Pi-Conjugation")

	banner := ansi.Strip(renderBanner(&page.Banner{Icon: page.IconShield, Title: "Security Protocol", Text: "KEEP OUT"}, 40))
	assert.Contains(t, banner, "◈ SECURITY PROTOCOL")
	assert.Contains(t, banner, "KEEP OUT")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"alpha beta", "gamma"}, wrapText("alpha beta gamma", 10))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, wrapText("abcdefghij", 4))
	assert.Nil(t, wrapText("x", 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel...", truncate("hello world", 6))
	assert.Equal(t, "he", truncate("hello", 2))
	assert.Equal(t, "", truncate("hello", 0))
}

func cardTitled(p page.Page, title string) (*page.Card, bool) {
	for _, c := range p.Cards() {
		if c.Title == title {
			return c, true
		}
	}
	return nil, false
}
