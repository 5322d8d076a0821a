package web

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/zenith/internal/page"
)

// The template cannot type-switch over panels and blocks, so the page
// tree is flattened into these structs once at startup.

type pageView struct {
	Title     string
	Badge     string
	Subtitle  string
	Aesthetic string
	Readouts  []fieldView
	Columns   []columnView
}

type columnView struct {
	Span   int
	Panels []panelView
}

type panelView struct {
	Banner bool
	Tall   bool
	Title  string
	Icon   *iconView
	Text   string
	Blocks []blockView
}

type iconView struct {
	Name   string
	Symbol string
}

type blockView struct {
	Kind    string
	Text    string
	Fields  []fieldView
	Gauges  []gaugeView
	Lines   []logLineView
	Bullets []bulletView
	Diagram *diagramView
}

type fieldView struct {
	Label string
	Value string
	Tone  string
}

type gaugeView struct {
	Label   string
	Reading string
	Percent int
	Tone    string
}

type logLineView struct {
	Kind string
	Text string
}

type bulletView struct {
	Icon *iconView
	Text string
	Tone string
}

type diagramView struct {
	CoreSymbol string
	CoreLabel  string
	CoreX      int
	CoreY      int
	Rings      []ringView
	Links      []page.Link
	Nodes      []nodeView
}

type ringView struct {
	Diameter int
	Duration string
	Reverse  bool
	Tone     string
}

type nodeView struct {
	Label  string
	Active bool
	X      int
	Y      int
	Delay  string
}

// nodeStaggerMs offsets each node's entrance animation.
const nodeStaggerMs = 80

func newPageView(p page.Page) pageView {
	v := pageView{
		Title:     p.Header.Title,
		Badge:     p.Header.Badge,
		Subtitle:  p.Header.Subtitle,
		Aesthetic: p.Aesthetic,
	}
	for _, r := range p.Header.Readouts {
		v.Readouts = append(v.Readouts, fieldView{Label: r.Label, Value: r.Value, Tone: r.Tone.String()})
	}
	for _, col := range p.Columns {
		cv := columnView{Span: col.Span}
		for _, panel := range col.Panels {
			cv.Panels = append(cv.Panels, newPanelView(panel))
		}
		v.Columns = append(v.Columns, cv)
	}
	return v
}

func newPanelView(panel page.Panel) panelView {
	switch panel := panel.(type) {
	case *page.Card:
		pv := panelView{
			Title: panel.Title,
			Tall:  panel.Variant == page.VariantTall,
			Icon:  newIconView(panel.Icon),
		}
		for _, b := range panel.Blocks {
			pv.Blocks = append(pv.Blocks, newBlockView(b))
		}
		return pv
	case *page.Banner:
		return panelView{Banner: true, Title: panel.Title, Icon: newIconView(panel.Icon), Text: panel.Text}
	default:
		return panelView{}
	}
}

func newIconView(g page.Glyph) *iconView {
	if g == nil {
		return nil
	}
	return &iconView{Name: g.Name(), Symbol: g.Symbol()}
}

func newBlockView(b page.Block) blockView {
	switch b := b.(type) {
	case *page.Fields:
		return blockView{Kind: "fields", Fields: newFieldViews(b.Rows)}
	case *page.Note:
		return blockView{Kind: "note", Text: b.Text}
	case *page.Gauges:
		bv := blockView{Kind: "gauges"}
		for _, g := range b.Items {
			bv.Gauges = append(bv.Gauges, gaugeView{Label: g.Label, Reading: g.Reading, Percent: g.Percent, Tone: g.Tone.String()})
		}
		return bv
	case *page.Stats:
		return blockView{Kind: "stats", Fields: newFieldViews(b.Items)}
	case *page.LogStream:
		bv := blockView{Kind: "log"}
		for _, l := range b.Lines {
			bv.Lines = append(bv.Lines, logLineView{Kind: logKindName(l.Kind), Text: l.Text})
		}
		return bv
	case *page.Bullets:
		bv := blockView{Kind: "bullets"}
		for _, item := range b.Items {
			bv.Bullets = append(bv.Bullets, bulletView{Icon: newIconView(item.Icon), Text: item.Text, Tone: item.Tone.String()})
		}
		return bv
	case *page.DiagramBlock:
		return blockView{Kind: "diagram", Diagram: newDiagramView(b.Layout)}
	default:
		return blockView{}
	}
}

func newFieldViews(rows []page.Field) []fieldView {
	out := make([]fieldView, 0, len(rows))
	for _, f := range rows {
		out = append(out, fieldView{Label: f.Label, Value: f.Value, Tone: f.Tone.String()})
	}
	return out
}

func logKindName(k page.LogKind) string {
	switch k {
	case page.LogOK:
		return "ok"
	case page.LogPayload:
		return "payload"
	default:
		return "step"
	}
}

func newDiagramView(l page.DiagramLayout) *diagramView {
	dv := &diagramView{
		CoreSymbol: l.Core.Symbol,
		CoreLabel:  l.Core.Label,
		CoreX:      l.Core.At.X,
		CoreY:      l.Core.At.Y,
		Links:      l.Links,
	}
	for _, r := range l.Rings {
		dv.Rings = append(dv.Rings, ringView{
			Diameter: r.Diameter,
			Duration: formatSeconds(r.Period.Seconds()),
			Reverse:  r.Reverse,
			Tone:     r.Tone.String(),
		})
	}
	for i, n := range l.Nodes {
		dv.Nodes = append(dv.Nodes, nodeView{
			Label:  n.Label,
			Active: n.Active,
			X:      n.At.X,
			Y:      n.At.Y,
			Delay:  fmt.Sprintf("%dms", i*nodeStaggerMs),
		})
	}
	return dv
}

func formatSeconds(s float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", s), "0"), ".") + "s"
}
