// Package page builds the dashboard's view tree.
//
// The tree is plain data: a header, three grid columns of panels and
// typed content blocks. Renderers (the terminal dashboard and the HTML
// server) walk it with type switches. Building it has no side effects,
// so the same record always yields the same tree.
package page

import "time"

// Tone names a palette role. Renderers pick the concrete colour.
type Tone int

const (
	ToneDefault Tone = iota
	TonePrimary
	ToneSecondary
	ToneAccent
	ToneSuccess
	ToneDestructive
	ToneMuted
)

// String returns the palette role name, used as a CSS class suffix.
func (t Tone) String() string {
	switch t {
	case TonePrimary:
		return "primary"
	case ToneSecondary:
		return "secondary"
	case ToneAccent:
		return "accent"
	case ToneSuccess:
		return "success"
	case ToneDestructive:
		return "destructive"
	case ToneMuted:
		return "muted"
	default:
		return "default"
	}
}

// Variant overrides a card's default chrome.
type Variant int

const (
	VariantDefault Variant = iota
	// VariantTall stretches the card to the full column height.
	VariantTall
)

// Page is the root view.
type Page struct {
	Header  Header
	Columns []Column
	// Aesthetic is the record's display-only metadata tag.
	Aesthetic string
}

// Header is the page chrome above the grid.
type Header struct {
	Title    string
	Badge    string
	Subtitle string
	Readouts []Readout
}

// Readout is a static label/value status pair in the header.
type Readout struct {
	Label string
	Value string
	Tone  Tone
}

// Column is one grid column. Span is out of 12.
type Column struct {
	Span   int
	Panels []Panel
}

// Panel is a top-level item in a column: a *Card or a *Banner.
type Panel interface {
	panel()
}

// Card is the bordered, titled container. A nil Icon omits the icon slot.
type Card struct {
	Title   string
	Icon    Glyph
	Variant Variant
	Blocks  []Block
}

// Banner is the warning strip at the bottom of the right column.
type Banner struct {
	Icon  Glyph
	Title string
	Text  string
}

func (*Card) panel()   {}
func (*Banner) panel() {}

// Block is card content.
type Block interface {
	block()
}

// Field is a label/value row.
type Field struct {
	Label string
	Value string
	Tone  Tone
}

// Fields is a list of label/value rows separated by rules.
type Fields struct {
	Rows []Field
}

// Note is a boxed paragraph.
type Note struct {
	Text string
}

// Gauge is a labelled progress indicator. Percent is 0-100.
type Gauge struct {
	Label   string
	Reading string
	Percent int
	Tone    Tone
}

// Gauges is a stack of progress indicators.
type Gauges struct {
	Items []Gauge
}

// Stats is a two-up grid of label/value tiles.
type Stats struct {
	Items []Field
}

// LogKind selects the prompt marker of a log line.
type LogKind int

const (
	LogStep LogKind = iota
	LogOK
	// LogPayload is an indented raw data line without a prompt.
	LogPayload
)

// LogLine is one line of the scripted data stream.
type LogLine struct {
	Kind LogKind
	Text string
}

// LogStream is the scripted terminal log.
type LogStream struct {
	Lines []LogLine
}

// Bullet is one architecture row.
type Bullet struct {
	Icon Glyph
	Text string
	Tone Tone
}

// Bullets is a list of icon rows.
type Bullets struct {
	Items []Bullet
}

// DiagramBlock embeds the structural diagram.
type DiagramBlock struct {
	Layout DiagramLayout
}

func (*Fields) block()       {}
func (*Note) block()         {}
func (*Gauges) block()       {}
func (*Stats) block()        {}
func (*LogStream) block()    {}
func (*Bullets) block()      {}
func (*DiagramBlock) block() {}

// Point is a position in percent of the diagram box, origin top-left.
type Point struct {
	X int
	Y int
}

// NodeSpec places one label node.
type NodeSpec struct {
	Label  string
	Active bool
	At     Point
}

// Link is a straight connecting line.
type Link struct {
	From Point
	To   Point
}

// Ring is a decorative orbit centred on the core.
type Ring struct {
	// Diameter is in percent of the box height.
	Diameter int
	Period   time.Duration
	Reverse  bool
	Tone     Tone
}

// Core is the central marker.
type Core struct {
	Symbol string
	Label  string
	At     Point
}

// DiagramLayout is the full fixed arrangement.
type DiagramLayout struct {
	Core  Core
	Rings []Ring
	Links []Link
	Nodes []NodeSpec
}
