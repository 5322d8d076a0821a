package page

// Glyph is anything that can be drawn as a small icon: a stable name
// for markup and a single-cell symbol for terminals.
type Glyph interface {
	Name() string
	Symbol() string
}

// Icon is the built-in glyph set.
type Icon string

const (
	IconShare    Icon = "share"
	IconActivity Icon = "activity"
	IconHexagon  Icon = "hexagon"
	IconTerminal Icon = "terminal"
	IconNetwork  Icon = "network"
	IconLayers   Icon = "layers"
	IconZap      Icon = "zap"
	IconShield   Icon = "shield"
	IconAtom     Icon = "atom"
)

var iconSymbols = map[Icon]string{
	IconShare:    "⋲",
	IconActivity: "∿",
	IconHexagon:  "⬡",
	IconTerminal: "▸",
	IconNetwork:  "⋈",
	IconLayers:   "≡",
	IconZap:      "ϟ",
	IconShield:   "◈",
	IconAtom:     "⊛",
}

// Name implements Glyph.
func (i Icon) Name() string { return string(i) }

// Symbol implements Glyph. Unknown icons fall back to a bullet.
func (i Icon) Symbol() string {
	if s, ok := iconSymbols[i]; ok {
		return s
	}
	return "•"
}
