package page

import "github.com/Mr-Dark-debug/zenith/internal/structure"

// Gauge readings shown on the System Properties card. They are fixed
// display values and are not computed from the record's descriptors.
const (
	ThermalStabilityPercent     = 85
	ElectronVelocityPercent     = 92
	SynthesisFeasibilityPercent = 78
)

// Build composes the root view for rec.
func Build(rec structure.Record) Page {
	return Page{
		Header: Header{
			Title:    "Zenith-Nexus",
			Badge:    "V.3.0.1",
			Subtitle: "Astro-Metallic Monolith Analysis",
			Readouts: []Readout{
				{Label: "SYSTEM STATUS", Value: "ONLINE", Tone: ToneAccent},
				{Label: "SECURE LINK", Value: "ENCRYPTED", Tone: TonePrimary},
			},
		},
		Columns: []Column{
			{Span: 4, Panels: []Panel{identityCard(rec), propertiesCard(rec)}},
			{Span: 5, Panels: []Panel{structureCard(rec)}},
			{Span: 3, Panels: []Panel{dataStreamCard(rec), architectureCard(), securityBanner()}},
		},
		Aesthetic: rec.Metadata.AestheticSync,
	}
}

func identityCard(rec structure.Record) *Card {
	id := rec.Identity
	return &Card{
		Title: "Identity Matrix",
		Icon:  IconShare,
		Blocks: []Block{
			&Fields{Rows: []Field{
				{Label: "NAME", Value: id.Name},
				{Label: "DESIGNATION", Value: id.Designation, Tone: TonePrimary},
				{Label: "CLASS", Value: id.Class},
				{Label: "FORMULA", Value: id.Formula, Tone: ToneSecondary},
			}},
			&Note{Text: id.Description},
		},
	}
}

func propertiesCard(rec structure.Record) *Card {
	props := rec.Properties
	return &Card{
		Title: "System Properties",
		Icon:  IconActivity,
		Blocks: []Block{
			&Gauges{Items: []Gauge{
				{Label: "THERMAL STABILITY", Reading: "450°C", Percent: ThermalStabilityPercent, Tone: ToneAccent},
				{Label: "ELECTRON VELOCITY", Reading: "OPTIMAL", Percent: ElectronVelocityPercent, Tone: TonePrimary},
				{Label: "SYNTHESIS FEASIBILITY", Reading: "HIGH", Percent: SynthesisFeasibilityPercent, Tone: ToneSecondary},
			}},
			&Fields{Rows: []Field{
				{Label: "STABILITY", Value: props.Stability},
				{Label: "ELECTRONIC PROFILE", Value: props.ElectronicProfile},
				{Label: "SYNTHESIS", Value: props.SynthesisFeasibility, Tone: ToneSecondary},
				{Label: "DRUG-LIKENESS", Value: props.DrugLikeness, Tone: ToneMuted},
			}},
		},
	}
}

func structureCard(rec structure.Record) *Card {
	st := rec.Structure
	return &Card{
		Title:   "Structural Viz",
		Icon:    IconHexagon,
		Variant: VariantTall,
		Blocks: []Block{
			&DiagramBlock{Layout: Diagram()},
			&Stats{Items: []Field{
				{Label: "Coordination Center", Value: "Ru(II)", Tone: TonePrimary},
				{Label: "Peripheral Nodes", Value: "6x Co(II)", Tone: ToneSecondary},
			}},
			&Fields{Rows: []Field{
				{Label: "GEOMETRY", Value: st.Geometry},
				{Label: "CENTER", Value: st.CoordinationCenter, Tone: TonePrimary},
				{Label: "NODES", Value: st.PeripheralNodes, Tone: ToneSecondary},
			}},
		},
	}
}

func dataStreamCard(rec structure.Record) *Card {
	return &Card{
		Title: "Data Stream",
		Icon:  IconTerminal,
		Blocks: []Block{
			&LogStream{Lines: []LogLine{
				{Kind: LogStep, Text: "INITIALIZING SEQUENCE..."},
				{Kind: LogStep, Text: "CONNECTING TO IPFS NODE..."},
				{Kind: LogStep, Text: "RETRIEVING CID: bafkre...vaea"},
				{Kind: LogOK, Text: "DATA INTEGRITY: 100%"},
				{Kind: LogStep, Text: "PARSING SMILES STRING..."},
				{Kind: LogPayload, Text: rec.Structure.SMILES},
				{Kind: LogStep, Text: "RENDERING MODEL..."},
				{Kind: LogOK, Text: "READY."},
			}},
		},
	}
}

func architectureCard() *Card {
	return &Card{
		Title: "Architecture",
		Icon:  IconNetwork,
		Blocks: []Block{
			&Bullets{Items: []Bullet{
				{Icon: IconLayers, Text: "Octahedral Core", Tone: ToneSecondary},
				{Icon: IconLayers, Text: "Square Planar Nodes", Tone: TonePrimary},
				{Icon: IconZap, Text: "Pi-Conjugation", Tone: ToneAccent},
			}},
		},
	}
}

func securityBanner() *Banner {
	return &Banner{
		Icon:  IconShield,
		Title: "Security Protocol",
		Text:  "UNAUTHORIZED REPLICATION OF THIS MOLECULAR STRUCTURE IS PROHIBITED BY INTERGALACTIC TREATY 77-B.",
	}
}

// Cards returns the page's cards in column order. Banners are skipped.
func (p Page) Cards() []*Card {
	var cards []*Card
	for _, col := range p.Columns {
		for _, panel := range col.Panels {
			if c, ok := panel.(*Card); ok {
				cards = append(cards, c)
			}
		}
	}
	return cards
}
