// Package structure holds the Zenith-Nexus structure record.
//
// The record is a single immutable value defined at package load.
// Monolith returns it by value, so nothing outside this package can
// change what the dashboard displays.
package structure

// Record describes the fictional Astro-Metallic Monolith.
type Record struct {
	Identity   Identity   `json:"chemical_identity" yaml:"chemical_identity"`
	Structure  Structural `json:"structural_data" yaml:"structural_data"`
	Properties Properties `json:"properties" yaml:"properties"`
	Metadata   Metadata   `json:"metadata" yaml:"metadata"`
}

// Identity names and classifies the structure.
type Identity struct {
	Name        string `json:"name" yaml:"name"`
	Designation string `json:"designation" yaml:"designation"`
	Class       string `json:"class" yaml:"class"`
	Formula     string `json:"molecular_formula" yaml:"molecular_formula"`
	Description string `json:"description" yaml:"description"`
}

// Structural carries the structural descriptors and role labels.
type Structural struct {
	SMILES             string `json:"SMILES_Simplified" yaml:"SMILES_Simplified"`
	Geometry           string `json:"geometry" yaml:"geometry"`
	CoordinationCenter string `json:"coordination_center" yaml:"coordination_center"`
	PeripheralNodes    string `json:"peripheral_nodes" yaml:"peripheral_nodes"`
}

// Properties are free-text descriptors. The dashboard gauges are
// separate literals and are not derived from these strings.
type Properties struct {
	Stability            string `json:"stability" yaml:"stability"`
	ElectronicProfile    string `json:"electronic_profile" yaml:"electronic_profile"`
	SynthesisFeasibility string `json:"synthesis_feasibility" yaml:"synthesis_feasibility"`
	DrugLikeness         string `json:"drug_likeness" yaml:"drug_likeness"`
}

// Metadata is display-only.
type Metadata struct {
	AestheticSync string `json:"aesthetic_sync" yaml:"aesthetic_sync"`
}

var monolith = Record{
	Identity: Identity{
		Name:        "Zenith-Nexus Astro-Metallic Monolith",
		Designation: "AMD-ZENITH-01",
		Class:       "Organometallic Coordination Polymer Cluster",
		Formula:     "C138H72Co6N12Ru",
		Description: "A central Ruthenium(II) energy core octahedrally coordinated to six " +
			"ethynyl-linked Cobalt(II) phthalocyanine peripheral nodes, mimicking a " +
			"neural processing architecture.",
	},
	Structure: Structural{
		SMILES: "c1(C#Cc2ccncc2[Co]L)c(C#Cc3ccncc3[Co]L)c(C#Cc4ccncc4[Co]L)" +
			"c(C#Cc5ccncc5[Co]L)c(C#Cc6ccncc6[Co]L)c1C#Cc7ccncc7[Co]L",
		Geometry:           "Octahedral (Core) / Square Planar (Nodes)",
		CoordinationCenter: "Ru(II) [Central Core]",
		PeripheralNodes:    "Co(II)-Phthalocyanine [6 Blue Nodes]",
	},
	Properties: Properties{
		Stability:            "Thermally stable up to 450°C",
		ElectronicProfile:    "High-speed electron delocalization",
		SynthesisFeasibility: "High",
		DrugLikeness:         "Low",
	},
	Metadata: Metadata{
		AestheticSync: "Cyberpunk-Industrial-Cosmic",
	},
}

// Monolith returns the structure record. Every call returns a copy of
// the same value.
func Monolith() Record {
	return monolith
}
