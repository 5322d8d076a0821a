package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonolithLiterals(t *testing.T) {
	rec := Monolith()

	assert.Equal(t, "Zenith-Nexus Astro-Metallic Monolith", rec.Identity.Name)
	assert.Equal(t, "AMD-ZENITH-01", rec.Identity.Designation)
	assert.Equal(t, "Organometallic Coordination Polymer Cluster", rec.Identity.Class)
	assert.Equal(t, "C138H72Co6N12Ru", rec.Identity.Formula)
	assert.Equal(t, "A central Ruthenium(II) energy core octahedrally coordinated to six ethynyl-linked Cobalt(II) phthalocyanine peripheral nodes, mimicking a neural processing architecture.", rec.Identity.Description)

	assert.Equal(t, "c1(C#Cc2ccncc2[Co]L)c(C#Cc3ccncc3[Co]L)c(C#Cc4ccncc4[Co]L)c(C#Cc5ccncc5[Co]L)c(C#Cc6ccncc6[Co]L)c1C#Cc7ccncc7[Co]L", rec.Structure.SMILES)
	assert.Equal(t, "Octahedral (Core) / Square Planar (Nodes)", rec.Structure.Geometry)
	assert.Equal(t, "Ru(II) [Central Core]", rec.Structure.CoordinationCenter)
	assert.Equal(t, "Co(II)-Phthalocyanine [6 Blue Nodes]", rec.Structure.PeripheralNodes)

	assert.Equal(t, "Thermally stable up to 450°C", rec.Properties.Stability)
	assert.Equal(t, "High-speed electron delocalization", rec.Properties.ElectronicProfile)
	assert.Equal(t, "High", rec.Properties.SynthesisFeasibility)
	assert.Equal(t, "Low", rec.Properties.DrugLikeness)

	assert.Equal(t, "Cyberpunk-Industrial-Cosmic", rec.Metadata.AestheticSync)
}

// TestMonolithIsACopy verifies that changing a returned record does
// not leak into later calls.
func TestMonolithIsACopy(t *testing.T) {
	rec := Monolith()
	rec.Identity.Designation = "tampered"
	rec.Properties.DrugLikeness = "tampered"

	again := Monolith()
	assert.Equal(t, "AMD-ZENITH-01", again.Identity.Designation)
	assert.Equal(t, "Low", again.Properties.DrugLikeness)
	assert.Equal(t, Monolith(), again)
}
