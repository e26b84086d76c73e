package actions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSequence() []Action {
	return []Action{
		New(MakeSolution,
			Param(TagMaterial, "water (5 ml)"),
			Param(TagMaterial, "NaOH (2 g)")),
		New(Add, Param(TagMaterial, "SLN"), Param(TagTemperature, "0 °C")),
		New(Stir, Param(TagDuration, "1 h")),
		New(DrySolution, Param(TagMaterial, "sodium sulfate")),
		New(Degas, Param(TagGas, "nitrogen")),
		New(Extract, Param(TagSolvent, "EtOAc (100 ml)"), Param(TagRepetitions, "3")),
	}
}

func TestChemicalSlots(t *testing.T) {
	t.Parallel()

	seq := sampleSequence()
	slots := ChemicalSlots(seq)
	require.Len(t, slots, 4)

	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = ParseChemical(seq[s.Action].Parameters[s.Param].Value).Name
	}
	assert.Equal(t, []string{"water", "NaOH", "SLN", "EtOAc"}, names)
}

func TestCompoundNames(t *testing.T) {
	t.Parallel()

	names := CompoundNames(sampleSequence())
	// SLN is a placeholder, not a compound; gas and drying-agent slots count
	assert.Equal(t, []string{"water", "NaOH", "sodium sulfate", "nitrogen", "EtOAc"}, names)
}

func TestExtractValues(t *testing.T) {
	t.Parallel()

	seq := sampleSequence()
	assert.Equal(t, []string{"1 h"}, ExtractValues(seq, TagDuration))
	assert.Equal(t, []string{"0 °C"}, ExtractValues(seq, TagTemperature))
	assert.Empty(t, ExtractValues(seq, TagAtmosphere))
}

func TestApplyToTag(t *testing.T) {
	t.Parallel()

	seq := sampleSequence()
	ApplyToTag(seq, TagDuration, func(string) string { return "5 minutes" })
	duration, _ := seq[2].Get(TagDuration)
	assert.Equal(t, "5 minutes", duration)

	// empty values stay untouched
	flagged := []Action{New(Add, Param(TagMaterial, "water"), Flag(TagDropwise))}
	ApplyToTag(flagged, TagDropwise, func(string) string { return "x" })
	v, _ := flagged[0].Get(TagDropwise)
	assert.Empty(t, v)
}

func TestRemoveQuantities(t *testing.T) {
	t.Parallel()

	seq := sampleSequence()
	RemoveQuantities(seq)

	for _, c := range Chemicals(seq) {
		assert.Empty(t, c.Quantities)
	}
	solvent, _ := seq[5].Get(TagSolvent)
	assert.Equal(t, "EtOAc", solvent)
	assert.False(t, strings.Contains(solvent, "("))
}
