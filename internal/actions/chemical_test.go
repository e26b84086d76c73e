package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChemical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value      string
		name       string
		quantities []string
	}{
		{"water", "water", nil},
		{"water (5 ml)", "water", []string{"5 ml"}},
		{"NaOH (2 g, 50 mmol)", "NaOH", []string{"2 g", "50 mmol"}},
		{"4-butyloctane (5 ml, 1 mmol)", "4-butyloctane", []string{"5 ml", "1 mmol"}},
		{"title compound (85%)", "title compound", []string{"85%"}},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c := ParseChemical(tt.value)
			assert.Equal(t, tt.name, c.Name)
			assert.Equal(t, tt.quantities, c.Quantities)
			assert.Equal(t, tt.value, c.String())
		})
	}
}

func TestChemicalNameWithParenthesis(t *testing.T) {
	t.Parallel()

	// a " (" inside the compound name must not be mistaken for the start of
	// the quantity block
	c := Chemical{Name: "acetic acid (glacial)", Quantities: []string{"5 ml"}}
	s := c.String()
	parsed := ParseChemical(s)
	assert.Equal(t, "acetic acid (glacial)", parsed.Name)
	assert.Equal(t, []string{"5 ml"}, parsed.Quantities)
}

func TestChemicalsText(t *testing.T) {
	t.Parallel()

	cs := []Chemical{
		{Name: "water", Quantities: []string{"5 ml"}},
		{Name: "THF"},
	}
	text := ChemicalsToText(cs)
	assert.Equal(t, "water (5 ml) and THF", text)
	assert.Equal(t, cs, TextToChemicals(text))
}
