package augment

import (
	"math/rand"
	"strings"

	"github.com/chemtrace/prose2actions/internal/actions"
	"github.com/chemtrace/prose2actions/internal/corpus"
)

// CompoundQuantityAugmenter substitutes compound quantities. Adding or
// removing quantities is not attempted; only existing ones are exchanged,
// since those have a literal counterpart in the text.
type CompoundQuantityAugmenter struct {
	substitution
}

// NewCompoundQuantityAugmenter creates the augmenter. A nil rng falls back
// to a time-seeded source.
func NewCompoundQuantityAugmenter(probability float64, quantities []string, rng *rand.Rand) (*CompoundQuantityAugmenter, error) {
	s, err := newSubstitution("compound quantity augmenter", probability, quantities, rng)
	if err != nil {
		return nil, err
	}
	return &CompoundQuantityAugmenter{substitution: s}, nil
}

func (g *CompoundQuantityAugmenter) Augment(sample corpus.Sample) corpus.Sample {
	out := sample.Clone()
	if !g.enabled() {
		return out
	}

	slots := actions.ChemicalSlots(out.Actions)
	var quantities []string
	for _, s := range slots {
		chem := actions.ParseChemical(out.Actions[s.Action].Parameters[s.Param].Value)
		quantities = append(quantities, chem.Quantities...)
	}

	for _, quantity := range substitutableValues(quantities) {
		if !g.draws() || !strings.Contains(out.Text, quantity) {
			continue
		}
		newQuantity := g.pick()
		out.Text = strings.ReplaceAll(out.Text, quantity, newQuantity)

		for _, s := range slots {
			p := &out.Actions[s.Action].Parameters[s.Param]
			chem := actions.ParseChemical(p.Value)
			changed := false
			for i, q := range chem.Quantities {
				if q == quantity {
					chem.Quantities[i] = newQuantity
					changed = true
				}
			}
			if changed {
				p.Value = chem.String()
			}
		}
	}
	return out
}
