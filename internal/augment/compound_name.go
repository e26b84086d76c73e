package augment

import (
	"math/rand"
	"regexp"

	"github.com/chemtrace/prose2actions/internal/actions"
	"github.com/chemtrace/prose2actions/internal/corpus"
)

// CompoundNameAugmenter substitutes compound names in both the text and the
// chemical slots of the actions.
type CompoundNameAugmenter struct {
	substitution
}

// NewCompoundNameAugmenter creates the augmenter. A nil rng falls back to a
// time-seeded source.
func NewCompoundNameAugmenter(probability float64, compounds []string, rng *rand.Rand) (*CompoundNameAugmenter, error) {
	s, err := newSubstitution("compound name augmenter", probability, compounds, rng)
	if err != nil {
		return nil, err
	}
	return &CompoundNameAugmenter{substitution: s}, nil
}

func (g *CompoundNameAugmenter) Augment(sample corpus.Sample) corpus.Sample {
	out := sample.Clone()
	if !g.enabled() {
		return out
	}

	slots := actions.ChemicalSlots(out.Actions)
	var names []string
	for _, s := range slots {
		names = append(names, actions.ParseChemical(out.Actions[s.Action].Parameters[s.Param].Value).Name)
	}

	for _, name := range substitutableValues(names) {
		if !g.draws() {
			continue
		}
		// substitute at word boundaries only, so that replacing "H2" by
		// "water" does not turn "H2SO4" into "waterSO4"
		anchor, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil || !anchor.MatchString(out.Text) {
			// no safe anchor in the text, skip rather than corrupt
			continue
		}
		newName := g.pick()
		out.Text = anchor.ReplaceAllLiteralString(out.Text, newName)

		for _, s := range slots {
			p := &out.Actions[s.Action].Parameters[s.Param]
			chem := actions.ParseChemical(p.Value)
			if chem.Name == name {
				chem.Name = newName
				p.Value = chem.String()
			}
		}
	}
	return out
}
