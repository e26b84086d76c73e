package augment

import (
	"math/rand"
	"strings"

	"github.com/chemtrace/prose2actions/internal/actions"
	"github.com/chemtrace/prose2actions/internal/corpus"
)

// attributeAugmenter substitutes the values of one parameter tag across all
// actions of a sample. Durations and temperatures share this core.
type attributeAugmenter struct {
	substitution
	tag string
}

func (g *attributeAugmenter) Augment(sample corpus.Sample) corpus.Sample {
	out := sample.Clone()
	if !g.enabled() {
		return out
	}

	for _, value := range substitutableValues(actions.ExtractValues(out.Actions, g.tag)) {
		if !g.draws() || !strings.Contains(out.Text, value) {
			continue
		}
		newValue := g.pick()
		out.Text = strings.ReplaceAll(out.Text, value, newValue)
		actions.ApplyToTag(out.Actions, g.tag, func(v string) string {
			if v == value {
				return newValue
			}
			return v
		})
	}
	return out
}

// DurationAugmenter substitutes action durations.
type DurationAugmenter struct {
	attributeAugmenter
}

// NewDurationAugmenter creates the augmenter. A nil rng falls back to a
// time-seeded source.
func NewDurationAugmenter(probability float64, durations []string, rng *rand.Rand) (*DurationAugmenter, error) {
	s, err := newSubstitution("duration augmenter", probability, durations, rng)
	if err != nil {
		return nil, err
	}
	return &DurationAugmenter{attributeAugmenter{substitution: s, tag: actions.TagDuration}}, nil
}

// TemperatureAugmenter substitutes action temperatures.
type TemperatureAugmenter struct {
	attributeAugmenter
}

// NewTemperatureAugmenter creates the augmenter. A nil rng falls back to a
// time-seeded source.
func NewTemperatureAugmenter(probability float64, temperatures []string, rng *rand.Rand) (*TemperatureAugmenter, error) {
	s, err := newSubstitution("temperature augmenter", probability, temperatures, rng)
	if err != nil {
		return nil, err
	}
	return &TemperatureAugmenter{attributeAugmenter{substitution: s, tag: actions.TagTemperature}}, nil
}
