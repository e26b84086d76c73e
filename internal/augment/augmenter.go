// Package augment enlarges training data by randomized substitution of
// parameter values, editing the text and the actions of a sample in lockstep.
package augment

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chemtrace/prose2actions/internal/corpus"
)

// Augmenter generates a new, potentially perturbed sample. Implementations
// return independent copies and never leave text and actions inconsistent.
type Augmenter interface {
	Augment(sample corpus.Sample) corpus.Sample
}

// substitution is the shared core of all augmenters: a probability, a pool
// of candidate values and an injected random source. The source is never the
// process-wide one, so a fixed seed gives a deterministic draw sequence.
type substitution struct {
	probability float64
	values      []string
	rng         *rand.Rand
}

func newSubstitution(name string, probability float64, values []string, rng *rand.Rand) (substitution, error) {
	if probability < 0 || probability > 1 {
		return substitution{}, fmt.Errorf("%s: probability %v outside [0, 1]", name, probability)
	}
	if len(values) == 0 {
		log.Warn().Str("augmenter", name).Msg("empty candidate pool, augmenter is a no-op")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return substitution{
		probability: probability,
		values:      append([]string(nil), values...),
		rng:         rng,
	}, nil
}

func (s *substitution) enabled() bool {
	return len(s.values) > 0 && s.probability > 0
}

func (s *substitution) draws() bool {
	return s.rng.Float64() < s.probability
}

func (s *substitution) pick() string {
	return s.values[s.rng.Intn(len(s.values))]
}

// substitutableValues deduplicates candidate original values, preserving
// first-seen order, and drops any value contained in another. If both
// "0 °C" and "10 °C" occur, substituting the short one would corrupt the
// long one's span in the text.
func substitutableValues(values []string) []string {
	var unique []string
	seen := map[string]bool{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}

	var out []string
	for _, v := range unique {
		contained := false
		for _, other := range unique {
			if v != other && strings.Contains(other, v) {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, v)
		}
	}
	return out
}
