package augment

import (
	"math/rand"
	"time"

	"github.com/chemtrace/prose2actions/internal/corpus"
)

// Pipeline feeds a sample through a fixed sequence of augmenters. The order
// does not affect correctness (each augmentation is independently
// text-anchored) but it does affect which values a seeded random source
// picks, so it is part of the reproducibility contract.
type Pipeline struct {
	augmenters []Augmenter
}

// NewPipeline composes augmenters in the given order.
func NewPipeline(augmenters ...Augmenter) *Pipeline {
	return &Pipeline{augmenters: augmenters}
}

// NewDefaultPipeline builds the standard four-augmenter pipeline over the
// given pools: compound names, quantities, durations, temperatures.
func NewDefaultPipeline(probability float64, pools corpus.Pools, rng *rand.Rand) (*Pipeline, error) {
	names, err := NewCompoundNameAugmenter(probability, pools.CompoundNames, rng)
	if err != nil {
		return nil, err
	}
	quantities, err := NewCompoundQuantityAugmenter(probability, pools.Quantities, rng)
	if err != nil {
		return nil, err
	}
	durations, err := NewDurationAugmenter(probability, pools.Durations, rng)
	if err != nil {
		return nil, err
	}
	temperatures, err := NewTemperatureAugmenter(probability, pools.Temperatures, rng)
	if err != nil {
		return nil, err
	}
	return NewPipeline(names, quantities, durations, temperatures), nil
}

// Augment runs the sample through every augmenter in order.
func (p *Pipeline) Augment(sample corpus.Sample) corpus.Sample {
	for _, a := range p.augmenters {
		sample = a.Augment(sample)
	}
	return sample
}

// Expand produces rounds*len(samples) augmented samples by cycling over the
// input, then shuffles them with the given source and drops samples whose
// text duplicates an earlier one.
func (p *Pipeline) Expand(samples []corpus.Sample, rounds int, rng *rand.Rand) []corpus.Sample {
	if len(samples) == 0 || rounds <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	out := make([]corpus.Sample, 0, rounds*len(samples))
	for i := 0; i < rounds*len(samples); i++ {
		out = append(out, p.Augment(samples[i%len(samples)]))
	}

	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	seen := make(map[string]bool, len(out))
	unique := out[:0]
	for _, s := range out {
		if seen[s.Text] {
			continue
		}
		seen[s.Text] = true
		unique = append(unique, s)
	}
	return unique
}
