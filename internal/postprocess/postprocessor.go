// Package postprocess normalizes raw predicted action sequences into a
// canonical, executable form. Every processor is a total, pure function:
// input it does not specifically handle passes through unchanged.
package postprocess

import "github.com/chemtrace/prose2actions/internal/actions"

// Postprocessor transforms one action sequence into another. Implementations
// never mutate their input.
type Postprocessor interface {
	Postprocess(seq []actions.Action) []actions.Action
}

// Combiner applies an ordered list of postprocessors, each consuming the
// previous one's output. The order is significant and must be reproducible.
type Combiner struct {
	processors []Postprocessor
}

// NewCombiner creates a combiner with the given order.
func NewCombiner(processors ...Postprocessor) *Combiner {
	return &Combiner{processors: processors}
}

// Postprocess runs the chain.
func (c *Combiner) Postprocess(seq []actions.Action) []actions.Action {
	for _, p := range c.processors {
		seq = p.Postprocess(seq)
	}
	return seq
}

// Default returns the standard cleanup chain. The order is chosen so that a
// second application is a no-op: placeholder removal first, then structural
// rewrites, then value fixes, then disambiguation and deduplication.
func Default() *Combiner {
	return NewCombiner(
		&NoActionPostprocessor{},
		&InitialMakeSolutionPostprocessor{},
		&WaitPostprocessor{},
		&SameTemperaturePostprocessor{},
		&FilterPostprocessor{},
		&DuplicatesPostprocessor{},
	)
}
