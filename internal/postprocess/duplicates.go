package postprocess

import "github.com/chemtrace/prose2actions/internal/actions"

// DuplicatesPostprocessor collapses identical neighboring actions. Repeating
// a stirring-like step is meaningful (e.g. two consecutive reflux periods),
// so STIR, REFLUX and MICROWAVE are never collapsed.
type DuplicatesPostprocessor struct{}

func (p *DuplicatesPostprocessor) Postprocess(seq []actions.Action) []actions.Action {
	var out []actions.Action
	for i, a := range seq {
		if i > 0 && a.Equal(seq[i-1]) && !repeatable(a.Kind) {
			continue
		}
		out = append(out, a.Clone())
	}
	return out
}

func repeatable(k actions.Kind) bool {
	switch k {
	case actions.Stir, actions.Reflux, actions.Microwave:
		return true
	}
	return false
}
