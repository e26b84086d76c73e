package postprocess

import "github.com/chemtrace/prose2actions/internal/actions"

// DrySolutionPostprocessor ensures every DRYSOLUTION is followed by a
// FILTER. Procedures often leave the desiccant filtration implicit; a later
// FILTER usually belongs to another separation, so one keeping the filtrate
// is inserted right after the drying step. Not part of the default chain.
type DrySolutionPostprocessor struct{}

func (p *DrySolutionPostprocessor) Postprocess(seq []actions.Action) []actions.Action {
	var out []actions.Action
	for i, a := range seq {
		out = append(out, a.Clone())
		if a.Kind != actions.DrySolution {
			continue
		}
		if i+1 < len(seq) && seq[i+1].Kind == actions.Filter {
			continue
		}
		out = append(out, actions.New(actions.Filter,
			actions.Param(actions.TagPhase, actions.PhaseFiltrate)))
	}
	return out
}
