package postprocess

import "github.com/chemtrace/prose2actions/internal/actions"

// FilterPostprocessor disambiguates FILTER actions that do not say which
// phase to keep. Neighboring actions decide where possible (drying the
// solution implies the filtrate was kept, drying a solid implies the
// precipitate); anything still ambiguous defaults to keeping the filtrate.
type FilterPostprocessor struct{}

func (p *FilterPostprocessor) Postprocess(seq []actions.Action) []actions.Action {
	out := actions.CloneSequence(seq)

	for i := 0; i+1 < len(out); i++ {
		a, b := out[i], out[i+1]
		if phase, ok := phaseFromFollowing(b.Kind); ok {
			out[i] = setPhaseIfMissing(a, phase)
		}
		if phase, ok := phaseFromPreceding(a.Kind); ok {
			out[i+1] = setPhaseIfMissing(b, phase)
		}
	}

	for i, a := range out {
		out[i] = setPhaseIfMissing(a, actions.PhaseFiltrate)
	}
	return out
}

func phaseFromFollowing(k actions.Kind) (string, bool) {
	switch k {
	case actions.Concentrate, actions.DrySolution:
		return actions.PhaseFiltrate, true
	case actions.DrySolid:
		return actions.PhasePrecipitate, true
	}
	return "", false
}

func phaseFromPreceding(k actions.Kind) (string, bool) {
	if k == actions.DrySolution {
		return actions.PhaseFiltrate, true
	}
	return "", false
}

func setPhaseIfMissing(a actions.Action, phase string) actions.Action {
	if a.Kind != actions.Filter || a.Has(actions.TagPhase) {
		return a
	}
	return actions.Canonicalize(a.With(actions.TagPhase, phase))
}
