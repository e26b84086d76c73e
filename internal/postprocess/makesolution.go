package postprocess

import (
	"github.com/rs/zerolog/log"

	"github.com/chemtrace/prose2actions/internal/actions"
)

// InitialMakeSolutionPostprocessor rewrites a MAKESOLUTION at the start of a
// sequence, followed by the ADD of the resulting solution, into individual
// ADD actions. The ADD's temperature and atmosphere carry over to each
// component; dropwise and duration have no per-component meaning and are
// dropped with a warning.
type InitialMakeSolutionPostprocessor struct{}

func (p *InitialMakeSolutionPostprocessor) Postprocess(seq []actions.Action) []actions.Action {
	if !startsWithSolutionAdd(seq) {
		return actions.CloneSequence(seq)
	}

	makeSolution, add := seq[0], seq[1]
	if add.Has(actions.TagDropwise) {
		log.Warn().Msg("dropwise addition of initial solution is ignored")
	}
	if add.Has(actions.TagDuration) {
		log.Warn().Msg("addition duration of initial solution is ignored")
	}

	var out []actions.Action
	for _, material := range makeSolution.Values(actions.TagMaterial) {
		a := actions.New(actions.Add, actions.Param(actions.TagMaterial, material))
		if temperature, ok := add.Get(actions.TagTemperature); ok {
			a = a.With(actions.TagTemperature, temperature)
		}
		if atmosphere, ok := add.Get(actions.TagAtmosphere); ok {
			a = a.With(actions.TagAtmosphere, atmosphere)
		}
		out = append(out, actions.Canonicalize(a))
	}
	return append(out, actions.CloneSequence(seq[2:])...)
}

func startsWithSolutionAdd(seq []actions.Action) bool {
	if len(seq) < 2 || seq[0].Kind != actions.MakeSolution || seq[1].Kind != actions.Add {
		return false
	}
	material, _ := seq[1].Get(actions.TagMaterial)
	return actions.ParseChemical(material).Name == actions.SolutionPlaceholder
}
