package postprocess

import "github.com/chemtrace/prose2actions/internal/actions"

// SameTemperaturePostprocessor resolves the literal "same temperature" into
// the most recent concrete temperature earlier in the sequence. With no
// earlier concrete temperature, the literal stays as-is.
type SameTemperaturePostprocessor struct{}

const sameTemperature = "same temperature"

func (p *SameTemperaturePostprocessor) Postprocess(seq []actions.Action) []actions.Action {
	out := actions.CloneSequence(seq)

	if !containsSameTemperature(out) {
		return out
	}

	for i := range out {
		substitute := lastConcreteTemperature(out[:i])
		if substitute == "" {
			continue
		}
		one := out[i : i+1]
		actions.ApplyToTag(one, actions.TagTemperature, func(t string) string {
			if t == sameTemperature {
				return substitute
			}
			return t
		})
	}
	return out
}

func containsSameTemperature(seq []actions.Action) bool {
	for _, t := range actions.ExtractValues(seq, actions.TagTemperature) {
		if t == sameTemperature {
			return true
		}
	}
	return false
}

func lastConcreteTemperature(seq []actions.Action) string {
	last := ""
	for _, t := range actions.ExtractValues(seq, actions.TagTemperature) {
		if t != sameTemperature {
			last = t
		}
	}
	return last
}
