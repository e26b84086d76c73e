package postprocess

import "github.com/chemtrace/prose2actions/internal/actions"

// WaitPostprocessor merges a WAIT into the immediately preceding action when
// that action has an empty duration slot, instead of keeping a separate
// no-op step. A preceding SETTEMPERATURE becomes a STIR at that temperature.
// ADD never absorbs a duration, and a WAIT carrying its own temperature is
// left alone (the temperatures might disagree).
type WaitPostprocessor struct {
	// DropUnmerged removes WAIT actions that found no absorbing neighbor
	// instead of keeping them.
	DropUnmerged bool
}

func (p *WaitPostprocessor) Postprocess(seq []actions.Action) []actions.Action {
	work := actions.CloneSequence(seq)
	consumed := make([]bool, len(work))

	for i := 0; i+1 < len(work); i++ {
		if consumed[i] {
			continue
		}
		a, b := work[i], work[i+1]
		if b.Kind != actions.Wait || b.Has(actions.TagTemperature) {
			continue
		}

		if a.Kind == actions.SetTemperature {
			temperature, _ := a.Get(actions.TagTemperature)
			a = actions.New(actions.Stir, actions.Param(actions.TagTemperature, temperature))
		}
		if !eligibleAbsorber(a) {
			continue
		}

		duration, _ := b.Get(actions.TagDuration)
		work[i] = actions.Canonicalize(a.With(actions.TagDuration, duration))
		consumed[i+1] = true
	}

	var out []actions.Action
	for i, a := range work {
		if consumed[i] {
			continue
		}
		if p.DropUnmerged && a.Kind == actions.Wait {
			continue
		}
		out = append(out, a)
	}
	return out
}

func eligibleAbsorber(a actions.Action) bool {
	if a.Kind == actions.Add {
		return false
	}
	return actions.TakesDuration(a.Kind) && !a.Has(actions.TagDuration)
}
