package postprocess

import "github.com/chemtrace/prose2actions/internal/actions"

// NoActionPostprocessor removes NOACTION placeholders from a sequence.
// Removing every action leaves the sequence empty; no substitute is inserted.
type NoActionPostprocessor struct{}

func (p *NoActionPostprocessor) Postprocess(seq []actions.Action) []actions.Action {
	return removeKind(seq, actions.NoAction)
}

// PurifyPostprocessor removes PURIFY actions, for pipelines that treat
// purification as implicit. Not part of the default chain.
type PurifyPostprocessor struct{}

func (p *PurifyPostprocessor) Postprocess(seq []actions.Action) []actions.Action {
	return removeKind(seq, actions.Purify)
}

func removeKind(seq []actions.Action, kind actions.Kind) []actions.Action {
	var out []actions.Action
	for _, a := range seq {
		if a.Kind != kind {
			out = append(out, a.Clone())
		}
	}
	return out
}
