package convert

import (
	"regexp"
	"strings"

	"github.com/chemtrace/prose2actions/internal/actions"
)

var repetitionsRe = regexp.MustCompile(` (\d+) x$`)

// StringToAction parses a single action segment (no separator, no end mark).
func (c *Converter) StringToAction(segment string) (actions.Action, error) {
	// undo the escaping applied during serialization
	segment = strings.ReplaceAll(segment, c.separatorSubstitute, c.separator)

	token, _, _ := strings.Cut(segment, " ")
	kind, ok := actions.KindFromToken(token)
	if !ok {
		return actions.Action{}, &UnknownActionError{Token: token, Segment: segment}
	}
	spec, _ := actions.Spec(kind)

	switch {
	case spec.FreeForm:
		return parseFreeForm(kind, segment), nil
	case spec.MultiMaterial:
		return parseMultiMaterial(spec, segment)
	default:
		return parseTabular(spec, segment)
	}
}

func parseFreeForm(kind actions.Kind, segment string) actions.Action {
	payload := strings.TrimPrefix(segment, string(kind))
	payload = strings.TrimPrefix(payload, " ")
	return actions.New(kind, actions.Param(actions.TagError, payload))
}

func parseMultiMaterial(spec actions.KindSpec, segment string) (actions.Action, error) {
	prefix := string(spec.Kind) + " with "
	rest, found := strings.CutPrefix(segment, prefix)
	if !found || rest == "" {
		return actions.Action{}, &MalformedActionError{
			Kind: spec.Kind, Segment: segment, Reason: `expected "with" and a list of materials`,
		}
	}
	chemicals := actions.TextToChemicals(rest)
	if err := checkMaterialCount(spec, len(chemicals)); err != nil {
		return actions.Action{}, &MalformedActionError{
			Kind: spec.Kind, Segment: segment, Reason: err.(*SerializeError).Reason,
		}
	}
	a := actions.Action{Kind: spec.Kind}
	for _, chem := range chemicals {
		a.Parameters = append(a.Parameters, actions.Param(actions.TagMaterial, chem.String()))
	}
	return a, nil
}

// parseTabular consumes the trailing parameter slots right to left, then
// attributes what remains to the leading slot. Leftover text on a kind
// without a leading slot is malformed.
func parseTabular(spec actions.KindSpec, segment string) (actions.Action, error) {
	remaining := segment
	values := map[string]string{}
	present := map[string]bool{}

	for i := len(spec.Params) - 1; i >= 0; i-- {
		p := spec.Params[i]
		switch p.Shape {
		case actions.ShapeFlag:
			suffix := " " + p.Connective
			if trimmed, found := strings.CutSuffix(remaining, suffix); found {
				remaining = trimmed
				present[p.Tag] = true
			}
		case actions.ShapeRepetitions:
			if m := repetitionsRe.FindStringSubmatch(remaining); m != nil {
				remaining = strings.TrimSuffix(remaining, m[0])
				values[p.Tag] = m[1]
				present[p.Tag] = true
			}
		default:
			sep := " "
			if p.Connective != "" {
				sep = " " + p.Connective + " "
			}
			idx := strings.Index(remaining, sep)
			if idx < 0 {
				if p.Required {
					return actions.Action{}, &MalformedActionError{
						Kind: spec.Kind, Segment: segment, Reason: "missing " + p.Tag,
					}
				}
				continue
			}
			values[p.Tag] = remaining[idx+len(sep):]
			present[p.Tag] = true
			remaining = remaining[:idx]
		}
	}

	a := actions.Action{Kind: spec.Kind}

	if spec.Leading != nil {
		want := string(spec.Kind) + connectivePrefix(spec.Leading.Connective) + " "
		value, found := strings.CutPrefix(remaining, want)
		if !found || value == "" {
			return actions.Action{}, &MalformedActionError{
				Kind: spec.Kind, Segment: segment, Reason: "missing " + spec.Leading.Tag,
			}
		}
		a.Parameters = append(a.Parameters, actions.Param(spec.Leading.Tag, value))
	} else if remaining != string(spec.Kind) {
		return actions.Action{}, &MalformedActionError{
			Kind: spec.Kind, Segment: segment, Reason: "unrecognized text " + strings.TrimPrefix(remaining, string(spec.Kind)),
		}
	}

	for _, p := range spec.Params {
		if !present[p.Tag] {
			continue
		}
		if err := validateValue(spec.Kind, p.Tag, values[p.Tag]); err != nil {
			return actions.Action{}, &MalformedActionError{
				Kind: spec.Kind, Segment: segment, Reason: err.Error(),
			}
		}
		a.Parameters = append(a.Parameters, actions.Param(p.Tag, values[p.Tag]))
	}
	return a, nil
}

type valueError string

func (e valueError) Error() string { return string(e) }

// validateValue enforces the closed value sets of phase and layer slots.
func validateValue(kind actions.Kind, tag, value string) error {
	switch {
	case kind == actions.Filter && tag == actions.TagPhase:
		if value != actions.PhaseFiltrate && value != actions.PhasePrecipitate {
			return valueError(`phase must be "filtrate" or "precipitate"`)
		}
	case kind == actions.CollectLayer && tag == actions.TagLayer:
		if value != actions.LayerAqueous && value != actions.LayerOrganic {
			return valueError(`layer must be "aqueous" or "organic"`)
		}
	}
	return nil
}
