package convert

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chemtrace/prose2actions/internal/actions"
)

// Default wire-format constants. The separator and end mark must match
// between training-data generation and inference-time parsing.
const (
	DefaultSeparator = "; "
	DefaultEndMark   = "."
)

// Converter converts action sequences to and from their readable string
// form, driven by the grammar table in the actions package.
type Converter struct {
	separator string
	endMark   string

	// If a parameter value contains the separator, the serialized form
	// inserts a zero-width non-joiner after the separator's first
	// character so that the top-level split stays unambiguous.
	separatorSubstitute string
}

// Option configures a Converter.
type Option func(*Converter)

// WithSeparator overrides the action separator.
func WithSeparator(sep string) Option {
	return func(c *Converter) { c.separator = sep }
}

// WithEndMark overrides the end mark appended after the last action.
func WithEndMark(mark string) Option {
	return func(c *Converter) { c.endMark = mark }
}

// NewConverter creates a converter with the default wire format.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		separator: DefaultSeparator,
		endMark:   DefaultEndMark,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.separatorSubstitute = c.separator[:1] + "‌" + c.separator[1:]
	return c
}

// Supported reports whether the given uppercase token is a known action kind.
func (c *Converter) Supported(token string) bool {
	_, ok := actions.KindFromToken(token)
	return ok
}

// ActionsToString serializes a sequence of actions.
func (c *Converter) ActionsToString(seq []actions.Action) (string, error) {
	parts := make([]string, len(seq))
	for i, a := range seq {
		s, err := c.ActionToString(a)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, c.separator) + c.endMark, nil
}

// StringToActions parses a serialized action sequence. Errors carry the
// offending segment; they indicate a vocabulary or data mismatch and are
// not recoverable here.
func (c *Converter) StringToActions(s string) ([]actions.Action, error) {
	s = c.trimEndMark(s)
	if s == "" {
		return nil, nil
	}

	var seq []actions.Action
	for _, segment := range strings.Split(s, c.separator) {
		a, err := c.StringToAction(segment)
		if err != nil {
			return nil, err
		}
		seq = append(seq, a)
	}
	return seq, nil
}

// StringToActionsLenient parses a serialized action sequence, turning each
// segment that fails to parse into an INVALIDACTION carrying the error
// message instead of failing the whole string.
func (c *Converter) StringToActionsLenient(s string) []actions.Action {
	s = c.trimEndMark(s)
	if s == "" {
		return nil
	}

	var seq []actions.Action
	for _, segment := range strings.Split(s, c.separator) {
		a, err := c.StringToAction(segment)
		if err != nil {
			a = actions.New(actions.InvalidAction, actions.Param(actions.TagError, err.Error()))
		}
		seq = append(seq, a)
	}
	return seq
}

func (c *Converter) trimEndMark(s string) string {
	if c.endMark == "" {
		return s
	}
	trimmed, found := strings.CutSuffix(s, c.endMark)
	if !found && s != "" {
		log.Warn().Str("action_string", s).Msg("action string has no end mark")
		return s
	}
	return trimmed
}

// ActionToString serializes a single action, without separator or end mark.
func (c *Converter) ActionToString(a actions.Action) (string, error) {
	spec, ok := actions.Spec(a.Kind)
	if !ok {
		return "", &SerializeError{Kind: a.Kind, Reason: "unknown kind"}
	}
	if err := checkParameters(spec, a); err != nil {
		return "", err
	}

	s := string(a.Kind)

	switch {
	case spec.FreeForm:
		if v, _ := a.Get(actions.TagError); v != "" {
			s += " " + v
		}
	case spec.MultiMaterial:
		materials := a.Values(actions.TagMaterial)
		if err := checkMaterialCount(spec, len(materials)); err != nil {
			return "", err
		}
		s += " with " + strings.Join(materials, " and ")
	default:
		if spec.Leading != nil {
			v, _ := a.Get(spec.Leading.Tag)
			if v == "" {
				return "", &SerializeError{Kind: a.Kind, Reason: "missing " + spec.Leading.Tag}
			}
			s += connectivePrefix(spec.Leading.Connective) + " " + v
		}
		for _, p := range spec.Params {
			part, err := serializeParam(a, p)
			if err != nil {
				return "", err
			}
			s += part
		}
	}

	// keep the separator out of parameter values
	return strings.ReplaceAll(s, c.separator, c.separatorSubstitute), nil
}

func serializeParam(a actions.Action, p actions.ParamSpec) (string, error) {
	switch p.Shape {
	case actions.ShapeFlag:
		if a.Has(p.Tag) {
			return " " + p.Connective, nil
		}
		return "", nil
	case actions.ShapeRepetitions:
		v, _ := a.Get(p.Tag)
		if v == "" || v == "1" {
			return "", nil
		}
		return " " + v + " x", nil
	default:
		v, ok := a.Get(p.Tag)
		if !ok || v == "" {
			if p.Required {
				return "", &SerializeError{Kind: a.Kind, Reason: "missing " + p.Tag}
			}
			return "", nil
		}
		return connectivePrefix(p.Connective) + " " + v, nil
	}
}

func connectivePrefix(connective string) string {
	if connective == "" {
		return ""
	}
	return " " + connective
}

func checkParameters(spec actions.KindSpec, a actions.Action) error {
	seen := map[string]bool{}
	for _, p := range a.Parameters {
		if !spec.Takes(p.Tag) {
			return &SerializeError{Kind: a.Kind, Reason: "unrecognized parameter " + p.Tag}
		}
		if seen[p.Tag] && !(spec.MultiMaterial && p.Tag == actions.TagMaterial) {
			return &SerializeError{Kind: a.Kind, Reason: "duplicate parameter " + p.Tag}
		}
		seen[p.Tag] = true
	}
	return nil
}

func checkMaterialCount(spec actions.KindSpec, n int) error {
	if spec.ExactMaterials > 0 && n != spec.ExactMaterials {
		return &SerializeError{Kind: spec.Kind, Reason: "wrong number of materials"}
	}
	if spec.ExactMaterials == 0 && n < 2 {
		return &SerializeError{Kind: spec.Kind, Reason: "needs at least two materials"}
	}
	return nil
}
