package actions

// Shape describes how a parameter appears in the serialized action string.
type Shape int

const (
	// ShapeText parameters serialize as " <connective> <value>", or
	// " <value>" when the connective is empty.
	ShapeText Shape = iota
	// ShapeFlag parameters serialize as " <connective>" when set and are
	// absent otherwise.
	ShapeFlag
	// ShapeRepetitions parameters serialize as a trailing " <n> x",
	// omitted when the count is 1.
	ShapeRepetitions
)

// ParamSpec describes one parameter slot of an action kind.
type ParamSpec struct {
	Tag        string
	Connective string
	Shape      Shape
	Required   bool
	// Chemical marks slots whose value is a compound with optional
	// quantities, e.g. "sodium sulfate (2 g, 14 mmol)".
	Chemical bool
}

// KindSpec is the grammar entry for one action kind: which parameter slots it
// recognizes, their connectives and their serialization order.
type KindSpec struct {
	Kind Kind

	// Leading is the slot that directly follows the kind token, without (or
	// with, for e.g. "with") a connective. It absorbs whatever text the
	// trailing connectives did not claim; kinds without a leading slot
	// reject such leftover text as malformed.
	Leading *ParamSpec

	// Params are the trailing slots in serialization order.
	Params []ParamSpec

	// MultiMaterial kinds (MAKESOLUTION, PARTITION) list several chemicals
	// joined by " and " after a "with" connective.
	MultiMaterial bool
	// ExactMaterials restricts MultiMaterial kinds to an exact compound
	// count; zero means two or more.
	ExactMaterials int

	// FreeForm kinds (INVALIDACTION) treat everything after the kind token
	// as an opaque payload.
	FreeForm bool
}

// Takes reports whether the kind recognizes the given parameter tag.
func (s KindSpec) Takes(tag string) bool {
	if s.Leading != nil && s.Leading.Tag == tag {
		return true
	}
	if s.MultiMaterial && tag == TagMaterial {
		return true
	}
	if s.FreeForm && tag == TagError {
		return true
	}
	for _, p := range s.Params {
		if p.Tag == tag {
			return true
		}
	}
	return false
}

func leading(tag, connective string, chemical bool) *ParamSpec {
	return &ParamSpec{Tag: tag, Connective: connective, Required: true, Chemical: chemical}
}

// registry is the grammar table. Order of Params is the serialization order;
// parsing consumes them right to left.
var registry = map[Kind]KindSpec{
	Add: {
		Kind:    Add,
		Leading: leading(TagMaterial, "", true),
		Params: []ParamSpec{
			{Tag: TagDropwise, Connective: "dropwise", Shape: ShapeFlag},
			{Tag: TagTemperature, Connective: "at"},
			{Tag: TagAtmosphere, Connective: "under"},
			{Tag: TagDuration, Connective: "over"},
		},
	},
	CollectLayer: {
		Kind:   CollectLayer,
		Params: []ParamSpec{{Tag: TagLayer, Required: true}},
	},
	Concentrate: {Kind: Concentrate},
	Degas: {
		Kind: Degas,
		Params: []ParamSpec{
			{Tag: TagGas, Connective: "with"},
			{Tag: TagDuration, Connective: "for"},
		},
	},
	DrySolid: {
		Kind: DrySolid,
		Params: []ParamSpec{
			{Tag: TagDuration, Connective: "for"},
			{Tag: TagTemperature, Connective: "at"},
			{Tag: TagAtmosphere, Connective: "under"},
		},
	},
	DrySolution: {
		Kind:   DrySolution,
		Params: []ParamSpec{{Tag: TagMaterial, Connective: "over"}},
	},
	Extract: {
		Kind:    Extract,
		Leading: leading(TagSolvent, "with", true),
		Params:  []ParamSpec{{Tag: TagRepetitions, Shape: ShapeRepetitions}},
	},
	Filter: {
		Kind:   Filter,
		Params: []ParamSpec{{Tag: TagPhase, Connective: "keep"}},
	},
	FollowOtherProcedure: {Kind: FollowOtherProcedure},
	InvalidAction:        {Kind: InvalidAction, FreeForm: true},
	MakeSolution:         {Kind: MakeSolution, MultiMaterial: true},
	Microwave: {
		Kind: Microwave,
		Params: []ParamSpec{
			{Tag: TagDuration, Connective: "for"},
			{Tag: TagTemperature, Connective: "at"},
		},
	},
	NoAction:      {Kind: NoAction},
	OtherLanguage: {Kind: OtherLanguage},
	Partition:     {Kind: Partition, MultiMaterial: true, ExactMaterials: 2},
	PH: {
		Kind:    PH,
		Leading: leading(TagMaterial, "with", true),
		Params: []ParamSpec{
			{Tag: TagPH, Connective: "to pH"},
			{Tag: TagDropwise, Connective: "dropwise", Shape: ShapeFlag},
			{Tag: TagTemperature, Connective: "at"},
		},
	},
	PhaseSeparation: {Kind: PhaseSeparation},
	Purify:          {Kind: Purify},
	Quench: {
		Kind:    Quench,
		Leading: leading(TagMaterial, "with", true),
		Params: []ParamSpec{
			{Tag: TagDropwise, Connective: "dropwise", Shape: ShapeFlag},
			{Tag: TagTemperature, Connective: "at"},
		},
	},
	Recrystallize: {
		Kind:    Recrystallize,
		Leading: leading(TagSolvent, "from", true),
	},
	Reflux: {
		Kind: Reflux,
		Params: []ParamSpec{
			{Tag: TagDuration, Connective: "for"},
			{Tag: TagAtmosphere, Connective: "under"},
			{Tag: TagDeanStark, Connective: "with Dean-Stark apparatus", Shape: ShapeFlag},
		},
	},
	SetTemperature: {
		Kind:   SetTemperature,
		Params: []ParamSpec{{Tag: TagTemperature, Required: true}},
	},
	Sonicate: {
		Kind: Sonicate,
		Params: []ParamSpec{
			{Tag: TagDuration, Connective: "for"},
			{Tag: TagTemperature, Connective: "at"},
		},
	},
	Stir: {
		Kind: Stir,
		Params: []ParamSpec{
			{Tag: TagDuration, Connective: "for"},
			{Tag: TagTemperature, Connective: "at"},
			{Tag: TagAtmosphere, Connective: "under"},
		},
	},
	Triturate: {
		Kind:    Triturate,
		Leading: leading(TagSolvent, "with", true),
	},
	Wait: {
		Kind: Wait,
		Params: []ParamSpec{
			{Tag: TagDuration, Connective: "for", Required: true},
			{Tag: TagTemperature, Connective: "at"},
		},
	},
	Wash: {
		Kind:    Wash,
		Leading: leading(TagMaterial, "with", true),
		Params:  []ParamSpec{{Tag: TagRepetitions, Shape: ShapeRepetitions}},
	},
	Yield: {
		Kind:    Yield,
		Leading: leading(TagMaterial, "", true),
	},
}

// kindOrder keeps Kinds() deterministic.
var kindOrder = []Kind{
	Add, CollectLayer, Concentrate, Degas, DrySolid, DrySolution, Extract,
	Filter, FollowOtherProcedure, InvalidAction, MakeSolution, Microwave,
	NoAction, OtherLanguage, Partition, PH, PhaseSeparation, Purify, Quench,
	Recrystallize, Reflux, SetTemperature, Sonicate, Stir, Triturate, Wait,
	Wash, Yield,
}

// Spec returns the grammar entry for a kind.
func Spec(k Kind) (KindSpec, bool) {
	s, ok := registry[k]
	return s, ok
}

// Kinds returns all known action kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// KindFromToken resolves an uppercase token to an action kind.
func KindFromToken(tok string) (Kind, bool) {
	_, ok := registry[Kind(tok)]
	if !ok {
		return "", false
	}
	return Kind(tok), true
}

// TakesDuration reports whether the kind has a duration slot, used by the
// WAIT merging post-processing rule.
func TakesDuration(k Kind) bool {
	s, ok := registry[k]
	return ok && s.Takes(TagDuration)
}

// Canonicalize reorders an action's parameters into grammar order: leading
// slot first, then the trailing slots in table order. Sequence equality is
// order-sensitive, so transformations that insert parameters go through
// this before returning.
func Canonicalize(a Action) Action {
	spec, ok := registry[a.Kind]
	if !ok || spec.MultiMaterial || spec.FreeForm {
		return a.Clone()
	}

	out := Action{Kind: a.Kind}
	taken := make([]bool, len(a.Parameters))

	take := func(tag string) {
		for i, p := range a.Parameters {
			if !taken[i] && p.Tag == tag {
				out.Parameters = append(out.Parameters, p)
				taken[i] = true
			}
		}
	}

	if spec.Leading != nil {
		take(spec.Leading.Tag)
	}
	for _, p := range spec.Params {
		take(p.Tag)
	}
	for i, p := range a.Parameters {
		if !taken[i] {
			out.Parameters = append(out.Parameters, p)
		}
	}
	return out
}
