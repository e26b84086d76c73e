// Package actions defines the structured representation of synthesis actions.
package actions

// Kind identifies one of the closed set of synthesis action kinds. Its value
// is the uppercase token used in the serialized action string.
type Kind string

// The closed action vocabulary. Adding a kind requires a matching entry in
// the grammar table (registry.go).
const (
	Add                  Kind = "ADD"
	CollectLayer         Kind = "COLLECTLAYER"
	Concentrate          Kind = "CONCENTRATE"
	Degas                Kind = "DEGAS"
	DrySolid             Kind = "DRYSOLID"
	DrySolution          Kind = "DRYSOLUTION"
	Extract              Kind = "EXTRACT"
	Filter               Kind = "FILTER"
	FollowOtherProcedure Kind = "FOLLOWOTHERPROCEDURE"
	InvalidAction        Kind = "INVALIDACTION"
	MakeSolution         Kind = "MAKESOLUTION"
	Microwave            Kind = "MICROWAVE"
	NoAction             Kind = "NOACTION"
	OtherLanguage        Kind = "OTHERLANGUAGE"
	Partition            Kind = "PARTITION"
	PH                   Kind = "PH"
	PhaseSeparation      Kind = "PHASESEPARATION"
	Purify               Kind = "PURIFY"
	Quench               Kind = "QUENCH"
	Recrystallize        Kind = "RECRYSTALLIZE"
	Reflux               Kind = "REFLUX"
	SetTemperature       Kind = "SETTEMPERATURE"
	Sonicate             Kind = "SONICATE"
	Stir                 Kind = "STIR"
	Triturate            Kind = "TRITURATE"
	Wait                 Kind = "WAIT"
	Wash                 Kind = "WASH"
	Yield                Kind = "YIELD"
)

// Parameter tags. The tags recognized by an action kind are fixed by the
// grammar table.
const (
	TagMaterial    = "material"
	TagSolvent     = "solvent"
	TagTemperature = "temperature"
	TagDuration    = "duration"
	TagAtmosphere  = "atmosphere"
	TagDropwise    = "dropwise"
	TagLayer       = "layer"
	TagGas         = "gas"
	TagPhase       = "phase"
	TagRepetitions = "repetitions"
	TagPH          = "ph"
	TagDeanStark   = "dean-stark"
	TagError       = "error"
)

// Phase values for Filter.
const (
	PhaseFiltrate    = "filtrate"
	PhasePrecipitate = "precipitate"
)

// Layer values for CollectLayer.
const (
	LayerAqueous = "aqueous"
	LayerOrganic = "organic"
)

// Parameter is one tagged argument slot of an action. Flag parameters
// (e.g. dropwise) carry an empty value; their presence is the information.
type Parameter struct {
	Tag   string
	Value string
}

// Action is a single lab operation: a kind plus its ordered parameters.
// Transformations never mutate an Action in place; they work on clones.
type Action struct {
	Kind       Kind
	Parameters []Parameter
}

// New constructs an action from tag/value pairs in the given order.
func New(kind Kind, params ...Parameter) Action {
	return Action{Kind: kind, Parameters: params}
}

// Param returns a tag/value pair, for use with New.
func Param(tag, value string) Parameter {
	return Parameter{Tag: tag, Value: value}
}

// Flag returns a valueless parameter, for use with New.
func Flag(tag string) Parameter {
	return Parameter{Tag: tag}
}

// Get returns the value of the first parameter with the given tag.
func (a Action) Get(tag string) (string, bool) {
	for _, p := range a.Parameters {
		if p.Tag == tag {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether the action carries a parameter with the given tag.
func (a Action) Has(tag string) bool {
	_, ok := a.Get(tag)
	return ok
}

// Values returns the values of all parameters with the given tag, in order.
func (a Action) Values(tag string) []string {
	var out []string
	for _, p := range a.Parameters {
		if p.Tag == tag {
			out = append(out, p.Value)
		}
	}
	return out
}

// With returns a copy of the action where the first parameter with the given
// tag has the new value. If no such parameter exists, one is appended.
func (a Action) With(tag, value string) Action {
	c := a.Clone()
	for i, p := range c.Parameters {
		if p.Tag == tag {
			c.Parameters[i].Value = value
			return c
		}
	}
	c.Parameters = append(c.Parameters, Parameter{Tag: tag, Value: value})
	return c
}

// Without returns a copy of the action with all parameters of the given tag
// removed.
func (a Action) Without(tag string) Action {
	c := Action{Kind: a.Kind}
	for _, p := range a.Parameters {
		if p.Tag != tag {
			c.Parameters = append(c.Parameters, p)
		}
	}
	return c
}

// Clone returns a deep copy of the action.
func (a Action) Clone() Action {
	c := Action{Kind: a.Kind}
	if a.Parameters != nil {
		c.Parameters = make([]Parameter, len(a.Parameters))
		copy(c.Parameters, a.Parameters)
	}
	return c
}

// Equal reports exact equality: same kind, same parameters in the same order.
func (a Action) Equal(b Action) bool {
	if a.Kind != b.Kind || len(a.Parameters) != len(b.Parameters) {
		return false
	}
	for i := range a.Parameters {
		if a.Parameters[i] != b.Parameters[i] {
			return false
		}
	}
	return true
}

// CloneSequence deep-copies a sequence of actions.
func CloneSequence(in []Action) []Action {
	if in == nil {
		return nil
	}
	out := make([]Action, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

// SequencesEqual reports exact equality of two action sequences, including
// order. This is the comparison used for evaluation and round-trip checks.
func SequencesEqual(a, b []Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
