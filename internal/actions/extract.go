package actions

// Slot addresses one parameter inside an action sequence, so that callers
// can read and update values without copying whole actions around.
type Slot struct {
	Action int
	Param  int
}

// SolutionPlaceholder is the material name used when an action refers to a
// solution prepared by a preceding MAKESOLUTION.
const SolutionPlaceholder = "SLN"

func isChemicalSlot(kind Kind, tag string) bool {
	spec, ok := Spec(kind)
	if !ok {
		return false
	}
	if spec.Leading != nil && spec.Leading.Tag == tag {
		return spec.Leading.Chemical
	}
	return spec.MultiMaterial && tag == TagMaterial
}

// ChemicalSlots returns the slots of all chemical-valued parameters in the
// sequence, in order.
func ChemicalSlots(seq []Action) []Slot {
	var out []Slot
	for i, a := range seq {
		for j, p := range a.Parameters {
			if isChemicalSlot(a.Kind, p.Tag) {
				out = append(out, Slot{Action: i, Param: j})
			}
		}
	}
	return out
}

// Chemicals returns all chemicals present in the sequence.
func Chemicals(seq []Action) []Chemical {
	slots := ChemicalSlots(seq)
	out := make([]Chemical, 0, len(slots))
	for _, s := range slots {
		out = append(out, ParseChemical(seq[s.Action].Parameters[s.Param].Value))
	}
	return out
}

// CompoundNames returns all compound names in the sequence, including
// slots that hold a bare name rather than a chemical with quantities
// (DEGAS gas, DRYSOLUTION material). The SLN placeholder is skipped.
func CompoundNames(seq []Action) []string {
	var out []string
	for _, a := range seq {
		for _, p := range a.Parameters {
			if p.Value == "" {
				continue
			}
			switch {
			case isChemicalSlot(a.Kind, p.Tag):
				name := ParseChemical(p.Value).Name
				if name != SolutionPlaceholder {
					out = append(out, name)
				}
			case p.Tag == TagGas,
				p.Tag == TagMaterial && a.Kind == DrySolution:
				out = append(out, p.Value)
			}
		}
	}
	return out
}

// TaggedSlots returns the slots of all parameters with the given tag that
// carry a non-empty value.
func TaggedSlots(seq []Action, tag string) []Slot {
	var out []Slot
	for i, a := range seq {
		for j, p := range a.Parameters {
			if p.Tag == tag && p.Value != "" {
				out = append(out, Slot{Action: i, Param: j})
			}
		}
	}
	return out
}

// ExtractValues returns all non-empty values for the given tag, in order.
func ExtractValues(seq []Action, tag string) []string {
	slots := TaggedSlots(seq, tag)
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, seq[s.Action].Parameters[s.Param].Value)
	}
	return out
}

// ApplyToTag rewrites every non-empty value of the given tag in place.
// Callers that need the original sequence must clone it first.
func ApplyToTag(seq []Action, tag string, fn func(string) string) {
	for _, s := range TaggedSlots(seq, tag) {
		p := &seq[s.Action].Parameters[s.Param]
		p.Value = fn(p.Value)
	}
}

// RemoveQuantities strips the quantities from all chemical slots in place.
func RemoveQuantities(seq []Action) {
	for _, s := range ChemicalSlots(seq) {
		p := &seq[s.Action].Parameters[s.Param]
		c := ParseChemical(p.Value)
		c.Quantities = nil
		p.Value = c.String()
	}
}
