package actions

import (
	"regexp"
	"strings"
)

// Chemical is a compound with its optional quantities, as stored in the
// value of a chemical parameter slot: "4-butyloctane (5 ml, 1 mmol)".
// Several quantities may be given simultaneously, hence the list.
type Chemical struct {
	Name       string
	Quantities []string
}

// A name containing " (" would be indistinguishable from the start of the
// quantity block; a zero-width non-joiner after the space keeps the two
// apart and is stripped again on parsing.
const parenEscape = " ‌("

var quantityBlockRe = regexp.MustCompile(`^.*( \(.*\))$`)

// ParseChemical decomposes a chemical slot value into name and quantities.
func ParseChemical(s string) Chemical {
	m := quantityBlockRe.FindStringSubmatch(s)
	if m == nil {
		return Chemical{Name: strings.ReplaceAll(s, parenEscape, " (")}
	}
	block := m[1]
	name := strings.TrimSuffix(s, block)
	name = strings.ReplaceAll(name, parenEscape, " (")
	// strip " (" and ")"
	inner := block[2 : len(block)-1]
	return Chemical{Name: name, Quantities: strings.Split(inner, ", ")}
}

// String recomposes the slot value for a chemical.
func (c Chemical) String() string {
	name := strings.ReplaceAll(c.Name, " (", parenEscape)
	if len(c.Quantities) == 0 {
		return name
	}
	return name + " (" + strings.Join(c.Quantities, ", ") + ")"
}

// ChemicalsToText joins several chemicals in their multi-material form.
func ChemicalsToText(cs []Chemical) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " and ")
}

// TextToChemicals splits a multi-material text back into chemicals.
func TextToChemicals(s string) []Chemical {
	parts := strings.Split(s, " and ")
	out := make([]Chemical, len(parts))
	for i, p := range parts {
		out[i] = ParseChemical(p)
	}
	return out
}
