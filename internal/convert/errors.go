// Package convert implements the bidirectional conversion between action
// sequences and their readable string representation.
package convert

import (
	"fmt"

	"github.com/chemtrace/prose2actions/internal/actions"
)

// UnknownActionError reports an action token outside the closed vocabulary.
type UnknownActionError struct {
	Token   string
	Segment string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q in %q", e.Token, e.Segment)
}

// MalformedActionError reports action text that could not be attributed to
// the recognized parameters of its kind.
type MalformedActionError struct {
	Kind    actions.Kind
	Segment string
	Reason  string
}

func (e *MalformedActionError) Error() string {
	return fmt.Sprintf("malformed %s action %q: %s", e.Kind, e.Segment, e.Reason)
}

// SerializeError reports an action that cannot be rendered as a string.
type SerializeError struct {
	Kind   actions.Kind
	Reason string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("cannot serialize %s action: %s", e.Kind, e.Reason)
}
