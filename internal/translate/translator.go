// Package translate holds the boundary to the external sequence-to-sequence
// model: sentences in, raw action strings out. Model invocation details
// (tokenization, batching) live on the other side of that boundary.
package translate

import "context"

// Translator turns procedure sentences into raw action strings, one per
// input sentence. The output is unparsed and may be invalid; parsing and
// cleanup happen downstream.
type Translator interface {
	Translate(ctx context.Context, sentences []string) ([]string, error)
}
