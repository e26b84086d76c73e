package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtrace/prose2actions/internal/convert"
)

func TestFullSequenceAccuracy(t *testing.T) {
	t.Parallel()

	truth := []string{"STIR for 1 h.", "FILTER keep filtrate.", "CONCENTRATE."}
	pred := []string{"STIR for 1 h.", "FILTER keep precipitate.", "CONCENTRATE."}

	acc, err := FullSequenceAccuracy(truth, pred)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, acc, 1e-9)

	_, err = FullSequenceAccuracy(truth, pred[:2])
	require.Error(t, err)
	_, err = FullSequenceAccuracy(nil, nil)
	require.Error(t, err)
}

func TestValidity(t *testing.T) {
	t.Parallel()

	pred := []string{"STIR for 1 h.", "DANCE wildly.", "FILTER keep filtrate."}
	v, err := Validity(pred, convert.NewConverter())
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, v, 1e-9)

	_, err = Validity(nil, nil)
	require.Error(t, err)
}

func TestLevenshteinSimilarity(t *testing.T) {
	t.Parallel()

	perfect, err := LevenshteinSimilarity([]string{"STIR."}, []string{"STIR."})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, perfect, 1e-9)

	// one substituted rune out of five
	s, err := LevenshteinSimilarity([]string{"abcde"}, []string{"abcdX"})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, s, 1e-9)
}

func TestPartialAccuracy(t *testing.T) {
	t.Parallel()

	truth := []string{"abcde", "abcde"}
	pred := []string{"abcde", "abcdX"}

	all, err := PartialAccuracy(truth, pred, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, all, 1e-9)

	strict, err := PartialAccuracy(truth, pred, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, strict, 1e-9)
}
