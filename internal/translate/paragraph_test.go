package translate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtrace/prose2actions/internal/actions"
	"github.com/chemtrace/prose2actions/internal/convert"
)

// fakeTranslator maps each sentence to a canned raw action string.
type fakeTranslator struct {
	byText map[string]string
}

func (f *fakeTranslator) Translate(_ context.Context, sentences []string) ([]string, error) {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		raw, ok := f.byText[s]
		if !ok {
			return nil, fmt.Errorf("unexpected sentence %q", s)
		}
		out[i] = raw
	}
	return out, nil
}

func TestParagraphTranslatorExtract(t *testing.T) {
	t.Parallel()

	translator := &fakeTranslator{byText: map[string]string{
		"The mixture was stirred at 5 °C.":       "NOACTION; STIR at 5 °C; WAIT for 10 minutes.",
		"The solids were filtered off and dried.": "FILTER; DRYSOLUTION over sodium sulfate.",
	}}
	pt := NewParagraphTranslator(translator, convert.NewConverter(), nil, nil)

	paragraph, err := pt.Extract(context.Background(),
		"The mixture was stirred at 5 °C. The solids were filtered off and dried.")
	require.NoError(t, err)
	require.Len(t, paragraph.Sentences, 2)

	conv := convert.NewConverter()
	first, err := conv.ActionsToString(paragraph.Sentences[0].Actions)
	require.NoError(t, err)
	assert.Equal(t, "STIR for 10 minutes at 5 °C.", first)

	second, err := conv.ActionsToString(paragraph.Sentences[1].Actions)
	require.NoError(t, err)
	assert.Equal(t, "FILTER keep filtrate; DRYSOLUTION over sodium sulfate.", second)

	// flattened view keeps sentence order
	flat, err := conv.ActionsToString(paragraph.Actions())
	require.NoError(t, err)
	assert.Equal(t,
		"STIR for 10 minutes at 5 °C; FILTER keep filtrate; DRYSOLUTION over sodium sulfate.",
		flat)
}

func TestParagraphTranslatorLenientParsing(t *testing.T) {
	t.Parallel()

	translator := &fakeTranslator{byText: map[string]string{
		"Gibberish in, gibberish out.": "DANCE wildly.",
	}}
	pt := NewParagraphTranslator(translator, convert.NewConverter(), nil, nil)

	paragraph, err := pt.Extract(context.Background(), "Gibberish in, gibberish out.")
	require.NoError(t, err)
	require.Len(t, paragraph.Sentences, 1)
	require.Len(t, paragraph.Sentences[0].Actions, 1)
	assert.Equal(t, actions.InvalidAction, paragraph.Sentences[0].Actions[0].Kind)
}

func TestParagraphTranslatorEmptyText(t *testing.T) {
	t.Parallel()

	pt := NewParagraphTranslator(&fakeTranslator{}, convert.NewConverter(), nil, nil)
	paragraph, err := pt.Extract(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, paragraph.Sentences)
}

func TestParagraphTranslatorPropagatesErrors(t *testing.T) {
	t.Parallel()

	pt := NewParagraphTranslator(&fakeTranslator{}, convert.NewConverter(), nil, nil)
	_, err := pt.Extract(context.Background(), "Unknown sentence.")
	require.Error(t, err)
}
