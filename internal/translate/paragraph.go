package translate

import (
	"context"
	"fmt"

	"github.com/chemtrace/prose2actions/internal/actions"
	"github.com/chemtrace/prose2actions/internal/convert"
	"github.com/chemtrace/prose2actions/internal/postprocess"
	"github.com/chemtrace/prose2actions/internal/split"
)

// Sentence is one sentence of a procedure with its extracted actions.
type Sentence struct {
	Text    string
	Actions []actions.Action
}

// Paragraph is a procedure paragraph and its per-sentence actions.
type Paragraph struct {
	Text      string
	Sentences []Sentence
}

// Actions flattens the per-sentence actions into one ordered sequence.
func (p Paragraph) Actions() []actions.Action {
	var out []actions.Action
	for _, s := range p.Sentences {
		out = append(out, s.Actions...)
	}
	return out
}

// ParagraphTranslator extracts actions from whole procedure paragraphs:
// split into sentences, translate, parse, post-process. Sentences whose
// raw translation does not parse become INVALIDACTION entries rather than
// failing the paragraph.
type ParagraphTranslator struct {
	translator    Translator
	converter     *convert.Converter
	splitter      split.Splitter
	postprocessor postprocess.Postprocessor
}

// NewParagraphTranslator wires the translation pipeline. A nil splitter
// defaults to the dot splitter, a nil postprocessor to the default chain.
func NewParagraphTranslator(translator Translator, converter *convert.Converter, splitter split.Splitter, postprocessor postprocess.Postprocessor) *ParagraphTranslator {
	if splitter == nil {
		splitter = split.DotSplitter{}
	}
	if postprocessor == nil {
		postprocessor = postprocess.Default()
	}
	return &ParagraphTranslator{
		translator:    translator,
		converter:     converter,
		splitter:      splitter,
		postprocessor: postprocessor,
	}
}

// Extract translates a paragraph into its action representation.
func (t *ParagraphTranslator) Extract(ctx context.Context, text string) (Paragraph, error) {
	sentences := t.splitter.Split(text)
	if len(sentences) == 0 {
		return Paragraph{Text: text}, nil
	}

	raw, err := t.translator.Translate(ctx, sentences)
	if err != nil {
		return Paragraph{}, fmt.Errorf("translate paragraph: %w", err)
	}

	paragraph := Paragraph{Text: text, Sentences: make([]Sentence, len(sentences))}
	for i, sentenceText := range sentences {
		seq := t.converter.StringToActionsLenient(raw[i])
		seq = t.postprocessor.Postprocess(seq)
		paragraph.Sentences[i] = Sentence{Text: sentenceText, Actions: seq}
	}
	return paragraph, nil
}
