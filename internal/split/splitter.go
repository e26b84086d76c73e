// Package split breaks procedure paragraphs into sentences before
// translation.
package split

import (
	"regexp"
	"strings"
)

// Splitter splits a paragraph into sentences.
type Splitter interface {
	Split(text string) []string
}

// DotSplitter splits on full stops followed by a space, treating newlines as
// sentence boundaries too, and re-appends the full stop to each sentence.
type DotSplitter struct{}

var whitespaceRe = regexp.MustCompile(`\s+`)

func (DotSplitter) Split(text string) []string {
	var sentences []string
	for _, paragraph := range strings.Split(text, "\n") {
		paragraph = strings.TrimSpace(whitespaceRe.ReplaceAllString(paragraph, " "))
		if paragraph == "" {
			continue
		}
		for _, sentence := range strings.Split(paragraph, ". ") {
			if !strings.HasSuffix(sentence, ".") {
				sentence += "."
			}
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}
