// Package corpus handles training samples: text paired with actions, the
// aligned-file interchange format and the annotation store.
package corpus

import (
	"bufio"
	"fmt"
	"os"

	"github.com/chemtrace/prose2actions/internal/actions"
	"github.com/chemtrace/prose2actions/internal/convert"
)

// Sample pairs a sentence (or paragraph) with its action sequence. One text
// maps to exactly one ordered sequence; transformations keep both sides
// consistent and never expose partially edited samples.
type Sample struct {
	Text    string
	Actions []actions.Action
}

// Clone deep-copies the sample.
func (s Sample) Clone() Sample {
	return Sample{Text: s.Text, Actions: actions.CloneSequence(s.Actions)}
}

// Equal reports exact equality of text and action sequence.
func (s Sample) Equal(o Sample) bool {
	return s.Text == o.Text && actions.SequencesEqual(s.Actions, o.Actions)
}

// LoadSamples reads samples from a pair of aligned files: one line of source
// text and one line of serialized actions per sample.
func LoadSamples(textFile, actionsFile string, conv *convert.Converter) ([]Sample, error) {
	texts, err := readLines(textFile)
	if err != nil {
		return nil, err
	}
	actionLines, err := readLines(actionsFile)
	if err != nil {
		return nil, err
	}
	if len(texts) != len(actionLines) {
		return nil, fmt.Errorf("aligned files out of sync: %d texts, %d action lines", len(texts), len(actionLines))
	}

	samples := make([]Sample, len(texts))
	for i, line := range actionLines {
		seq, err := conv.StringToActions(line)
		if err != nil {
			return nil, fmt.Errorf("parse actions line %d: %w", i+1, err)
		}
		samples[i] = Sample{Text: texts[i], Actions: seq}
	}
	return samples, nil
}

// SaveSamples writes samples to a pair of aligned files.
func SaveSamples(samples []Sample, conv *convert.Converter, textFile, actionsFile string) error {
	fText, err := os.Create(textFile)
	if err != nil {
		return fmt.Errorf("create text file: %w", err)
	}
	defer func() { _ = fText.Close() }()
	fActions, err := os.Create(actionsFile)
	if err != nil {
		return fmt.Errorf("create actions file: %w", err)
	}
	defer func() { _ = fActions.Close() }()

	wText := bufio.NewWriter(fText)
	wActions := bufio.NewWriter(fActions)
	for _, s := range samples {
		line, err := conv.ActionsToString(s.Actions)
		if err != nil {
			return fmt.Errorf("serialize actions for %q: %w", s.Text, err)
		}
		if _, err := fmt.Fprintln(wText, s.Text); err != nil {
			return fmt.Errorf("write text line: %w", err)
		}
		if _, err := fmt.Fprintln(wActions, line); err != nil {
			return fmt.Errorf("write actions line: %w", err)
		}
	}
	if err := wText.Flush(); err != nil {
		return fmt.Errorf("flush text file: %w", err)
	}
	if err := wActions.Flush(); err != nil {
		return fmt.Errorf("flush actions file: %w", err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
