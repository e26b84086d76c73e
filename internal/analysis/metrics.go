// Package analysis scores predicted action strings against references.
package analysis

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/chemtrace/prose2actions/internal/convert"
)

// FullSequenceAccuracy is the fraction of predictions that match the ground
// truth exactly.
func FullSequenceAccuracy(truth, pred []string) (float64, error) {
	if err := checkLengths(truth, pred); err != nil {
		return 0, err
	}
	correct := 0
	for i := range truth {
		if truth[i] == pred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth)), nil
}

// Validity is the fraction of predictions that parse as action strings.
func Validity(pred []string, conv *convert.Converter) (float64, error) {
	if len(pred) == 0 {
		return 0, fmt.Errorf("no predictions")
	}
	if conv == nil {
		conv = convert.NewConverter()
	}
	valid := 0
	for _, p := range pred {
		if _, err := conv.StringToActions(p); err == nil {
			valid++
		}
	}
	return float64(valid) / float64(len(pred)), nil
}

// LevenshteinSimilarity is the average normalized Levenshtein similarity
// between predictions and ground truth.
func LevenshteinSimilarity(truth, pred []string) (float64, error) {
	if err := checkLengths(truth, pred); err != nil {
		return 0, err
	}
	sum := 0.0
	for i := range truth {
		sum += similarity(truth[i], pred[i])
	}
	return sum / float64(len(truth)), nil
}

// PartialAccuracy is the fraction of predictions whose similarity to the
// ground truth reaches the threshold. A threshold of 1.0 is equivalent to
// FullSequenceAccuracy.
func PartialAccuracy(truth, pred []string, threshold float64) (float64, error) {
	if err := checkLengths(truth, pred); err != nil {
		return 0, err
	}
	hits := 0
	for i := range truth {
		if similarity(truth[i], pred[i]) >= threshold {
			hits++
		}
	}
	return float64(hits) / float64(len(truth)), nil
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}

func checkLengths(truth, pred []string) error {
	if len(truth) == 0 {
		return fmt.Errorf("no samples")
	}
	if len(truth) != len(pred) {
		return fmt.Errorf("length mismatch: %d truth, %d predictions", len(truth), len(pred))
	}
	return nil
}
