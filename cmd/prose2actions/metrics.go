package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chemtrace/prose2actions/internal/analysis"
)

func metricsCmd() *cobra.Command {
	var (
		truthFile string
		predFile  string
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Score predicted action strings against ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			truth, err := readLines(truthFile)
			if err != nil {
				return err
			}
			pred, err := readLines(predFile)
			if err != nil {
				return err
			}

			accuracy, err := analysis.FullSequenceAccuracy(truth, pred)
			if err != nil {
				return err
			}
			validity, err := analysis.Validity(pred, newConverter())
			if err != nil {
				return err
			}
			similarity, err := analysis.LevenshteinSimilarity(truth, pred)
			if err != nil {
				return err
			}
			partial, err := analysis.PartialAccuracy(truth, pred, threshold)
			if err != nil {
				return err
			}

			fmt.Printf("full sequence accuracy:  %.4f\n", accuracy)
			fmt.Printf("validity:                %.4f\n", validity)
			fmt.Printf("levenshtein similarity:  %.4f\n", similarity)
			fmt.Printf("partial accuracy (%.2f): %.4f\n", threshold, partial)
			return nil
		},
	}

	cmd.Flags().StringVar(&truthFile, "truth", "", "ground truth action strings file")
	cmd.Flags().StringVar(&predFile, "pred", "", "predicted action strings file")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.9, "similarity threshold for partial accuracy")
	_ = cmd.MarkFlagRequired("truth")
	_ = cmd.MarkFlagRequired("pred")
	return cmd
}
