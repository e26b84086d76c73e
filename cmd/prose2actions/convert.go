package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chemtrace/prose2actions/internal/actions"
)

func convertCmd() *cobra.Command {
	var (
		inFile    string
		roundTrip bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Validate action strings against the grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(inFile)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return fmt.Errorf("%s is empty", inFile)
			}

			conv := newConverter()
			valid := 0
			for i, line := range lines {
				seq, err := conv.StringToActions(line)
				if err != nil {
					log.Debug().Int("line", i+1).Err(err).Msg("invalid action string")
					continue
				}
				if roundTrip {
					serialized, err := conv.ActionsToString(seq)
					if err != nil {
						return fmt.Errorf("line %d: re-serialize: %w", i+1, err)
					}
					reparsed, err := conv.StringToActions(serialized)
					if err != nil || !actions.SequencesEqual(seq, reparsed) {
						log.Warn().Int("line", i+1).Msg("round trip unstable")
						continue
					}
				}
				valid++
			}

			fmt.Printf("valid: %d/%d (%.1f%%)\n", valid, len(lines), 100*float64(valid)/float64(len(lines)))
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "file with one action string per line")
	cmd.Flags().BoolVar(&roundTrip, "roundtrip", false, "also check parse/serialize round-trip stability")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
