package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func postprocessCmd() *cobra.Command {
	var (
		inFile  string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "postprocess",
		Short: "Clean a file of raw predicted action strings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			chain, err := buildChain(cfg)
			if err != nil {
				return err
			}

			lines, err := readLines(inFile)
			if err != nil {
				return err
			}

			conv := newConverter()
			out := make([]string, len(lines))
			for i, line := range lines {
				seq := conv.StringToActionsLenient(line)
				cleaned, err := conv.ActionsToString(chain.Postprocess(seq))
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				out[i] = cleaned
			}

			if outFile == "" {
				for _, line := range out {
					fmt.Println(line)
				}
				return nil
			}
			if err := writeLines(outFile, out); err != nil {
				return err
			}
			log.Info().Int("lines", len(out)).Str("file", outFile).Msg("cleaned action strings written")
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "file with one raw action string per line")
	cmd.Flags().StringVar(&outFile, "out", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
