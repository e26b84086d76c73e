package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chemtrace/prose2actions/internal/augment"
	"github.com/chemtrace/prose2actions/internal/corpus"
)

func augmentCmd() *cobra.Command {
	var (
		dataDir     string
		outDir      string
		poolsFile   string
		rounds      int
		probability float64
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "augment",
		Short: "Expand an aligned training corpus by randomized substitution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("rounds") {
				rounds = cfg.Augmentation.Rounds
			}
			if !cmd.Flags().Changed("probability") {
				probability = cfg.Augmentation.Probability
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Augmentation.Seed
			}
			if poolsFile == "" {
				poolsFile = cfg.Augmentation.PoolsFile
			}
			if poolsFile == "" {
				return fmt.Errorf("a value pools file is required (--pools or augmentation.pools_file)")
			}

			conv := newConverter()
			samples, err := corpus.LoadSamples(
				filepath.Join(dataDir, "src-train.txt"),
				filepath.Join(dataDir, "tgt-train.txt"),
				conv,
			)
			if err != nil {
				return err
			}
			log.Info().Int("samples", len(samples)).Msg("train set loaded")

			pools, err := corpus.LoadPools(poolsFile)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			pipeline, err := augment.NewDefaultPipeline(probability, pools, rng)
			if err != nil {
				return err
			}

			augmented := pipeline.Expand(samples, rounds, rng)
			log.Info().Int("samples", len(augmented)).Msg("augmented train set built")

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			err = corpus.SaveSamples(augmented, conv,
				filepath.Join(outDir, "src-train-augmented.txt"),
				filepath.Join(outDir, "tgt-train-augmented.txt"),
			)
			if err != nil {
				return err
			}
			log.Info().Str("dir", outDir).Msg("augmented corpus written")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", ".", "directory holding src-train.txt and tgt-train.txt")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for the augmented corpus")
	cmd.Flags().StringVar(&poolsFile, "pools", "", "YAML file with candidate value pools")
	cmd.Flags().IntVar(&rounds, "rounds", 3, "augmentation rounds over the train set")
	cmd.Flags().Float64Var(&probability, "probability", 0.5, "per-value substitution probability")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	return cmd
}
