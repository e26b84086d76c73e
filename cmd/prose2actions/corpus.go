package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chemtrace/prose2actions/internal/corpus"
)

func corpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage the annotated sample store",
	}
	cmd.AddCommand(corpusImportCmd())
	cmd.AddCommand(corpusExportCmd())
	cmd.AddCommand(corpusStatsCmd())
	cmd.AddCommand(corpusDeleteCmd())
	return cmd
}

func corpusImportCmd() *cobra.Command {
	var (
		dataset string
		srcFile string
		tgtFile string
		origin  string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import an aligned file pair into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := newConverter()
			samples, err := corpus.LoadSamples(srcFile, tgtFile, conv)
			if err != nil {
				return err
			}

			storeDB, closeDB, err := openStore()
			if err != nil {
				return err
			}
			defer closeDB()

			store := corpus.NewStore(storeDB, conv)
			inserted, err := store.Import(cmd.Context(), dataset, origin, samples)
			if err != nil {
				return err
			}
			log.Info().Int("inserted", inserted).Int("total", len(samples)).Str("dataset", dataset).Msg("samples imported")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset name")
	cmd.Flags().StringVar(&srcFile, "src", "", "source text file")
	cmd.Flags().StringVar(&tgtFile, "tgt", "", "action strings file")
	cmd.Flags().StringVar(&origin, "origin", corpus.OriginAnnotated, "sample origin (annotated, augmented, predicted)")
	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("tgt")
	return cmd
}

func corpusExportCmd() *cobra.Command {
	var (
		dataset string
		srcFile string
		tgtFile string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a dataset as an aligned file pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, closeDB, err := openStore()
			if err != nil {
				return err
			}
			defer closeDB()

			conv := newConverter()
			store := corpus.NewStore(storeDB, conv)
			samples, err := store.Export(cmd.Context(), dataset)
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				return fmt.Errorf("dataset %q is empty", dataset)
			}
			if err := corpus.SaveSamples(samples, conv, srcFile, tgtFile); err != nil {
				return err
			}
			log.Info().Int("samples", len(samples)).Str("dataset", dataset).Msg("dataset exported")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset name")
	cmd.Flags().StringVar(&srcFile, "src", "", "source text file to write")
	cmd.Flags().StringVar(&tgtFile, "tgt", "", "action strings file to write")
	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("tgt")
	return cmd
}

func corpusStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-dataset sample counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, closeDB, err := openStore()
			if err != nil {
				return err
			}
			defer closeDB()

			store := corpus.NewStore(storeDB, newConverter())
			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			for _, st := range stats {
				fmt.Printf("%s\t%s\t%d\n", st.Dataset, st.Origin, st.Count)
			}
			return nil
		},
	}
}

func corpusDeleteCmd() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a dataset from the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDB, closeDB, err := openStore()
			if err != nil {
				return err
			}
			defer closeDB()

			store := corpus.NewStore(storeDB, newConverter())
			deleted, err := store.DeleteDataset(cmd.Context(), dataset)
			if err != nil {
				return err
			}
			log.Info().Int("deleted", deleted).Str("dataset", dataset).Msg("dataset deleted")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset name")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}
