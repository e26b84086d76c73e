package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chemtrace/prose2actions/internal/translate"
)

func translateCmd() *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Extract actions from procedure text via the translation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			chain, err := buildChain(cfg)
			if err != nil {
				return err
			}

			var text string
			switch {
			case inFile != "":
				data, err := os.ReadFile(inFile)
				if err != nil {
					return fmt.Errorf("read input file: %w", err)
				}
				text = string(data)
			case len(args) > 0:
				text = strings.Join(args, " ")
			default:
				return fmt.Errorf("procedure text is required (argument or --in)")
			}

			client, err := translate.NewClient(translate.Config{
				BaseURL:   cfg.Translation.BaseURL,
				APIKeyEnv: cfg.Translation.APIKeyEnv,
				Timeout:   cfg.Translation.Timeout,
			}, nil)
			if err != nil {
				return err
			}

			conv := newConverter()
			translator := translate.NewParagraphTranslator(client, conv, nil, chain)
			paragraph, err := translator.Extract(cmd.Context(), text)
			if err != nil {
				return err
			}

			for _, sentence := range paragraph.Sentences {
				line, err := conv.ActionsToString(sentence.Actions)
				if err != nil {
					return err
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inFile, "in", "", "file with the procedure paragraph")
	return cmd
}
