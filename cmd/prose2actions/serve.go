package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chemtrace/prose2actions/internal/translate"
	"github.com/chemtrace/prose2actions/internal/web"
)

func serveCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translation and cleanup pipeline as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			chain, err := buildChain(cfg)
			if err != nil {
				return err
			}
			if listen == "" {
				listen = cfg.Server.Listen
			}

			conv := newConverter()

			var translator *translate.ParagraphTranslator
			if cfg.Translation.BaseURL != "" {
				client, err := translate.NewClient(translate.Config{
					BaseURL:   cfg.Translation.BaseURL,
					APIKeyEnv: cfg.Translation.APIKeyEnv,
					Timeout:   cfg.Translation.Timeout,
				}, nil)
				if err != nil {
					return err
				}
				translator = translate.NewParagraphTranslator(client, conv, nil, chain)
			} else {
				log.Warn().Msg("no translation service configured, /translate disabled")
			}

			server := web.NewServer(translator, conv, chain)
			log.Info().Str("listen", listen).Msg("serving API")
			return http.ListenAndServe(listen, server.Routes())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	return cmd
}
