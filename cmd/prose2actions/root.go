package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chemtrace/prose2actions/internal/logging"
)

var (
	cfgFile string
	debug   bool
	rootCmd = &cobra.Command{
		Use:           "prose2actions",
		Short:         "prose2actions converts synthesis procedure text to structured actions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", filepath.Join(".prose2actions", "config.yaml"), "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		return fmt.Errorf("bind config flag: %w", err)
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Init(debug)
		// credentials for the translation service may live in a .env file
		_ = godotenv.Load()
	}
	rootCmd.AddCommand(augmentCmd())
	rootCmd.AddCommand(postprocessCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(translateCmd())
	rootCmd.AddCommand(corpusCmd())
	rootCmd.AddCommand(metricsCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd.Execute()
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = filepath.Join(".prose2actions", "config.yaml")
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
}
