package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/chemtrace/prose2actions/internal/config"
	"github.com/chemtrace/prose2actions/internal/convert"
	"github.com/chemtrace/prose2actions/internal/db"
	"github.com/chemtrace/prose2actions/internal/postprocess"
)

func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := config.ValidateSettings(viper.AllSettings()); err != nil {
		return config.Config{}, err
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func buildChain(cfg config.Config) (postprocess.Postprocessor, error) {
	names := cfg.Postprocessors
	if len(names) == 0 {
		names = postprocess.DefaultNames()
	}
	return postprocess.FromNames(names)
}

func openStore() (*sql.DB, func(), error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, func() {}, err
	}
	stateDir := filepath.Join(workDir, ".prose2actions")
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, func() {}, err
	}
	dbPath := filepath.Join(stateDir, "corpus.db")
	storeDB, err := db.Open(dbPath)
	if err != nil {
		return nil, func() {}, err
	}
	return storeDB, func() { _ = storeDB.Close() }, nil
}

func newConverter() *convert.Converter {
	return convert.NewConverter()
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

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
