// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/output"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Viper keys. PubMed settings are flat so they map to env vars such as
// GET_PAPERS_LIST_API_KEY.
const (
	keyDebug      = "debug"
	keyLogLevel   = "log_level"
	keyFile       = "file"
	keyFormat     = "format"
	keySecretsDir = "secrets_dir"
	keyMaxResults = "max_results"
	keyWorkers    = "workers"
	keyTimeout    = "timeout"
)

// cliConfig is everything a run needs, resolved from flags, env, and file.
type cliConfig struct {
	PubMed     types.PubMedConfig
	Debug      bool
	LogLevel   string
	File       string
	Format     output.Format
	SecretsDir string
}

func setDefaults(v *viper.Viper) {
	def := types.DefaultPubMedConfig()
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("database", def.Database)
	v.SetDefault("tool", def.Tool)
	v.SetDefault("email", "")
	v.SetDefault("api_key", "")
	v.SetDefault("user_agent", def.UserAgent)
	v.SetDefault(keyTimeout, def.Timeout)
	v.SetDefault(keyMaxResults, def.MaxResults)
	v.SetDefault(keyWorkers, def.Workers)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keySecretsDir, ".secrets")
}

// loadConfig resolves the run configuration from v. Zero-valued flags fall
// back to the defaults so "--max 0" behaves like leaving the flag out.
func loadConfig(v *viper.Viper) (cliConfig, error) {
	var pm types.PubMedConfig
	if err := v.Unmarshal(&pm); err != nil {
		return cliConfig{}, fmt.Errorf("decoding config: %w", err)
	}

	def := types.DefaultPubMedConfig()
	if pm.MaxResults <= 0 {
		pm.MaxResults = def.MaxResults
	}
	if pm.Workers <= 0 {
		pm.Workers = def.Workers
	}
	if pm.Timeout <= 0 {
		pm.Timeout = def.Timeout
	}

	cfg := cliConfig{
		PubMed:     pm,
		Debug:      v.GetBool(keyDebug),
		LogLevel:   v.GetString(keyLogLevel),
		File:       v.GetString(keyFile),
		SecretsDir: v.GetString(keySecretsDir),
	}

	format, err := resolveFormat(v.GetString(keyFormat), cfg.File)
	if err != nil {
		return cliConfig{}, err
	}
	cfg.Format = format
	return cfg, nil
}

// resolveFormat picks the explicit format if given, otherwise infers one
// from the output path, otherwise prints to the console.
func resolveFormat(explicit, file string) (output.Format, error) {
	if explicit != "" {
		f, err := output.ParseFormat(explicit)
		if err != nil {
			return "", err
		}
		if f == output.FormatSQLite && file == "" {
			return "", fmt.Errorf("--format sqlite requires --file")
		}
		return f, nil
	}
	if file != "" {
		return output.FormatForPath(file), nil
	}
	return output.FormatConsole, nil
}
