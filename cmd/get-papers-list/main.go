// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI. It searches
// PubMed and lists papers with at least one author affiliated with a
// pharmaceutical or biotech company.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd fetches and filters papers for the query given as arguments.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list [query]",
	Short: "List PubMed papers with pharmaceutical/biotech-affiliated authors",
	Long: `get-papers-list runs a PubMed query, fetches every matching article, and
keeps the ones where at least one author lists a commercial affiliation
(pharma, biotech, Inc., Corp, Ltd, LLC, AG, SA, GmbH).

Results are printed to the console, or written to --file as CSV. The file
format follows the extension (.csv, .json, .yaml, .db) unless --format is set.

Examples:
  get-papers-list "pharma[AD] OR biotech[AD]"
  get-papers-list "cancer immunotherapy" --max 25 -f results.csv
  get-papers-list "CRISPR" --format table -d`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return run(ctx, strings.Join(args, " "), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/config.yaml)")

	flags := rootCmd.Flags()
	flags.BoolP("debug", "d", false, "print debug information during execution")
	flags.StringP("file", "f", "", "write results to this file instead of the console")
	flags.Int("max", 0, "maximum number of results to fetch (default 10)")
	flags.String("format", "", "output format: console, table, csv, json, yaml, sqlite")
	flags.Int("workers", 0, "concurrent article fetches (default 1, sequential)")
	flags.Duration("timeout", 0, "HTTP request timeout (default 60s)")

	for key, flag := range map[string]string{
		keyDebug:      "debug",
		keyFile:       "file",
		keyMaxResults: "max",
		keyFormat:     "format",
		keyWorkers:    "workers",
		keyTimeout:    "timeout",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
