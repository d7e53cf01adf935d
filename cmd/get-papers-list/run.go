// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pdiddy/pubmed-papers/internal/logger"
	"github.com/pdiddy/pubmed-papers/internal/output"
	"github.com/pdiddy/pubmed-papers/internal/pubmed"
	"github.com/pdiddy/pubmed-papers/internal/secrets"
)

// run fetches the records for query and writes them per cfg. Fetch
// failures return before anything is written. Write failures are reported
// on their own.
func run(ctx context.Context, query string, cfg cliConfig, stdout, stderr io.Writer) error {
	log := newLogger(cfg, stderr)

	s, err := secrets.Load(cfg.SecretsDir, log)
	if err != nil {
		return err
	}
	secrets.Apply(&cfg.PubMed, s)

	log.Debug("starting query", "query", query, "max_results", cfg.PubMed.MaxResults,
		"workers", cfg.PubMed.Workers, "format", cfg.Format)

	client := pubmed.NewClient(cfg.PubMed, log)
	records, err := client.GetArticles(ctx, query, cfg.PubMed.MaxResults)
	if err != nil {
		log.Error("error fetching data", "err", err)
		return fmt.Errorf("fetching articles: %w", err)
	}

	if cfg.File == "" {
		if err := output.Write(stdout, records, cfg.Format); err != nil {
			log.Error("error writing output", "err", err)
			return err
		}
		return nil
	}

	if err := output.WriteFile(cfg.File, records, cfg.Format); err != nil {
		log.Error("error writing to file", "path", cfg.File, "err", err)
		return err
	}
	log.Info("results saved to file", "path", cfg.File, "articles", len(records), "format", cfg.Format)
	return nil
}

func newLogger(cfg cliConfig, w io.Writer) *slog.Logger {
	if cfg.Debug {
		return logger.New(w, true)
	}
	return logger.NewWithLevel(w, cfg.LogLevel)
}
