// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed searches PubMed through the NCBI E-utilities API, fetches
// article documents, and keeps the articles that have at least one
// commercially affiliated author.
package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const (
	esearchPath = "/esearch.fcgi"
	efetchPath  = "/efetch.fcgi"
)

// Client talks to the ESearch and EFetch endpoints. It keeps no state
// between calls.
type Client struct {
	HTTP   *http.Client
	Config types.PubMedConfig
	Logger *slog.Logger
}

// NewClient builds a Client from cfg, filling unset fields with defaults.
// A nil logger discards all output.
func NewClient(cfg types.PubMedConfig, logger *slog.Logger) *Client {
	def := types.DefaultPubMedConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Database == "" {
		cfg.Database = def.Database
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = def.MaxResults
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

// SearchIDs runs an ESearch query and returns up to maxResults PMIDs in
// the order the service returned them. maxResults <= 0 uses the
// configured default.
func (c *Client) SearchIDs(ctx context.Context, query string, maxResults int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty: provide a PubMed search expression")
	}
	if maxResults <= 0 {
		maxResults = c.Config.MaxResults
	}

	params := c.baseParams()
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(maxResults))

	reqURL := c.endpoint(esearchPath, params)
	c.Logger.Debug("esearch request", "term", query, "retmax", maxResults)

	body, err := httputil.Get(ctx, c.HTTP, reqURL, c.Config.UserAgent)
	if err != nil {
		return nil, err
	}

	var res eSearchResult
	if err := xml.Unmarshal(body, &res); err != nil {
		return nil, &MalformedResponseError{Endpoint: "esearch", Err: err}
	}
	if res.Error != "" && len(res.IDs) == 0 {
		return nil, &httputil.UpstreamError{
			URL:        c.endpoint(esearchPath, nil),
			StatusCode: http.StatusOK,
			Message:    strings.TrimSpace(res.Error),
		}
	}
	if len(res.PhraseNotFound) > 0 {
		c.Logger.Debug("esearch phrases not found", "phrases", res.PhraseNotFound)
	}
	for _, w := range res.Warnings {
		c.Logger.Debug("esearch warning", "message", w)
	}

	ids := make([]string, 0, len(res.IDs))
	for _, id := range res.IDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	c.Logger.Debug("esearch results",
		"count", res.Count, "returned", len(ids), "translation", res.QueryTranslation)
	return ids, nil
}

// FetchDetails retrieves the EFetch XML document for a single PMID.
func (c *Client) FetchDetails(ctx context.Context, id string) (*ArticleSet, error) {
	params := c.baseParams()
	params.Set("id", id)

	c.Logger.Debug("efetch request", "pmid", id)
	body, err := httputil.Get(ctx, c.HTTP, c.endpoint(efetchPath, params), c.Config.UserAgent)
	if err != nil {
		return nil, err
	}

	var set ArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, &MalformedResponseError{Endpoint: "efetch", Err: err}
	}
	return &set, nil
}

// baseParams returns the parameters shared by every E-utilities call.
func (c *Client) baseParams() url.Values {
	params := url.Values{
		"db":      {c.Config.Database},
		"retmode": {"xml"},
	}
	if c.Config.Tool != "" {
		params.Set("tool", c.Config.Tool)
	}
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
	return params
}

func (c *Client) endpoint(path string, params url.Values) string {
	u := strings.TrimRight(c.Config.BaseURL, "/") + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}
