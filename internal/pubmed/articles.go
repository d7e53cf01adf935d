// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// GetArticles searches PubMed for query, fetches each hit, and returns the
// records that have at least one commercially affiliated author, in search
// order. Any search or fetch failure aborts the call and no partial result
// is returned. A PMID whose response carries no PubmedArticle is skipped.
//
// Detail fetches run one at a time unless Config.Workers is above 1, in
// which case at most Workers requests are in flight. Output order is the
// same either way.
func (c *Client) GetArticles(ctx context.Context, query string, maxResults int) ([]types.ArticleRecord, error) {
	ids, err := c.SearchIDs(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	parsed, err := c.fetchAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	var records []types.ArticleRecord
	for _, rec := range parsed {
		if rec == nil || !rec.HasCommercialAuthor() {
			continue
		}
		records = append(records, *rec)
	}
	c.Logger.Debug("articles kept", "fetched", len(ids), "kept", len(records))
	return records, nil
}

// fetchAll returns one entry per id at the same index; nil marks a skip.
func (c *Client) fetchAll(ctx context.Context, ids []string) ([]*types.ArticleRecord, error) {
	if c.Config.Workers <= 1 {
		out := make([]*types.ArticleRecord, len(ids))
		for i, id := range ids {
			rec, err := c.fetchRecord(ctx, id)
			if err != nil {
				return nil, err
			}
			out[i] = rec
		}
		return out, nil
	}

	mapper := iter.Mapper[string, *types.ArticleRecord]{MaxGoroutines: c.Config.Workers}
	return mapper.MapErr(ids, func(id *string) (*types.ArticleRecord, error) {
		return c.fetchRecord(ctx, *id)
	})
}

func (c *Client) fetchRecord(ctx context.Context, id string) (*types.ArticleRecord, error) {
	set, err := c.FetchDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching PMID %s: %w", id, err)
	}
	doc, ok := set.First()
	if !ok {
		c.Logger.Debug("no PubmedArticle in response, skipping", "pmid", id)
		return nil, nil
	}
	rec := ParseArticle(doc)
	if !rec.HasCommercialAuthor() {
		c.Logger.Debug("no commercial affiliation", "pmid", id)
	}
	return &rec, nil
}
