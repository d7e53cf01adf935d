// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/csv"
	"io"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// WriteCSV writes the fixed six-column header followed by one row per record.
func WriteCSV(w io.Writer, records []types.ArticleRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(types.Columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := writer.Write(r.Row()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
