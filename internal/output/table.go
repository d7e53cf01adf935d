// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const (
	tableIDWidth    = 10
	tableDateWidth  = 12
	tableTitleWidth = 56
	tableEmailWidth = 28
)

// WriteTable prints a compact one-line-per-record summary. Cells are padded
// and truncated by display width so CJK and accented titles stay aligned.
func WriteTable(w io.Writer, records []types.ArticleRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No articles with company-affiliated authors found.")
		return err
	}

	header := tableRow("PubmedID", "Date", "Title", "Email") + "  Authors"
	total := tableIDWidth + tableDateWidth + tableTitleWidth + tableEmailWidth + 3*2 + 9
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", total)); err != nil {
		return err
	}

	for _, r := range records {
		line := tableRow(r.PubmedID, r.PublicationDate, r.Title, r.CorrespondingEmail) +
			"  " + fmt.Sprintf("%d", len(r.NonAcademicAuthors))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d articles\n", len(records))
	return err
}

func tableRow(id, date, title, email string) string {
	return strings.Join([]string{
		cell(id, tableIDWidth),
		cell(date, tableDateWidth),
		cell(title, tableTitleWidth),
		cell(email, tableEmailWidth),
	}, "  ")
}

func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}
