// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const ruleWidth = 80

// WriteConsole prints one labeled block per record, each followed by an
// 80-character rule.
func WriteConsole(w io.Writer, records []types.ArticleRecord) error {
	rule := strings.Repeat("-", ruleWidth)
	for _, r := range records {
		row := r.Row()
		for i, col := range types.Columns {
			if _, err := fmt.Fprintf(w, "%s: %s\n", col, row[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, rule); err != nil {
			return err
		}
	}
	return nil
}
