package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-papers/internal/affiliation"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the keywords that mark an affiliation as commercial",
	Long: `Keywords prints the substrings used to classify an affiliation as
commercial. Matching is case-insensitive and not word-boundary aware, so
short keywords such as "ag" and "sa" also match inside longer words.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, kw := range affiliation.Keywords() {
			fmt.Fprintln(cmd.OutOrStdout(), kw)
		}
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}
