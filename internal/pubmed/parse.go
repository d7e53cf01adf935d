// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"github.com/pdiddy/pubmed-papers/internal/affiliation"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// ParseArticle flattens one PubmedArticle into an ArticleRecord. Missing
// elements produce empty fields; the function never fails and never
// filters.
func ParseArticle(doc PubmedArticle) types.ArticleRecord {
	art := doc.MedlineCitation.Article

	rec := types.ArticleRecord{
		PubmedID:        doc.MedlineCitation.PMID.String(),
		Title:           art.ArticleTitle.String(),
		PublicationDate: publicationDate(art),
	}

	var companies orderedSet
	emailFound := false
	for _, author := range art.Authors {
		name := displayName(author)
		for _, aff := range author.Affiliations {
			text := aff.String()
			if !affiliation.IsCompanyAffiliated(text) {
				continue
			}
			rec.NonAcademicAuthors = append(rec.NonAcademicAuthors, name)
			companies.add(text)
			if !emailFound {
				if email, ok := affiliation.ExtractEmail(text); ok {
					rec.CorrespondingEmail = email
					emailFound = true
				}
			}
		}
	}
	rec.CompanyAffiliations = companies.items
	return rec
}

// publicationDate prefers PubDate and falls back to the first ArticleDate.
// Fields are never mixed across the two elements.
func publicationDate(art Article) string {
	if art.PubDate != nil {
		return art.PubDate.format()
	}
	if len(art.ArticleDates) > 0 {
		return art.ArticleDates[0].format()
	}
	return ""
}

func (d DateElement) format() string {
	if d.Year != "" && d.Month != "" && d.Day != "" {
		return d.Year + "-" + d.Month + "-" + d.Day
	}
	return d.Year
}

// displayName returns "ForeName LastName" when both are present, otherwise
// the collective (group) name, which may be empty.
func displayName(a Author) string {
	if a.ForeName != "" && a.LastName != "" {
		return a.ForeName.String() + " " + a.LastName.String()
	}
	return a.CollectiveName.String()
}

// orderedSet keeps distinct strings in first-insertion order.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
