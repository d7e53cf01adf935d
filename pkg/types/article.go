// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline.
package types

import "strings"

// ListSeparator joins multi-valued fields for display and tabular output.
const ListSeparator = "; "

// Columns is the fixed header used by tabular outputs, in Row order.
var Columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// ArticleRecord is the flattened view of one PubMed article, built once
// from its EFetch document and not modified afterwards.
type ArticleRecord struct {
	// PubmedID is the PMID of the article.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, empty when the document has none.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is "Y-M-D", "Y", or empty, taken from a single date element.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists author names once per commercial affiliation,
	// in document order. A name can repeat.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations holds the distinct commercial affiliation strings
	// in first-seen order.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found in a commercial affiliation.
	CorrespondingEmail string `json:"corresponding_email" yaml:"corresponding_email"`
}

// HasCommercialAuthor reports whether at least one author matched the
// commercial affiliation heuristic.
func (r ArticleRecord) HasCommercialAuthor() bool {
	return len(r.NonAcademicAuthors) > 0
}

// Authors returns the non-academic author names joined for display.
func (r ArticleRecord) Authors() string {
	return strings.Join(r.NonAcademicAuthors, ListSeparator)
}

// Affiliations returns the company affiliations joined for display.
func (r ArticleRecord) Affiliations() string {
	return strings.Join(r.CompanyAffiliations, ListSeparator)
}

// Row returns the record as display strings in Columns order.
func (r ArticleRecord) Row() []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PublicationDate,
		r.Authors(),
		r.Affiliations(),
		r.CorrespondingEmail,
	}
}
