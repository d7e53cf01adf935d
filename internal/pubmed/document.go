// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"strings"
)

// ESearch XML structures. Only the fields the client reads are mapped.
type eSearchResult struct {
	XMLName          xml.Name `xml:"eSearchResult"`
	Count            string   `xml:"Count"`
	IDs              []string `xml:"IdList>Id"`
	QueryTranslation string   `xml:"QueryTranslation"`
	Error            string   `xml:"ERROR"`
	PhraseNotFound   []string `xml:"ErrorList>PhraseNotFound"`
	Warnings         []string `xml:"WarningList>OutputMessage"`
}

// ArticleSet is the decoded EFetch response for one identifier.
type ArticleSet struct {
	Articles []PubmedArticle `xml:"PubmedArticle"`
}

// First returns the first article in the set. The boolean is false when
// the response carried no PubmedArticle (book records, unknown IDs).
func (s *ArticleSet) First() (PubmedArticle, bool) {
	if s == nil || len(s.Articles) == 0 {
		return PubmedArticle{}, false
	}
	return s.Articles[0], true
}

// PubmedArticle is one article document as returned by EFetch.
type PubmedArticle struct {
	MedlineCitation MedlineCitation `xml:"MedlineCitation"`
}

// MedlineCitation holds the citation part of a PubmedArticle.
type MedlineCitation struct {
	PMID    Text    `xml:"PMID"`
	Article Article `xml:"Article"`
}

// Article holds the bibliographic fields the parser reads.
type Article struct {
	ArticleTitle Text          `xml:"ArticleTitle"`
	PubDate      *DateElement  `xml:"Journal>JournalIssue>PubDate"`
	ArticleDates []DateElement `xml:"ArticleDate"`
	Authors      []Author      `xml:"AuthorList>Author"`
}

// DateElement is a PubDate or ArticleDate. Components are kept verbatim,
// so Month may be "5", "05", or "May".
type DateElement struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

// Author is one AuthorList entry.
type Author struct {
	LastName       Text   `xml:"LastName"`
	ForeName       Text   `xml:"ForeName"`
	CollectiveName Text   `xml:"CollectiveName"`
	Affiliations   []Text `xml:"AffiliationInfo>Affiliation"`
}

// Text is the flattened character data of an element, including text
// nested in inline markup such as <i> or <sup>.
type Text string

// UnmarshalXML implements xml.Unmarshaler.
func (t *Text) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case xml.CharData:
			b.Write(v)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				*t = Text(b.String())
				return nil
			}
			depth--
		}
	}
}

func (t Text) String() string { return string(t) }
