// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation classifies author affiliation strings and pulls
// contact emails out of them.
package affiliation

import (
	"regexp"
	"strings"
)

// companyKeywords marks an affiliation as commercial when any of them
// appears as a substring of the lower-cased text. Matching is not
// word-boundary aware, so "sa" also matches inside "Kansas".
var companyKeywords = []string{
	"pharma",
	"biotech",
	"biotechnology",
	"inc.",
	"corp",
	"ltd",
	"llc",
	"ag",
	"sa",
	"gmbh",
}

// emailPattern matches word, dot, and hyphen runs on both sides of an '@'.
// \w is widened to Unicode letters and digits.
var emailPattern = regexp.MustCompile(`[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+`)

// IsCompanyAffiliated reports whether the affiliation text suggests a
// pharmaceutical, biotech, or other commercial employer.
func IsCompanyAffiliated(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range companyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractEmail returns the leftmost email-like substring of text. The
// match is not validated beyond the pattern.
func ExtractEmail(text string) (string, bool) {
	m := emailPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// Keywords returns a copy of the classifier keyword list.
func Keywords() []string {
	out := make([]string, len(companyKeywords))
	copy(out, companyKeywords)
	return out
}
