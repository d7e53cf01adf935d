// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affiliation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCompanyAffiliated(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"pfizer inc", "Department of Oncology, Pfizer Inc.", true},
		{"university", "University of Example, Dept. of Biology", false},
		{"biotech corp", "Acme Biotech Corp, j.smith@acme.com", true},
		{"upper case", "NOVARTIS PHARMA AG, BASEL", true},
		{"gmbh", "Boehringer Ingelheim GmbH", true},
		{"llc", "Genomics Partners LLC", true},
		{"ltd", "Astex Therapeutics Ltd", true},
		{"substring sa in kansas", "University of Kansas", true},
		{"substring ag in chicago", "Chicago Medical School", true},
		{"empty", "", false},
		{"hospital", "Mount Sinai Hospital, New York, NY", false},
		{"inc without dot", "Example Inc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompanyAffiliated(tt.text))
		})
	}
}

func TestIsCompanyAffiliated_EveryKeywordAnyCase(t *testing.T) {
	for _, kw := range Keywords() {
		assert.True(t, IsCompanyAffiliated("x "+kw+" y"), kw)
		assert.True(t, IsCompanyAffiliated(strings.ToUpper(kw)), strings.ToUpper(kw))
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"simple", "Pfizer Inc., contact: jdoe@pfizer.com", "jdoe@pfizer.com", true},
		{"none", "no email here", "", false},
		{"dotted local part", "Acme Biotech Corp, j.smith@acme.com", "j.smith@acme.com", true},
		{"leftmost wins", "a@x.org and b@y.org", "a@x.org", true},
		{"trailing period kept", "Email: info@corp.example.", "info@corp.example.", true},
		{"hyphenated domain", "mail me at x-y@bio-tech.co.uk please", "x-y@bio-tech.co.uk", true},
		{"unicode letters", "contact: müller@firma.de", "müller@firma.de", true},
		{"bare at sign", "meet @ noon", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractEmail(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kws := Keywords()
	kws[0] = "changed"
	assert.Equal(t, "pharma", Keywords()[0])
	assert.Len(t, Keywords(), 10)
}
