package types

import "time"

// HTTPConfig holds shared HTTP settings used for E-utilities requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// PubMedConfig holds settings for talking to the NCBI E-utilities API.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the E-utilities root; esearch.fcgi and efetch.fcgi are
	// resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Database is the Entrez database name (default "pubmed").
	Database string `json:"database" yaml:"database" mapstructure:"database"`

	// Tool and Email identify the caller to NCBI. Both are optional.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`

	// APIKey is an optional NCBI API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// MaxResults caps the number of PMIDs requested from ESearch (default 10).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// Workers bounds concurrent EFetch calls. 1 or less fetches sequentially.
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

const (
	DefaultBaseURL    = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	DefaultDatabase   = "pubmed"
	DefaultMaxResults = 10
	DefaultTimeout    = 60 * time.Second
	DefaultUserAgent  = "get-papers-list/0.1"
)

// DefaultPubMedConfig returns the configuration used when nothing is overridden.
func DefaultPubMedConfig() PubMedConfig {
	return PubMedConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		BaseURL:    DefaultBaseURL,
		Database:   DefaultDatabase,
		Tool:       "get-papers-list",
		MaxResults: DefaultMaxResults,
		Workers:    1,
	}
}
