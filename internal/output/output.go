// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders ArticleRecords to the console or to a file.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Format selects how records are rendered.
type Format string

const (
	FormatConsole Format = "console"
	FormatTable   Format = "table"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatSQLite  Format = "sqlite"
)

// Formats lists every supported format.
var Formats = []Format{FormatConsole, FormatTable, FormatCSV, FormatJSON, FormatYAML, FormatSQLite}

// WriteError reports that an output destination could not be created or
// written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("writing output: %v", e.Err)
	}
	return fmt.Sprintf("writing output to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, formatList())
}

// FormatForPath infers a file format from the extension, defaulting to CSV.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	case ".txt":
		return FormatConsole
	default:
		return FormatCSV
	}
}

// Write renders records to w in the given format. SQLite needs a file
// path and is handled by WriteFile only.
func Write(w io.Writer, records []types.ArticleRecord, format Format) error {
	var err error
	switch format {
	case FormatConsole:
		err = WriteConsole(w, records)
	case FormatTable:
		err = WriteTable(w, records)
	case FormatCSV:
		err = WriteCSV(w, records)
	case FormatJSON:
		err = WriteJSON(w, records)
	case FormatYAML:
		err = WriteYAML(w, records)
	case FormatSQLite:
		return &WriteError{Err: fmt.Errorf("sqlite output requires a file path")}
	default:
		return &WriteError{Err: fmt.Errorf("unknown output format %q", format)}
	}
	if err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// WriteFile writes records to path, replacing any existing file. The file
// is written to a temporary name first and renamed on success, so a failed
// write leaves no partial output behind.
func WriteFile(path string, records []types.ArticleRecord, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if format == FormatSQLite {
		if err := WriteSQLite(path, records); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		return nil
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := Write(f, records, format); err != nil {
		f.Close()
		os.Remove(tmp)
		var we *WriteError
		if errors.As(err, &we) {
			we.Path = path
			return we
		}
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
