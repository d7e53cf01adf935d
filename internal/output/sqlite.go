// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// WriteSQLite exports records into a fresh SQLite file at path with a single
// articles table mirroring the CSV columns. An existing file is replaced.
func WriteSQLite(path string, records []types.ArticleRecord) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing existing file: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE articles (
		position INTEGER PRIMARY KEY,
		pubmed_id TEXT NOT NULL,
		title TEXT,
		publication_date TEXT,
		non_academic_authors TEXT,
		company_affiliations TEXT,
		corresponding_email TEXT
	)`); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO articles
		(position, pubmed_id, title, publication_date, non_academic_authors, company_affiliations, corresponding_email)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(i+1, r.PubmedID, r.Title, r.PublicationDate,
			r.Authors(), r.Affiliations(), r.CorrespondingEmail); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting %s: %w", r.PubmedID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
