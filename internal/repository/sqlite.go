package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	model "scrap-auction/internal/models"

	_ "modernc.org/sqlite"
)

// schema holds the single key/value table the document blob lives in.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
    key  TEXT PRIMARY KEY,
    body BLOB NOT NULL
);
`

// DefaultDocumentKey is the fixed identifier the workflow document is stored under.
const DefaultDocumentKey = "scrap-auction-document"

// SQLiteStore persists the whole document as a JSON blob in one SQLite row.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// OpenSQLiteStore opens (creating if needed) a SQLite-backed document store
// at path. An empty key falls back to DefaultDocumentKey.
func OpenSQLiteStore(path, key string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set pragmas for performance and correctness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if key == "" {
		key = DefaultDocumentKey
	}
	return &SQLiteStore{db: db, key: key}, nil
}

// Load reads the document blob, returning an empty default when the row is absent.
func (s *SQLiteStore) Load() (*model.Document, error) {
	var body []byte
	err := s.db.QueryRow(`SELECT body FROM documents WHERE key = ?`, s.key).Scan(&body)
	if err == sql.ErrNoRows {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	doc := &model.Document{}
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}

// Save overwrites the stored document blob.
func (s *SQLiteStore) Save(doc *model.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO documents (key, body) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body`,
		s.key, body,
	)
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
