package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite database backing both the state snapshots and the
// mirrored property table.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) EnsureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS properties (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  location TEXT NOT NULL,
  city TEXT NOT NULL,
  state TEXT NOT NULL,
  price REAL NOT NULL,
  rental_yield REAL NOT NULL,
  vacancy_rate REAL NOT NULL,
  appreciation REAL NOT NULL,
  market_stability REAL NOT NULL,
  risk_score INTEGER NOT NULL,
  opportunity_score INTEGER NOT NULL,
  risk_level TEXT NOT NULL,
  property_type TEXT NOT NULL,
  area REAL NOT NULL,
  bedrooms INTEGER NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  amenities_json TEXT NOT NULL DEFAULT '[]',
  price_history_json TEXT NOT NULL DEFAULT '[]'
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_properties_state ON properties(state);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_properties_price ON properties(price);`); err != nil {
		return err
	}
	return nil
}
