package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Snapshot keys. Each holds one JSON-serialized store snapshot, read once at
// startup and overwritten on every subsequent mutation.
const (
	KeyInvestorProfile = "investorProfile"
	KeyNotifications   = "notifications"
	KeySettings        = "settings"
)

// ErrNoSnapshot reports that no value has ever been saved under a key.
var ErrNoSnapshot = errors.New("storage: no snapshot")

// LoadSnapshot unmarshals the stored payload for key into v. A missing key
// returns ErrNoSnapshot; a payload that no longer parses returns the
// unmarshal error so the caller can fall back to defaults.
func (s *Store) LoadSnapshot(key string, v any) error {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return ErrNoSnapshot
	}
	if err != nil {
		return fmt.Errorf("load snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	return nil
}

// SaveSnapshot serializes v and upserts it under key.
func (s *Store) SaveSnapshot(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}
	_, err = s.db.Exec(`
INSERT INTO snapshots (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
`, key, string(payload))
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	return nil
}
