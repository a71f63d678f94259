package db

import "database/sql"

// GetConfig returns the value stored for key. Returns "", nil when the key
// is absent.
func (s *Store) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM configs WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetConfig stores or replaces a runtime configuration value.
func (s *Store) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO configs (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// DeleteConfig removes a runtime configuration value.
func (s *Store) DeleteConfig(key string) error {
	_, err := s.db.Exec("DELETE FROM configs WHERE key = ?", key)
	return err
}
