package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS members (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL UNIQUE COLLATE NOCASE,
			timezone   TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS availability (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			member_id INTEGER NOT NULL REFERENCES members(id) ON DELETE CASCADE,
			start_at  TEXT NOT NULL,
			end_at    TEXT NOT NULL,
			timezone  TEXT NOT NULL,
			CHECK (end_at > start_at)
		);

		CREATE INDEX IF NOT EXISTS idx_availability_member ON availability(member_id, start_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
