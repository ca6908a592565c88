// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/tzbuddy/internal/team"
)

// SQLite implements team.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path if needed and opens the
// database there.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return New(path)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// CreateMember adds a new member to the repository.
// Returns team.ErrDuplicateMember if a member with the same name exists.
func (s *SQLite) CreateMember(ctx context.Context, m *team.Member) error {
	return insertMember(ctx, s.db, m)
}

// GetMemberByName retrieves a member by name, ignoring case.
func (s *SQLite) GetMemberByName(ctx context.Context, name string) (*team.Member, error) {
	return getMemberByName(ctx, s.db, name)
}

// ListMembers returns all members ordered by name.
func (s *SQLite) ListMembers(ctx context.Context) ([]*team.Member, error) {
	query := `
		SELECT id, name, timezone, created_at
		FROM members
		ORDER BY name COLLATE NOCASE
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var members []*team.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}

	return members, nil
}

// DeleteMember removes a member and their availability atomically.
func (s *SQLite) DeleteMember(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM availability WHERE member_id = ?`, id); err != nil {
		return fmt.Errorf("deleting availability: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting member: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: id %d", team.ErrMemberNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// AddAvailability stores an availability window.
func (s *SQLite) AddAvailability(ctx context.Context, a *team.Availability) error {
	return insertAvailability(ctx, s.db, a)
}

// ImportMembers writes a batch of members and windows in one transaction.
// On failure nothing is stored and created members keep a zero ID.
func (s *SQLite) ImportMembers(ctx context.Context, batch []team.MemberBatch) (err error) {
	if len(batch) == 0 {
		return nil
	}

	// Names must be unique within the batch before touching the database
	if err := checkBatchNames(batch); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	var created []*team.Member
	defer func() {
		if err == nil {
			return
		}
		_ = tx.Rollback()
		for _, m := range created {
			m.ID = 0
		}
	}()

	for _, b := range batch {
		if b.Member.ID == 0 {
			if err := insertMember(ctx, tx, b.Member); err != nil {
				return fmt.Errorf("creating member %q: %w", b.Member.Name, err)
			}
			created = append(created, b.Member)
		}
		for _, a := range b.Windows {
			a.MemberID = b.Member.ID
			if err := insertAvailability(ctx, tx, a); err != nil {
				return fmt.Errorf("adding availability for %q: %w", b.Member.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListAvailability returns a member's windows overlapping [from, to), ordered by start.
func (s *SQLite) ListAvailability(ctx context.Context, memberID int64, from, to time.Time) ([]*team.Availability, error) {
	query := `
		SELECT id, member_id, start_at, end_at, timezone
		FROM availability
		WHERE member_id = ? AND start_at < ? AND end_at > ?
		ORDER BY start_at
	`

	rows, err := s.db.QueryContext(ctx, query, memberID, formatInstant(to), formatInstant(from))
	if err != nil {
		return nil, fmt.Errorf("querying availability: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*team.Availability
	for rows.Next() {
		var (
			a        team.Availability
			startAt  string
			endAt    string
			timezone string
		)
		if err := rows.Scan(&a.ID, &a.MemberID, &startAt, &endAt, &timezone); err != nil {
			return nil, fmt.Errorf("scanning availability: %w", err)
		}

		loc := loadLocation(timezone)
		if a.Start, err = parseInstant(startAt, loc); err != nil {
			return nil, fmt.Errorf("parsing start: %w", err)
		}
		if a.End, err = parseInstant(endAt, loc); err != nil {
			return nil, fmt.Errorf("parsing end: %w", err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating availability: %w", err)
	}

	return result, nil
}

// ClearAvailability removes all windows of a member.
func (s *SQLite) ClearAvailability(ctx context.Context, memberID int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM availability WHERE member_id = ?`, memberID)
	if err != nil {
		return 0, fmt.Errorf("clearing availability: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

// querier is the part of *sql.DB and *sql.Tx the insert helpers need.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getMemberByName(ctx context.Context, q querier, name string) (*team.Member, error) {
	query := `
		SELECT id, name, timezone, created_at
		FROM members
		WHERE name = ? COLLATE NOCASE
	`

	m, err := scanMember(q.QueryRowContext(ctx, query, strings.TrimSpace(name)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", team.ErrMemberNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying member: %w", err)
	}
	return m, nil
}

func insertMember(ctx context.Context, q querier, m *team.Member) error {
	existing, err := getMemberByName(ctx, q, m.Name)
	if err != nil && !errors.Is(err, team.ErrMemberNotFound) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", team.ErrDuplicateMember, m.Name)
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO members (name, timezone, created_at) VALUES (?, ?, ?)`
	result, err := q.ExecContext(ctx, query, m.Name, m.Timezone, m.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	m.ID = id

	return nil
}

func insertAvailability(ctx context.Context, q querier, a *team.Availability) error {
	if !a.End.After(a.Start) {
		return team.ErrEndBeforeStart
	}

	query := `
		INSERT INTO availability (member_id, start_at, end_at, timezone)
		SELECT id, ?, ?, ? FROM members WHERE id = ?
	`

	result, err := q.ExecContext(ctx, query,
		formatInstant(a.Start),
		formatInstant(a.End),
		a.Start.Location().String(),
		a.MemberID,
	)
	if err != nil {
		return fmt.Errorf("inserting availability: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: id %d", team.ErrMemberNotFound, a.MemberID)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	a.ID = id

	return nil
}

// checkBatchNames rejects a batch naming the same member twice, ignoring
// case the way the members table does.
func checkBatchNames(batch []team.MemberBatch) error {
	seen := make(map[string]bool, len(batch))
	for _, b := range batch {
		key := strings.ToLower(strings.TrimSpace(b.Member.Name))
		if seen[key] {
			return fmt.Errorf("%w: %s listed twice", team.ErrDuplicateMember, b.Member.Name)
		}
		seen[key] = true
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*team.Member, error) {
	var (
		m         team.Member
		createdAt string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Timezone, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	m.CreatedAt = t
	return &m, nil
}

// formatInstant stores instants as fixed-width UTC RFC3339 so string
// comparison in SQL matches time ordering.
func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
