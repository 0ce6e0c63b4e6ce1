package teams

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads and writes the teams table through prepared statements
// registered in internal/db.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps a connection pool. A nil pool is allowed and makes
// every read report ErrNoStore so callers fall back to Builtin.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ErrNoStore reports that no database is configured.
var ErrNoStore = errors.New("teams: no store configured")

// List returns all teams ordered by rating, best first.
func (s *Store) List(ctx context.Context) ([]Team, error) {
	if s == nil || s.pool == nil {
		return nil, ErrNoStore
	}
	rows, err := s.pool.Query(ctx, "team_list")
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var out []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.Name, &t.Abbreviation, &t.Rating); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return out, nil
}

// Lookup finds a team by exact name, case-insensitively. The second
// return value is false when the team is not in the store.
func (s *Store) Lookup(ctx context.Context, name string) (Team, bool, error) {
	if s == nil || s.pool == nil {
		return Team{}, false, ErrNoStore
	}
	var t Team
	err := s.pool.QueryRow(ctx, "team_lookup", name).Scan(&t.Name, &t.Abbreviation, &t.Rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return Team{}, false, nil
	}
	if err != nil {
		return Team{}, false, fmt.Errorf("lookup team %q: %w", name, err)
	}
	return t, true, nil
}

// UpsertAll writes the given teams, updating ratings and abbreviations
// for names that already exist. Returns the number of rows written.
func (s *Store) UpsertAll(ctx context.Context, list []Team) (int, error) {
	if s == nil || s.pool == nil {
		return 0, ErrNoStore
	}
	written := 0
	for _, t := range list {
		if _, err := s.pool.Exec(ctx, "team_upsert", t.Name, t.Abbreviation, t.Rating); err != nil {
			return written, fmt.Errorf("upsert team %q: %w", t.Name, err)
		}
		written++
	}
	return written, nil
}
