// Package pg persists the snapshot as four jsonb rows in a documents table.
// Row locks give each logical operation read-then-write atomicity even when
// several server processes share the database.
package pg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/defective-development/ehswellnessbingo/internal/domain"
	"github.com/defective-development/ehswellnessbingo/internal/repository"
)

var _ repository.Store = (*PGStore)(nil)

const (
	docUsers      = "users"
	docTeams      = "teams"
	docPrompts    = "prompts"
	docTeamBoards = "teamBoards"
)

// docOrder fixes the locking order so concurrent updates cannot deadlock.
var docOrder = []string{docUsers, docTeams, docPrompts, docTeamBoards}

type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates the documents table if needed and seeds the default
// catalog, leaving any existing rows untouched.
func NewPGStore(ctx context.Context, pool *pgxpool.Pool) (*PGStore, error) {
	s := &PGStore{pool: pool}

	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS documents (
        name text PRIMARY KEY,
        content jsonb NOT NULL
    )`)
	if err != nil {
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	defaults := repository.DefaultSnapshot()
	for _, name := range docOrder {
		b, err := marshalDoc(defaults, name)
		if err != nil {
			return nil, err
		}
		_, err = pool.Exec(ctx,
			"INSERT INTO documents (name, content) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
			name, string(b))
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return s, nil
}

func (s *PGStore) Load(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	for _, name := range docOrder {
		var content []byte
		err := s.pool.QueryRow(ctx, "SELECT content FROM documents WHERE name=$1", name).Scan(&content)
		if err != nil {
			if err == pgx.ErrNoRows {
				return snap, fmt.Errorf("document %s: %w", name, repository.ErrNotFound)
			}
			return snap, err
		}
		if err := unmarshalDoc(&snap, name, content); err != nil {
			return snap, err
		}
	}
	fillEmpty(&snap)
	return snap, nil
}

func (s *PGStore) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var snap domain.Snapshot
	for _, name := range docOrder {
		var content []byte
		err := tx.QueryRow(ctx, "SELECT content FROM documents WHERE name=$1 FOR UPDATE", name).Scan(&content)
		if err != nil {
			if err == pgx.ErrNoRows {
				return fmt.Errorf("document %s: %w", name, repository.ErrNotFound)
			}
			return err
		}
		if err := unmarshalDoc(&snap, name, content); err != nil {
			return err
		}
	}
	fillEmpty(&snap)

	if err := fn(&snap); err != nil {
		return err
	}

	for _, name := range docOrder {
		b, err := marshalDoc(snap, name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, "UPDATE documents SET content=$2 WHERE name=$1", name, string(b)); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func marshalDoc(snap domain.Snapshot, name string) ([]byte, error) {
	var v interface{}
	switch name {
	case docUsers:
		v = snap.Users
	case docTeams:
		v = snap.Teams
	case docPrompts:
		v = snap.Prompts
	case docTeamBoards:
		v = snap.TeamBoards
	default:
		return nil, fmt.Errorf("unknown document %s", name)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return b, nil
}

func unmarshalDoc(snap *domain.Snapshot, name string, content []byte) error {
	var v interface{}
	switch name {
	case docUsers:
		v = &snap.Users
	case docTeams:
		v = &snap.Teams
	case docPrompts:
		v = &snap.Prompts
	case docTeamBoards:
		v = &snap.TeamBoards
	default:
		return fmt.Errorf("unknown document %s", name)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func fillEmpty(snap *domain.Snapshot) {
	if snap.Users == nil {
		snap.Users = map[string]domain.User{}
	}
	if snap.Teams == nil {
		snap.Teams = map[string]domain.TeamMeta{}
	}
	if snap.Prompts == nil {
		snap.Prompts = map[string][]string{}
	}
	if snap.TeamBoards == nil {
		snap.TeamBoards = map[string]map[string]domain.TeamBoard{}
	}
}
