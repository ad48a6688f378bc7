package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stovefree/stove-engine-go/internal/game"
)

// ErrReplayNotFound is returned when no archived replay exists for a game.
var ErrReplayNotFound = errors.New("replay not found")

const replaysSchema = `
CREATE TABLE IF NOT EXISTS replays (
	game_id     TEXT PRIMARY KEY,
	frame_count INTEGER NOT NULL,
	data        BYTEA NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ReplayStore archives finished replays in Postgres. The replay bytes are
// the same gzipped gob stream the file store writes.
type ReplayStore struct {
	pool *pgxpool.Pool
}

// NewReplayStore wraps an existing connection pool.
func NewReplayStore(pool *pgxpool.Pool) *ReplayStore {
	return &ReplayStore{pool: pool}
}

// EnsureSchema creates the replays table when missing.
func (s *ReplayStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, replaysSchema); err != nil {
		return fmt.Errorf("ensure replays schema: %w", err)
	}
	return nil
}

// Save archives a replay, replacing any previous recording of the same game.
func (s *ReplayStore) Save(ctx context.Context, r *game.Replay) error {
	var buf bytes.Buffer
	if err := r.EncodeTo(&buf); err != nil {
		return fmt.Errorf("encode replay %s: %w", r.GameID, err)
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO replays (game_id, frame_count, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (game_id) DO UPDATE
		 SET frame_count = EXCLUDED.frame_count, data = EXCLUDED.data`,
		r.GameID, r.Size(), buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("save replay %s: %w", r.GameID, err)
	}
	return nil
}

// Load fetches an archived replay by game id.
func (s *ReplayStore) Load(ctx context.Context, gameID string) (*game.Replay, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM replays WHERE game_id = $1`, gameID,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("load replay %s: %w", gameID, ErrReplayNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load replay %s: %w", gameID, err)
	}

	replay, err := game.DecodeReplay(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode replay %s: %w", gameID, err)
	}
	return replay, nil
}

// Delete removes an archived replay. Deleting a missing replay is not an
// error.
func (s *ReplayStore) Delete(ctx context.Context, gameID string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM replays WHERE game_id = $1`, gameID); err != nil {
		return fmt.Errorf("delete replay %s: %w", gameID, err)
	}
	return nil
}
