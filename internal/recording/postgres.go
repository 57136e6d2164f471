package recording

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melisasvr/vr-collab-space/internal/domain"
)

// PostgresStore archives recordings as jsonb rows.
//
// Schema:
//
//	CREATE TABLE recordings (
//	    id         uuid PRIMARY KEY,
//	    room_id    text NOT NULL,
//	    saved_at   timestamptz NOT NULL DEFAULT now(),
//	    payload    jsonb NOT NULL
//	);
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPool builds a pgx pool and verifies connectivity.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return pool, nil
}

func (s *PostgresStore) Save(ctx context.Context, doc Document) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode recording: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(ctx, `
		INSERT INTO recordings (id, room_id, saved_at, payload)
		VALUES ($1, $2, $3, $4)
	`, id, doc.RoomID, doc.EndTime, payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	return id, nil
}
