package event

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"stakepool/internal/staking/models"
)

// PostgresStore persists the event stream in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres opens and pings a PostgreSQL connection.
func OpenPostgres(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the events table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS pool_events (
			id               UUID PRIMARY KEY,
			event_type       TEXT NOT NULL,
			address          TEXT NOT NULL DEFAULT '',
			stake_id         BIGINT NOT NULL DEFAULT 0,
			amount           BIGINT NOT NULL DEFAULT 0,
			start_ms         BIGINT NOT NULL DEFAULT 0,
			end_ms           BIGINT NOT NULL DEFAULT 0,
			apy_basis_points BIGINT NOT NULL DEFAULT 0,
			reward           BIGINT NOT NULL DEFAULT 0,
			payout           BIGINT NOT NULL DEFAULT 0,
			reserve_total    BIGINT NOT NULL DEFAULT 0,
			admin_count      INT NOT NULL DEFAULT 0,
			new_owner        TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS pool_events_address_idx ON pool_events (address, created_at);
	`)
	if err != nil {
		return fmt.Errorf("ensure events schema: %w", err)
	}
	return nil
}

// Append inserts one event.
func (s *PostgresStore) Append(ctx context.Context, e Event) error {
	query := `
		INSERT INTO pool_events (
			id, event_type, address, stake_id, amount, start_ms, end_ms,
			apy_basis_points, reward, payout, reserve_total, admin_count,
			new_owner, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := s.db.ExecContext(ctx, query,
		e.ID, string(e.Type), string(e.Address),
		int64(e.StakeID), int64(e.Amount), int64(e.StartMS), int64(e.EndMS),
		int64(e.APYBasisPoints), int64(e.Reward), int64(e.Payout),
		int64(e.ReserveTotal), e.AdminCount, string(e.NewOwner), e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// ListByAddress returns an account's events in append order.
func (s *PostgresStore) ListByAddress(ctx context.Context, addr models.Address) ([]Event, error) {
	query := `
		SELECT id, event_type, address, stake_id, amount, start_ms, end_ms,
		       apy_basis_points, reward, payout, reserve_total, admin_count,
		       new_owner, created_at
		FROM pool_events
		WHERE address = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, string(addr))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e                                 Event
			eventType, address, newOwner      string
			stakeID, amount, startMS, endMS   int64
			apy, reward, payout, reserveTotal int64
		)
		if err := rows.Scan(&e.ID, &eventType, &address, &stakeID, &amount,
			&startMS, &endMS, &apy, &reward, &payout, &reserveTotal,
			&e.AdminCount, &newOwner, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Type = Type(eventType)
		e.Address = models.Address(address)
		e.StakeID = uint64(stakeID)
		e.Amount = uint64(amount)
		e.StartMS = uint64(startMS)
		e.EndMS = uint64(endMS)
		e.APYBasisPoints = uint64(apy)
		e.Reward = uint64(reward)
		e.Payout = uint64(payout)
		e.ReserveTotal = uint64(reserveTotal)
		e.NewOwner = models.Address(newOwner)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}
