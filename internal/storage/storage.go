package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlenaMolokova/canteen/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DB is the subset of pgxpool.Pool the storage needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querier is satisfied by both DB and pgx.Tx, so user resolution can run
// standalone on the pool or inside AddOrder's transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Storage struct {
	db DB
}

func NewStorage(db DB) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database pool is nil")
	}
	return &Storage{db: db}, nil
}

// The no-op DO UPDATE makes RETURNING yield the existing id on conflict,
// so two concurrent submissions for a brand-new name both get the same id.
const upsertUserQuery = `
INSERT INTO users (id, name) VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`

const insertOrderQuery = `
INSERT INTO orders (id, datetime, user_id, description, price)
VALUES ($1, $2, $3, $4, $5)`

const selectOrdersQuery = `
SELECT o.id, o.datetime, u.name, o.description, o.price
FROM orders o
JOIN users u ON u.id = o.user_id`

const deleteOrderQuery = `DELETE FROM orders WHERE id = $1`

// AddOrder resolves the user by name and inserts the order row in a single
// transaction.
func (s *Storage) AddOrder(ctx context.Context, submission models.OrderSubmission) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	userID, err := getUserIDOrCreate(ctx, tx, submission.Name)
	if err != nil {
		tx.Rollback(ctx)
		return err
	}

	_, err = tx.Exec(ctx, insertOrderQuery,
		uuid.New(),
		pgtype.Timestamptz{Time: submission.Datetime, Valid: true},
		userID,
		submission.Description,
		submission.Price,
	)
	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

func (s *Storage) GetUserIDOrCreate(ctx context.Context, name string) (uuid.UUID, error) {
	return getUserIDOrCreate(ctx, s.db, name)
}

func getUserIDOrCreate(ctx context.Context, q querier, name string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := q.QueryRow(ctx, upsertUserQuery, uuid.New(), name).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve user %q: %w", name, err)
	}
	return id, nil
}

// GetOrders returns joined order records, most recent first. Zero matches
// is an empty slice, not an error.
func (s *Storage) GetOrders(ctx context.Context, filter models.OrdersFilter) ([]models.OrderRecord, error) {
	query, args := buildOrdersQuery(filter)
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	records := make([]models.OrderRecord, 0)
	for rows.Next() {
		var rec models.OrderRecord
		if err := rows.Scan(&rec.ID, &rec.Datetime, &rec.User, &rec.Description, &rec.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}
	return records, nil
}

func buildOrdersQuery(filter models.OrdersFilter) (string, []any) {
	query := selectOrdersQuery
	var args []any
	switch {
	case filter.Date != nil:
		query += "\nWHERE o.datetime::date = $1"
		args = append(args, pgtype.Date{Time: *filter.Date, Valid: true})
	case filter.Datetime != nil:
		query += "\nWHERE o.datetime = $1"
		args = append(args, pgtype.Timestamptz{Time: *filter.Datetime, Valid: true})
	}
	query += "\nORDER BY o.datetime DESC"
	return query, args
}

// DeleteOrder removes the order row by id. Deleting an id that does not
// exist is a no-op.
func (s *Storage) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.Exec(ctx, deleteOrderQuery, id); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}
