package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type User struct {
	ID   uuid.UUID
	Name string
}

type Order struct {
	ID          uuid.UUID
	Datetime    pgtype.Timestamptz
	UserID      uuid.UUID
	Description string
	Price       decimal.Decimal
}

// OrderRecord is the joined projection returned by reads: the order row
// with the owning user's name in place of the foreign key.
type OrderRecord struct {
	ID          uuid.UUID
	Datetime    pgtype.Timestamptz
	User        string
	Description string
	Price       decimal.Decimal
}

// OrderSubmission carries an incoming order before the user is resolved.
type OrderSubmission struct {
	Name        string
	Datetime    time.Time
	Description string
	Price       decimal.Decimal
}

// OrdersFilter narrows a read to an exact date or an exact datetime.
// At most one of the two is set; both nil means no filter.
type OrdersFilter struct {
	Date     *time.Time
	Datetime *time.Time
}

type OrderStorage interface {
	AddOrder(ctx context.Context, submission OrderSubmission) error
	GetOrders(ctx context.Context, filter OrdersFilter) ([]OrderRecord, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type UserStorage interface {
	GetUserIDOrCreate(ctx context.Context, name string) (uuid.UUID, error)
}
