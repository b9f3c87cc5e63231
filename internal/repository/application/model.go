package application

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type ApplicationDB struct {
	ID          int64
	ShipmentID  string
	DriverID    string
	Status      string
	AppliedAt   time.Time
	RespondedAt *time.Time
	Notes       *string
}

type ApplicationModifyDB struct {
	ID          *int64
	ShipmentID  *string
	DriverID    *string
	Status      *string
	AppliedAt   *time.Time
	RespondedAt *time.Time
	Notes       *string
}
