package shipment

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

type ShipmentDB struct {
	ID              string
	ClientID        string
	DriverID        *string
	Status          string
	PickupAddress   string
	PickupLat       *float64
	PickupLon       *float64
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLon     *float64
	PriceCents      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       *time.Time
}

type ShipmentModifyDB struct {
	ID              *string
	ClientID        *string
	DriverID        *string
	Status          *string
	PickupAddress   *string
	PickupLat       *float64
	PickupLon       *float64
	DeliveryAddress *string
	DeliveryLat     *float64
	DeliveryLon     *float64
	PriceCents      *int64
	ExpiresAt       *time.Time
}
