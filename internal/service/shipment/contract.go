//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"autohaul/internal/entities"
)

// ExecuteFn — обработчик одного события жизненного цикла для перевозки.
type ExecuteFn func(ctx context.Context, shipmentID string) error

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	GetByID(ctx context.Context, id string) (*entities.Shipment, error)
	ListByStatus(ctx context.Context, status entities.ShipmentStatusType) ([]entities.Shipment, error)

	UpdateStatus(ctx context.Context, shipmentModify entities.ShipmentModify, current entities.ShipmentStatusType) (*entities.Shipment, error)
	ExpireWherePendingDeadlinePassed(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type PendingDeadlineFactory interface {
	CalculateDeadline(baseTime time.Time) time.Time
}
