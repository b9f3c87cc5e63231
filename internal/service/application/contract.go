//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_test
package application

import (
	"context"

	"autohaul/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, applicationModify entities.ApplicationModify) (*entities.JobApplication, error)
	GetByID(ctx context.Context, id int64) (*entities.JobApplication, error)
	GetPendingByShipmentAndDriver(ctx context.Context, shipmentID, driverID string) (*entities.JobApplication, error)
	ListByDriver(ctx context.Context, driverID string) ([]entities.JobApplication, error)

	UpdateStatus(ctx context.Context, id int64, current, next entities.ApplicationStatusType) (*entities.JobApplication, error)
	AcceptPending(ctx context.Context, shipmentID, driverID string) (*entities.JobApplication, error)
	RejectPendingExcept(ctx context.Context, shipmentID, driverID string) (int64, error)
}

// ShipmentRepository — условные операции над перевозкой, которые нужны
// арбитражу заявок. AssignDriver обязан быть одним условным UPDATE:
// никакого read-check-then-write на клиенте.
type ShipmentRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Shipment, error)
	AssignDriver(ctx context.Context, shipmentID, driverID string) (*entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
