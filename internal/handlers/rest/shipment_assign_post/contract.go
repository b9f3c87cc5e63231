//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_assign_post_test
package shipment_assign_post

import (
	"context"

	"autohaul/internal/entities"
	"autohaul/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Assign(ctx context.Context, shipmentID, driverID string) (*entities.ShipmentAssignment, error)
}
