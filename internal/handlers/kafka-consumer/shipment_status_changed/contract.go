//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_changed_test
package shipment_status_changed

import (
	"autohaul/internal/entities"
	"autohaul/internal/service/shipment"
	"autohaul/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(event entities.ShipmentEventType) (shipment.ExecuteFn, error)
}
