//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_get_test
package booking_get

import (
	"autohaul/internal/service/booking"
	"autohaul/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Sessions interface {
	Acquire(clientID string) (*booking.Workflow, error)
}
