//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_step_put_test
package booking_step_put

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
