//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_submit_post_test
package booking_submit_post

import (
	"autohaul/internal/service/booking"
	"autohaul/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Sessions interface {
	Acquire(clientID string) (*booking.Workflow, error)
}
