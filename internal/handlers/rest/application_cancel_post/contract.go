//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_cancel_post_test
package application_cancel_post

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
	CancelApplication(ctx context.Context, applicationID int64, driverID string) (*entities.JobApplication, error)
}
