//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=applications_get_test
package applications_get

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
	ListApplicationsForDriver(ctx context.Context, driverID string) ([]entities.JobApplication, error)
}
