//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_post_test
package application_post

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
	Apply(ctx context.Context, shipmentID, driverID string) (*entities.JobApplication, error)
}
