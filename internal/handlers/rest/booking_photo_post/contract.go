//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_photo_post_test
package booking_photo_post

import (
	"context"

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

type MediaStore interface {
	UploadPhoto(ctx context.Context, contentType string, data []byte) (string, error)
}
