//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"

	"autohaul/internal/entities"
)

type PaymentGateway interface {
	AuthorizeUpfront(ctx context.Context, charge entities.UpfrontCharge) (*entities.PaymentReference, error)
}

type ShipmentService interface {
	CreateDraft(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	Finalize(ctx context.Context, shipmentID string) (*entities.Shipment, error)
}

type PricingFactory interface {
	EstimateTotal(draft *entities.BookingDraft) int64
	Split(totalCents int64) entities.PriceSplit
}
