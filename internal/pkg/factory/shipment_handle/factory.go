package shipment_handle

import (
	"context"
	"fmt"

	"autohaul/internal/entities"
	"autohaul/internal/service/shipment"
)

// ShipmentService — часть сервиса перевозок, нужная обработке событий.
type ShipmentService interface {
	ApplyEvent(ctx context.Context, shipmentID string, event entities.ShipmentEventType) (*entities.Shipment, error)
}

// EventHandlerFactory раздает обработчики событий жизненного цикла,
// прилетающих из шины. Назначение водителя через шину не идет:
// у него отдельный путь с арбитражем заявок.
type EventHandlerFactory struct {
	shipmentService ShipmentService
}

func NewEventHandlerFactory(shipmentService ShipmentService) *EventHandlerFactory {
	return &EventHandlerFactory{
		shipmentService: shipmentService,
	}
}

func (f *EventHandlerFactory) GetHandler(event entities.ShipmentEventType) (shipment.ExecuteFn, error) {
	switch event {
	case entities.EventDriverAccepted,
		entities.EventPickupVerified,
		entities.EventDeparted,
		entities.EventDelivered,
		entities.EventPaymentSettled,
		entities.EventCancel,
		entities.EventFail,
		entities.EventExpire:
		return f.applyHandler(event), nil
	default:
		return nil, fmt.Errorf("%w: %s", shipment.ErrUndefinedEvent, event)
	}
}

func (f *EventHandlerFactory) applyHandler(event entities.ShipmentEventType) shipment.ExecuteFn {
	return func(ctx context.Context, shipmentID string) error {
		_, err := f.shipmentService.ApplyEvent(ctx, shipmentID, event)
		if err != nil {
			return fmt.Errorf("apply %s for shipment %s: %w", event, shipmentID, err)
		}
		return nil
	}
}
