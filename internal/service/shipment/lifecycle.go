package shipment

import (
	"fmt"

	"autohaul/internal/entities"
)

// transitions — легальные переходы жизненного цикла перевозки.
// cancel и fail обрабатываются отдельно: они допустимы из любого
// нетерминального статуса.
var transitions = map[entities.ShipmentStatusType]map[entities.ShipmentEventType]entities.ShipmentStatusType{
	entities.ShipmentDraft: {
		entities.EventFinalize: entities.ShipmentPending,
	},
	entities.ShipmentPending: {
		entities.EventAssign: entities.ShipmentAssigned,
		entities.EventExpire: entities.ShipmentExpired,
	},
	entities.ShipmentAssigned: {
		entities.EventDriverAccepted: entities.ShipmentAccepted,
	},
	entities.ShipmentAccepted: {
		entities.EventPickupVerified: entities.ShipmentPickedUp,
	},
	entities.ShipmentPickedUp: {
		entities.EventDeparted: entities.ShipmentInTransit,
	},
	entities.ShipmentInTransit: {
		entities.EventDelivered: entities.ShipmentDelivered,
	},
	entities.ShipmentDelivered: {
		entities.EventPaymentSettled: entities.ShipmentCompleted,
	},
}

// NextStatus возвращает статус после применения события или
// ErrIllegalTransition. Нелегальные переходы отклоняются, а не приводятся
// к ближайшему допустимому.
func NextStatus(current entities.ShipmentStatusType, event entities.ShipmentEventType) (entities.ShipmentStatusType, error) {
	switch event {
	case entities.EventCancel:
		if current.Terminal() {
			return "", fmt.Errorf("%w: cancel from %s", ErrIllegalTransition, current)
		}
		return entities.ShipmentCancelled, nil
	case entities.EventFail:
		if current.Terminal() {
			return "", fmt.Errorf("%w: fail from %s", ErrIllegalTransition, current)
		}
		return entities.ShipmentFailed, nil
	}

	allowed, ok := transitions[current]
	if !ok {
		return "", fmt.Errorf("%w: %s from terminal status %s", ErrIllegalTransition, event, current)
	}

	next, ok := allowed[event]
	if !ok {
		return "", fmt.Errorf("%w: %s from %s", ErrIllegalTransition, event, current)
	}
	return next, nil
}
