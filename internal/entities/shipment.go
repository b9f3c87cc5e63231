package entities

import "time"

type Shipment struct {
	ID          string
	ClientID    string
	DriverID    *string
	Status      ShipmentStatusType
	Route       Route
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ExpiresAt   *time.Time
}

type Route struct {
	PickupAddress   string
	PickupLat       *float64
	PickupLon       *float64
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLon     *float64
}

type ShipmentStatusType string

const (
	ShipmentDraft     ShipmentStatusType = "draft"
	ShipmentPending   ShipmentStatusType = "pending"
	ShipmentAssigned  ShipmentStatusType = "assigned"
	ShipmentAccepted  ShipmentStatusType = "accepted"
	ShipmentPickedUp  ShipmentStatusType = "picked_up"
	ShipmentInTransit ShipmentStatusType = "in_transit"
	ShipmentDelivered ShipmentStatusType = "delivered"
	ShipmentCompleted ShipmentStatusType = "completed"
	ShipmentCancelled ShipmentStatusType = "cancelled"
	ShipmentFailed    ShipmentStatusType = "failed"
	ShipmentExpired   ShipmentStatusType = "expired"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// Terminal сообщает, что из статуса нет легальных переходов.
func (s ShipmentStatusType) Terminal() bool {
	switch s {
	case ShipmentCompleted, ShipmentCancelled, ShipmentFailed, ShipmentExpired:
		return true
	default:
		return false
	}
}

type ShipmentModify struct {
	ID         *string
	ClientID   *string
	DriverID   *string
	Status     *ShipmentStatusType
	Route      *Route
	PriceCents *int64
	ExpiresAt  *time.Time
}

// ShipmentEventType — внешнее событие жизненного цикла перевозки.
type ShipmentEventType string

const (
	EventFinalize        ShipmentEventType = "finalize"
	EventAssign          ShipmentEventType = "assign"
	EventDriverAccepted  ShipmentEventType = "driver_accepted"
	EventPickupVerified  ShipmentEventType = "pickup_verified"
	EventDeparted        ShipmentEventType = "departed"
	EventDelivered       ShipmentEventType = "delivered"
	EventPaymentSettled  ShipmentEventType = "payment_settled"
	EventCancel          ShipmentEventType = "cancel"
	EventFail            ShipmentEventType = "fail"
	EventExpire          ShipmentEventType = "expire"
)

func (e ShipmentEventType) String() string {
	return string(e)
}
