package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidPrice          = errors.New("invalid price")

	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrIllegalTransition = errors.New("illegal shipment status transition")
	ErrUndefinedEvent    = errors.New("undefined shipment event")

	// ErrEventRequiresDriver: событие assign идет только через сервис заявок,
	// где назначение выполняется условным UPDATE вместе с driver_id.
	ErrEventRequiresDriver = errors.New("assign event requires the driver assignment path")
)
