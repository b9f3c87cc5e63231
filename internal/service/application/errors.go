package application

import "errors"

var (
	ErrInvalidShipmentID    = errors.New("invalid shipment id")
	ErrInvalidDriverID      = errors.New("invalid driver id")
	ErrInvalidApplicationID = errors.New("invalid application id")

	ErrApplicationNotFound = errors.New("application not found")

	// Конфликты состояния: проигрыш гонки или опоздавшее действие.
	// Отличаются от ошибок валидации — UI объясняет "заказ уже разобрали",
	// а не "исправьте ввод".
	ErrShipmentNotOpen            = errors.New("shipment is not open for applications")
	ErrShipmentAlreadyAssigned    = errors.New("shipment already assigned to a driver")
	ErrApplicationAlreadyResolved = errors.New("application already resolved")
	ErrNotApplicationOwner        = errors.New("application belongs to another driver")

	ErrDuplicateApplication = errors.New("driver already has an active application")
)
