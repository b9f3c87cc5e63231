// Package dto содержит транспортные структуры REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// Шаги мастера оформления. Все поля опциональны: PUT шага несет частичное
// обновление, непереданные поля не трогаются.

type CustomerStep struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type VehicleStep struct {
	Make  *string `json:"make,omitempty"`
	Model *string `json:"model,omitempty"`
	Year  *int    `json:"year,omitempty"`
}

type StopStep struct {
	Address      *string    `json:"address,omitempty"`
	Lat          *float64   `json:"lat,omitempty"`
	Lon          *float64   `json:"lon,omitempty"`
	ContactName  *string    `json:"contact_name,omitempty"`
	ContactPhone *string    `json:"contact_phone,omitempty"`
	WindowStart  *time.Time `json:"window_start,omitempty"`
	WindowEnd    *time.Time `json:"window_end,omitempty"`
}

type TowingStep struct {
	Operable  *bool   `json:"operable,omitempty"`
	Equipment *string `json:"equipment,omitempty"`
}

type InsuranceStep struct {
	PolicyNumber *string  `json:"policy_number,omitempty"`
	DocumentRefs []string `json:"document_refs,omitempty"`
}

type VisualStep struct {
	ExteriorPhotoRefs []string `json:"exterior_photo_refs,omitempty"`
	InteriorPhotoRefs []string `json:"interior_photo_refs,omitempty"`
}

type TermsStep struct {
	TermsAccepted        *bool   `json:"terms_accepted,omitempty"`
	CancellationAccepted *bool   `json:"cancellation_accepted,omitempty"`
	Signature            *string `json:"signature,omitempty"`
}

type PaymentStep struct {
	Method *string `json:"method,omitempty"`
}

type StepState struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
}

type BookingState struct {
	CurrentStep       string      `json:"current_step"`
	Steps             []StepState `json:"steps"`
	PendingShipmentID *string     `json:"pending_shipment_id,omitempty"`

	Customer  CustomerStep  `json:"customer"`
	Vehicle   VehicleStep   `json:"vehicle"`
	Pickup    StopStep      `json:"pickup"`
	Delivery  StopStep      `json:"delivery"`
	Towing    TowingStep    `json:"towing"`
	Insurance InsuranceStep `json:"insurance"`
	Visual    VisualStep    `json:"visual"`
	Terms     TermsStep     `json:"terms"`
	Payment   PaymentStep   `json:"payment"`
}

type StepResult struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing,omitempty"`
}

type PhotoUpload struct {
	URL        string     `json:"url"`
	StepResult StepResult `json:"step_result"`
}

type BookingSubmission struct {
	ShipmentID     string `json:"shipment_id"`
	TotalCents     int64  `json:"total_cents"`
	UpfrontCents   int64  `json:"upfront_cents"`
	RemainderCents int64  `json:"remainder_cents"`
}

type ValidationError struct {
	Error string              `json:"error"`
	Steps map[string][]string `json:"steps"`
}

type PaymentError struct {
	Error      string `json:"error"`
	ShipmentID string `json:"shipment_id"`
}

type Route struct {
	PickupAddress   string   `json:"pickup_address"`
	PickupLat       *float64 `json:"pickup_lat,omitempty"`
	PickupLon       *float64 `json:"pickup_lon,omitempty"`
	DeliveryAddress string   `json:"delivery_address"`
	DeliveryLat     *float64 `json:"delivery_lat,omitempty"`
	DeliveryLon     *float64 `json:"delivery_lon,omitempty"`
}

type Shipment struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"client_id"`
	DriverID   *string    `json:"driver_id,omitempty"`
	Status     string     `json:"status"`
	Route      Route      `json:"route"`
	PriceCents int64      `json:"price_cents"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

type Application struct {
	ID          int64      `json:"id"`
	ShipmentID  string     `json:"shipment_id"`
	DriverID    string     `json:"driver_id"`
	Status      string     `json:"status"`
	AppliedAt   time.Time  `json:"applied_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type AssignRequest struct {
	DriverID string `json:"driver_id"`
}

type Assignment struct {
	ShipmentID    string    `json:"shipment_id"`
	DriverID      string    `json:"driver_id"`
	ApplicationID int64     `json:"application_id"`
	AssignedAt    time.Time `json:"assigned_at"`
	RejectedCount int64     `json:"rejected_count"`
}
