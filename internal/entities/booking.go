package entities

import "time"

// BookingStep — шаг мастера оформления перевозки. Закрытое перечисление:
// порядок фиксирован, пропуски шагов запрещены.
type BookingStep string

const (
	StepCustomer  BookingStep = "customer"
	StepVehicle   BookingStep = "vehicle"
	StepPickup    BookingStep = "pickup"
	StepDelivery  BookingStep = "delivery"
	StepTowing    BookingStep = "towing"
	StepInsurance BookingStep = "insurance"
	StepVisual    BookingStep = "visual"
	StepTerms     BookingStep = "terms"
	StepPayment   BookingStep = "payment"
)

func (s BookingStep) String() string {
	return string(s)
}

// BookingSteps — девять шагов в порядке прохождения.
var BookingSteps = [...]BookingStep{
	StepCustomer,
	StepVehicle,
	StepPickup,
	StepDelivery,
	StepTowing,
	StepInsurance,
	StepVisual,
	StepTerms,
	StepPayment,
}

// Данные шагов — частичные записи: все поля опциональны, пока черновик
// не прошел валидацию шага.

type CustomerStep struct {
	FullName *string
	Email    *string
	Phone    *string
}

type VehicleStep struct {
	Make  *string
	Model *string
	Year  *int
}

type StopStep struct {
	Address      *string
	Lat          *float64
	Lon          *float64
	ContactName  *string
	ContactPhone *string
	WindowStart  *time.Time
	WindowEnd    *time.Time
}

type TowingStep struct {
	Operable  *bool
	Equipment *string
}

type InsuranceStep struct {
	PolicyNumber *string
	DocumentRefs []string
}

type VisualStep struct {
	ExteriorPhotoRefs []string
	InteriorPhotoRefs []string
}

type TermsStep struct {
	TermsAccepted        *bool
	CancellationAccepted *bool
	Signature            *string
}

type PaymentStep struct {
	Method *string
}

// BookingDraft — накопленное состояние мастера. Мутируется только через
// Workflow.UpdateStep, единственную точку записи.
type BookingDraft struct {
	Customer  CustomerStep
	Vehicle   VehicleStep
	Pickup    StopStep
	Delivery  StopStep
	Towing    TowingStep
	Insurance InsuranceStep
	Visual    VisualStep
	Terms     TermsStep
	Payment   PaymentStep

	CurrentStep BookingStep
	Validity    map[BookingStep]bool
	IsDraft     bool

	// PendingShipmentID заполняется после create-before-charge: повторный
	// submit переиспользует ту же перевозку вместо создания второй.
	PendingShipmentID string

	PriceCents int64
}

// NewBookingDraft возвращает пустой документ на первом шаге.
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		CurrentStep: StepCustomer,
		Validity:    make(map[BookingStep]bool, len(BookingSteps)),
	}
}

// StepInput — частичное обновление ровно одного шага.
type StepInput struct {
	Customer  *CustomerStep
	Vehicle   *VehicleStep
	Pickup    *StopStep
	Delivery  *StopStep
	Towing    *TowingStep
	Insurance *InsuranceStep
	Visual    *VisualStep
	Terms     *TermsStep
	Payment   *PaymentStep
}

// BookingSubmission — результат успешного submit.
type BookingSubmission struct {
	ShipmentID     string
	TotalCents     int64
	UpfrontCents   int64
	RemainderCents int64
}
