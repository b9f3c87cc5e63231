package booking_step_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"autohaul/internal/entities"
	"autohaul/internal/handlers/rest/dto"
	"autohaul/internal/service/booking"
	"autohaul/pkg/logger"
)

const clientIDHeader = "X-Client-ID"

type Handler struct {
	log      handlerLogger
	sessions Sessions
}

func New(log handlerLogger, sessions Sessions) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		sessions: sessions,
	}
}

// ServeHTTP сохраняет частичное обновление шага. Невалидные данные шага —
// не ошибка запроса: черновик сохраняется, клиент получает valid=false
// со списком недостающих полей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	workflow, err := h.sessions.Acquire(r.Header.Get(clientIDHeader))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidClientID):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	step := entities.BookingStep(mux.Vars(r)["step"])
	input, err := decodeStepInput(step, r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := workflow.UpdateStep(step, input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnknownStep),
			errors.Is(err, booking.ErrStepDataMismatch):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.StepResult{
		Valid:   result.Valid,
		Missing: result.Missing,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// decodeStepInput читает тело запроса в структуру конкретного шага.
func decodeStepInput(step entities.BookingStep, r *http.Request) (entities.StepInput, error) {
	var input entities.StepInput
	decoder := json.NewDecoder(r.Body)

	switch step {
	case entities.StepCustomer:
		var body dto.CustomerStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		input.Customer = &entities.CustomerStep{
			FullName: body.FullName,
			Email:    body.Email,
			Phone:    body.Phone,
		}
	case entities.StepVehicle:
		var body dto.VehicleStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		input.Vehicle = &entities.VehicleStep{
			Make:  body.Make,
			Model: body.Model,
			Year:  body.Year,
		}
	case entities.StepPickup:
		var body dto.StopStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		stop := toStop(body)
		input.Pickup = &stop
	case entities.StepDelivery:
		var body dto.StopStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		stop := toStop(body)
		input.Delivery = &stop
	case entities.StepTowing:
		var body dto.TowingStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		input.Towing = &entities.TowingStep{
			Operable:  body.Operable,
			Equipment: body.Equipment,
		}
	case entities.StepInsurance:
		var body dto.InsuranceStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		input.Insurance = &entities.InsuranceStep{
			PolicyNumber: body.PolicyNumber,
			DocumentRefs: body.DocumentRefs,
		}
	case entities.StepVisual:
		var body dto.VisualStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		input.Visual = &entities.VisualStep{
			ExteriorPhotoRefs: body.ExteriorPhotoRefs,
			InteriorPhotoRefs: body.InteriorPhotoRefs,
		}
	case entities.StepTerms:
		var body dto.TermsStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		input.Terms = &entities.TermsStep{
			TermsAccepted:        body.TermsAccepted,
			CancellationAccepted: body.CancellationAccepted,
			Signature:            body.Signature,
		}
	case entities.StepPayment:
		var body dto.PaymentStep
		if err := decoder.Decode(&body); err != nil {
			return input, err
		}
		input.Payment = &entities.PaymentStep{
			Method: body.Method,
		}
	}

	// Неизвестный шаг оставляет input пустым, Workflow вернет ErrUnknownStep.
	return input, nil
}

func toStop(body dto.StopStep) entities.StopStep {
	return entities.StopStep{
		Address:      body.Address,
		Lat:          body.Lat,
		Lon:          body.Lon,
		ContactName:  body.ContactName,
		ContactPhone: body.ContactPhone,
		WindowStart:  body.WindowStart,
		WindowEnd:    body.WindowEnd,
	}
}
