package booking_submit_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

// ServeHTTP — терминальное действие мастера. Коды подобраны под три разных
// исхода отказа: 409 — вызов не с последнего шага, 422 — невалидные шаги,
// 402 — перевозка создана, но предоплата не прошла.
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

	submission, err := workflow.Submit(r.Context())
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	response := dto.BookingSubmission{
		ShipmentID:     submission.ShipmentID,
		TotalCents:     submission.TotalCents,
		UpfrontCents:   submission.UpfrontCents,
		RemainderCents: submission.RemainderCents,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeSubmitError(w http.ResponseWriter, err error) {
	var validationErr *booking.ValidationFailure
	if errors.As(err, &validationErr) {
		steps := make(map[string][]string, len(validationErr.Steps))
		for step, missing := range validationErr.Steps {
			steps[step.String()] = missing
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		h.encode(w, dto.ValidationError{
			Error: "booking validation failed",
			Steps: steps,
		})
		return
	}

	var paymentErr *booking.PaymentFailure
	if errors.As(err, &paymentErr) {
		h.log.With(
			logger.NewField("shipment", paymentErr.ShipmentID),
			logger.NewField("error", paymentErr.Err),
		).Warn("upfront payment failed, draft preserved")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		h.encode(w, dto.PaymentError{
			Error:      "upfront payment failed",
			ShipmentID: paymentErr.ShipmentID,
		})
		return
	}

	switch {
	case errors.Is(err, booking.ErrNotOnFinalStep):
		w.WriteHeader(http.StatusConflict)
	default:
		h.log.With(
			logger.NewField("error", err),
		).Error("booking submit failed")
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) encode(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
