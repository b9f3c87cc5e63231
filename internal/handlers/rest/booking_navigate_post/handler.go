package booking_navigate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"autohaul/internal/entities"
	"autohaul/internal/service/booking"
	"autohaul/pkg/logger"
)

const clientIDHeader = "X-Client-ID"

const (
	actionNext     = "next"
	actionPrevious = "previous"
	actionGoto     = "goto"
)

type navigateRequest struct {
	Action string `json:"action"`
	Step   string `json:"step,omitempty"`
}

type navigateResponse struct {
	CurrentStep string `json:"current_step"`
}

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

// ServeHTTP двигает мастер по шагам. Вперед — только с валидного шага,
// назад — всегда, прыжок — только через сплошь валидные шаги.
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

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var navigateErr error
	switch req.Action {
	case actionNext:
		_, navigateErr = workflow.Next()
	case actionPrevious:
		_, navigateErr = workflow.Previous()
	case actionGoto:
		navigateErr = workflow.SetStep(entities.BookingStep(req.Step))
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if navigateErr != nil {
		switch {
		case errors.Is(navigateErr, booking.ErrUnknownStep):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(navigateErr, booking.ErrStepNotValid):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(navigateErr, booking.ErrAlreadyFirstStep),
			errors.Is(navigateErr, booking.ErrAlreadyLastStep):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := navigateResponse{
		CurrentStep: workflow.CurrentStep().String(),
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
