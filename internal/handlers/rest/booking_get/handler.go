package booking_get

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

	state := dto.FromDraft(workflow.Snapshot())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(state)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
