package booking_cancel_post

import (
	"errors"
	"net/http"

	"autohaul/internal/service/booking"
)

const clientIDHeader = "X-Client-ID"

type Handler struct {
	sessions Sessions
}

func New(sessions Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

// ServeHTTP выбрасывает черновик клиента. Уже созданную перевозку это
// не трогает: ее отменяют отдельным вызовом.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.Discard(r.Header.Get(clientIDHeader))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidClientID):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
