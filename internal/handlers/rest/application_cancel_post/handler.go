package application_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"autohaul/internal/handlers/rest/dto"
	"autohaul/internal/service/application"
	"autohaul/pkg/logger"
)

const driverIDHeader = "X-Driver-ID"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отзывает заявку. Чужую заявку отозвать нельзя, уже
// разрешенную — тоже.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	applicationID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverID := r.Header.Get(driverIDHeader)

	applicationEntity, err := h.service.CancelApplication(r.Context(), applicationID, driverID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidDriverID):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, application.ErrInvalidApplicationID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, application.ErrApplicationNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, application.ErrNotApplicationOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, application.ErrApplicationAlreadyResolved):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromApplication(applicationEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
