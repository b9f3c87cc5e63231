package applications_get

import (
	"encoding/json"
	"errors"
	"net/http"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID := r.Header.Get(driverIDHeader)

	applications, err := h.service.ListApplicationsForDriver(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidDriverID):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Application, 0, len(applications))
	for i := range applications {
		response = append(response, dto.FromApplication(&applications[i]))
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
