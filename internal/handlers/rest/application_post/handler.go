package application_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"autohaul/internal/handlers/rest/dto"
	"autohaul/internal/service/application"
	"autohaul/internal/service/shipment"
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

// ServeHTTP подает заявку водителя на перевозку. Повторная подача
// идемпотентна и возвращает ту же заявку.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	shipmentID := mux.Vars(r)["id"]
	driverID := r.Header.Get(driverIDHeader)

	applicationEntity, err := h.service.Apply(r.Context(), shipmentID, driverID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidDriverID):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, application.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, application.ErrShipmentNotOpen),
			errors.Is(err, application.ErrShipmentAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromApplication(applicationEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
