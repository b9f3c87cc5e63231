package shipment_assign_post

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

// ServeHTTP назначает перевозку водителю. Из конкурирующих запросов выживает
// ровно один, проигравшие получают 409.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	shipmentID := mux.Vars(r)["id"]

	var req dto.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.Assign(r.Context(), shipmentID, req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidShipmentID),
			errors.Is(err, application.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, application.ErrShipmentAlreadyAssigned),
			errors.Is(err, application.ErrShipmentNotOpen):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Assignment{
		ShipmentID:    assignment.ShipmentID,
		DriverID:      assignment.DriverID,
		ApplicationID: assignment.ApplicationID,
		AssignedAt:    assignment.AssignedAt,
		RejectedCount: assignment.RejectedCount,
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
