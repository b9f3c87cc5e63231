package shipments_get

import (
	"encoding/json"
	"net/http"

	"autohaul/internal/handlers/rest/dto"
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

// ServeHTTP отдает доску открытых перевозок для водителей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.service.ListPending(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Shipment, 0, len(shipments))
	for i := range shipments {
		response = append(response, dto.FromShipment(&shipments[i]))
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
