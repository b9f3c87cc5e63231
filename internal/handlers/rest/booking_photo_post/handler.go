package booking_photo_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"autohaul/internal/handlers/rest/dto"
	"autohaul/internal/service/booking"
	"autohaul/pkg/logger"
)

const clientIDHeader = "X-Client-ID"

// Лимит на один снимок.
const maxPhotoBytes = 10 << 20

type Handler struct {
	log        handlerLogger
	sessions   Sessions
	mediaStore MediaStore
}

func New(log handlerLogger, sessions Sessions, mediaStore MediaStore) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		sessions:   sessions,
		mediaStore: mediaStore,
	}
}

// ServeHTTP принимает бинарник фото, заливает его в хранилище и дописывает
// ссылку к визуальному шагу черновика.
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

	category := booking.PhotoCategory(mux.Vars(r)["category"])
	if category != booking.PhotoExterior && category != booking.PhotoInterior {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxPhotoBytes+1))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(data) > maxPhotoBytes {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}

	url, err := h.mediaStore.UploadPhoto(r.Context(), r.Header.Get("Content-Type"), data)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("upload photo")
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	result, err := workflow.AddPhotos(category, []string{url})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidPhotoInput):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PhotoUpload{
		URL: url,
		StepResult: dto.StepResult{
			Valid:   result.Valid,
			Missing: result.Missing,
		},
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
