package profile

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/example/perfdash/internal/config"
)

type Handler struct {
	service ProfileService
}

func NewHandler(service ProfileService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	p, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		log.WithError(err).Error("Failed to get profile")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if p == nil {
		// No row yet: the profile materializes on first update.
		config.JSON(w, http.StatusOK, nil)
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Update(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		log.WithError(err).Error("Failed to update profile")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		config.Error(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		log.WithError(err).Error("Failed to read avatar upload")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	url, err := h.service.UploadAvatar(r.Context(), data, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			config.Error(w, http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, ErrAvatarTooLarge):
			config.Error(w, http.StatusRequestEntityTooLarge, err.Error())
		default:
			log.WithError(err).Error("Failed to upload avatar")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"avatar_url": url})
}
