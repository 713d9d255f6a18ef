package contract

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/perfdash/internal/config"
)

type Handler struct {
	service ContractService
}

func NewHandler(service ContractService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	view, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		log.WithError(err).Error("Failed to get contract")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.service.Sign(r.Context(), body.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			config.Error(w, http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, ErrInvalidRole):
			config.Error(w, http.StatusBadRequest, "invalid signature role")
		default:
			log.WithError(err).Error("Failed to sign contract")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) RatingScale(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, RatingScale)
}
