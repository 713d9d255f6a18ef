package user

import (
	"errors"
	"net/http"

	"github.com/example/perfdash/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	u, err := h.service.Me(r.Context())
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, "user not found")
			return
		}
		log.WithError(err).Error("Failed to load current user")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, u)
}
