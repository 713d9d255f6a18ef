package contract

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/sign", h.Sign)
	r.Get("/rating-scale", h.RatingScale)

	return r
}
