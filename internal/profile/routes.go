package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/me", h.Get)
	r.Patch("/me", h.Update)
	r.Post("/me/avatar", h.UploadAvatar)

	return r
}
