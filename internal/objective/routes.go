package objective

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/stats", h.Stats)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Patch("/{id}/progress", h.UpdateProgress)
	r.Get("/{id}/progress", h.ListProgressUpdates)
	r.Delete("/{id}", h.Delete)

	return r
}
