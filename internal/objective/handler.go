package objective

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/perfdash/internal/config"
	util "github.com/example/perfdash/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service ObjectiveService
}

func NewHandler(service ObjectiveService) *Handler {
	return &Handler{service: service}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	log := config.WithContext(r.Context())

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, ErrUnauthorized):
		config.Error(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, ErrObjectiveNotFound), errors.Is(err, ErrInvalidID):
		config.Error(w, http.StatusNotFound, "objective not found")
	case errors.As(err, &validationErrs), errors.Is(err, ErrDueDateRequired):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Errorf("Failed to %s", action)
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func filtersFromQuery(r *http.Request) (Filters, error) {
	q := r.URL.Query()
	f := Filters{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if v := q.Get("status"); v != "" {
		status := Status(v)
		if !status.Valid() {
			return f, errors.New("invalid status filter")
		}
		f.Status = &status
	}
	if v := q.Get("due_after"); v != "" {
		d, err := util.ParseDateOnly(v)
		if err != nil {
			return f, errors.New("invalid due_after date")
		}
		f.DueAfter = &d
	}
	if v := q.Get("due_before"); v != "" {
		d, err := util.ParseDateOnly(v)
		if err != nil {
			return f, errors.New("invalid due_before date")
		}
		f.DueBefore = &d
	}
	return f, nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f, err := filtersFromQuery(r)
	if err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	objectives, err := h.service.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err, "list objectives")
		return
	}
	if objectives == nil {
		objectives = []*Objective{}
	}

	config.JSON(w, http.StatusOK, objectives)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "get objective")
		return
	}

	config.JSON(w, http.StatusOK, o)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateObjectiveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.service.Create(r.Context(), dto)
	if err != nil {
		writeServiceError(w, r, err, "create objective")
		return
	}

	config.JSON(w, http.StatusCreated, o)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateObjectiveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, r, err, "update objective")
		return
	}

	config.JSON(w, http.StatusOK, o)
}

func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var dto ProgressUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.service.UpdateProgress(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeServiceError(w, r, err, "update objective progress")
		return
	}

	config.JSON(w, http.StatusOK, o)
}

func (h *Handler) ListProgressUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := h.service.ListProgressUpdates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "list progress updates")
		return
	}
	if updates == nil {
		updates = []*ProgressUpdate{}
	}

	config.JSON(w, http.StatusOK, updates)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "delete objective")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "compute objective stats")
		return
	}

	config.JSON(w, http.StatusOK, stats)
}
