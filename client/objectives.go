package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const objectivesCachePrefix = "objectives:"

// ObjectiveFilters constrain and order a listing. Dates are "2006-01-02".
type ObjectiveFilters struct {
	Status    string
	DueAfter  string
	DueBefore string
	SortBy    string
	SortOrder string
}

func (f ObjectiveFilters) query() string {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.DueAfter != "" {
		q.Set("due_after", f.DueAfter)
	}
	if f.DueBefore != "" {
		q.Set("due_before", f.DueBefore)
	}
	if f.SortBy != "" {
		q.Set("sort_by", f.SortBy)
	}
	if f.SortOrder != "" {
		q.Set("sort_order", f.SortOrder)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (f ObjectiveFilters) cacheKey() string {
	return objectivesCachePrefix + "list:" + strings.Join([]string{
		f.Status, f.DueAfter, f.DueBefore, f.SortBy, f.SortOrder,
	}, "|")
}

func (c *Client) ListObjectives(ctx context.Context, f ObjectiveFilters) ([]Objective, error) {
	return cached(c.cache, f.cacheKey(), func() ([]Objective, error) {
		var wires []objectiveWire
		if err := c.do(ctx, http.MethodGet, "/objectives"+f.query(), nil, &wires); err != nil {
			return nil, err
		}
		objectives := make([]Objective, 0, len(wires))
		for _, w := range wires {
			objectives = append(objectives, objectiveFromWire(w))
		}
		return objectives, nil
	})
}

func (c *Client) GetObjective(ctx context.Context, id string) (*Objective, error) {
	var w objectiveWire
	if err := c.do(ctx, http.MethodGet, "/objectives/"+url.PathEscape(id), nil, &w); err != nil {
		return nil, err
	}
	o := objectiveFromWire(w)
	return &o, nil
}

// CreateObjective persists a new objective. Progress is not accepted here;
// the backend starts every objective at 0.
func (c *Client) CreateObjective(ctx context.Context, form ObjectiveForm) (*Objective, error) {
	payload := createObjectiveWire{
		Title:       form.Title,
		Description: form.Description,
		KPI:         form.KPI,
		Weight:      form.Weight,
		Target:      form.Target,
		DueDate:     form.DueDate,
		Status:      form.Status,
	}

	var w objectiveWire
	if err := c.do(ctx, http.MethodPost, "/objectives", payload, &w); err != nil {
		return nil, err
	}
	c.cache.Invalidate(objectivesCachePrefix)

	o := objectiveFromWire(w)
	return &o, nil
}

// UpdateObjective edits the supplied fields only; progress is preserved.
func (c *Client) UpdateObjective(ctx context.Context, id string, form ObjectiveForm) (*Objective, error) {
	payload := updateObjectiveWire{
		Title:       &form.Title,
		Description: &form.Description,
		KPI:         &form.KPI,
		Weight:      &form.Weight,
		Target:      &form.Target,
		DueDate:     &form.DueDate,
		Status:      &form.Status,
	}

	var w objectiveWire
	if err := c.do(ctx, http.MethodPatch, "/objectives/"+url.PathEscape(id), payload, &w); err != nil {
		return nil, err
	}
	c.cache.Invalidate(objectivesCachePrefix)

	o := objectiveFromWire(w)
	return &o, nil
}

func (c *Client) UpdateObjectiveProgress(ctx context.Context, id string, form ProgressForm) (*Objective, error) {
	payload := progressUpdateWire{
		Progress: form.Progress,
		Status:   form.Status,
		Note:     form.Note,
	}

	var w objectiveWire
	if err := c.do(ctx, http.MethodPatch, "/objectives/"+url.PathEscape(id)+"/progress", payload, &w); err != nil {
		return nil, err
	}
	c.cache.Invalidate(objectivesCachePrefix)

	o := objectiveFromWire(w)
	return &o, nil
}

func (c *Client) ListProgressUpdates(ctx context.Context, id string) ([]ProgressEntry, error) {
	var wires []progressEntryWire
	if err := c.do(ctx, http.MethodGet, "/objectives/"+url.PathEscape(id)+"/progress", nil, &wires); err != nil {
		return nil, err
	}
	entries := make([]ProgressEntry, 0, len(wires))
	for _, w := range wires {
		entries = append(entries, progressEntryFromWire(w))
	}
	return entries, nil
}

func (c *Client) DeleteObjective(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/objectives/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(objectivesCachePrefix)
	return nil
}

func (c *Client) ObjectiveStats(ctx context.Context) (*Stats, error) {
	return cached(c.cache, objectivesCachePrefix+"stats", func() (*Stats, error) {
		var w statsWire
		if err := c.do(ctx, http.MethodGet, "/objectives/stats", nil, &w); err != nil {
			return nil, err
		}
		return &Stats{
			Total:       w.Total,
			Completed:   w.Completed,
			InProgress:  w.InProgress,
			AtRisk:      w.AtRisk,
			Delayed:     w.Delayed,
			WeightTotal: w.WeightTotal,
			AvgProgress: w.AvgProgress,
			Score:       w.Score,
		}, nil
	})
}
