package client

// TrackerState holds the objective tracker's UI state: which row is
// expanded, which dialog is open against which objective, and the active
// listing filters. It is a plain state container so views stay thin.
type TrackerState struct {
	ExpandedID string

	SaveDialogOpen bool
	Editing        *Objective // nil means the save dialog creates

	DeleteDialogOpen bool
	PendingDeleteID  string

	ProgressDialogOpen bool
	ProgressTarget     *Objective

	Filters ObjectiveFilters
}

func NewTrackerState() *TrackerState {
	return &TrackerState{}
}

// ToggleExpand expands id, collapsing whatever was open; re-clicking the
// expanded row collapses it.
func (t *TrackerState) ToggleExpand(id string) {
	if t.ExpandedID == id {
		t.ExpandedID = ""
		return
	}
	t.ExpandedID = id
}

// OpenCreate opens the save dialog with no editing target.
func (t *TrackerState) OpenCreate() {
	t.Editing = nil
	t.SaveDialogOpen = true
}

func (t *TrackerState) OpenEdit(o Objective) {
	copied := o
	t.Editing = &copied
	t.SaveDialogOpen = true
}

// IsEditing reports whether a save routes to update rather than create.
func (t *TrackerState) IsEditing() bool {
	return t.Editing != nil
}

// SaveSettled resolves the save dialog. The dialog only closes when the
// mutation succeeded; on failure it stays open so the entered data is not
// lost.
func (t *TrackerState) SaveSettled(success bool) {
	if !success {
		return
	}
	t.SaveDialogOpen = false
	t.Editing = nil
}

func (t *TrackerState) RequestDelete(id string) {
	t.PendingDeleteID = id
	t.DeleteDialogOpen = true
}

func (t *TrackerState) CancelDelete() {
	t.PendingDeleteID = ""
	t.DeleteDialogOpen = false
}

// ConfirmDelete hands back the pending id for the caller to delete. The
// pending id is only cleared once the caller reports the outcome through
// DeleteSettled.
func (t *TrackerState) ConfirmDelete() string {
	return t.PendingDeleteID
}

// DeleteSettled resolves the confirm dialog like SaveSettled: the dialog and
// the pending id only clear when the delete succeeded, so a failed delete can
// be retried or cancelled.
func (t *TrackerState) DeleteSettled(success bool) {
	if !success {
		return
	}
	t.DeleteDialogOpen = false
	t.PendingDeleteID = ""
}

func (t *TrackerState) OpenProgress(o Objective) {
	copied := o
	t.ProgressTarget = &copied
	t.ProgressDialogOpen = true
}

func (t *TrackerState) ProgressSettled(success bool) {
	if !success {
		return
	}
	t.ProgressDialogOpen = false
	t.ProgressTarget = nil
}

// SetStatusFilter, SetSort: changing any filter field makes the listing key
// different, which forces the next read through the cache to refetch.
func (t *TrackerState) SetStatusFilter(status string) {
	t.Filters.Status = status
}

func (t *TrackerState) SetSort(sortBy, sortOrder string) {
	t.Filters.SortBy = sortBy
	t.Filters.SortOrder = sortOrder
}

// Counts derives the summary numbers from the loaded listing. In-progress
// counts every non-completed objective, At Risk and Delayed included.
func (t *TrackerState) Counts(objectives []Objective) (completed, inProgress, atRisk int) {
	for _, o := range objectives {
		if o.Status == "Completed" {
			completed++
		} else {
			inProgress++
		}
		if o.Status == "At Risk" {
			atRisk++
		}
	}
	return completed, inProgress, atRisk
}
