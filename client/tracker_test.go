package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleExpand(t *testing.T) {
	tracker := NewTrackerState()

	tracker.ToggleExpand("a")
	assert.Equal(t, "a", tracker.ExpandedID)

	// Expanding another row collapses the first.
	tracker.ToggleExpand("b")
	assert.Equal(t, "b", tracker.ExpandedID)

	// Re-toggling the expanded row collapses it.
	tracker.ToggleExpand("b")
	assert.Equal(t, "", tracker.ExpandedID)
}

func TestSaveDialogLifecycle(t *testing.T) {
	tracker := NewTrackerState()

	t.Run("CreateMode", func(t *testing.T) {
		tracker.OpenCreate()
		assert.True(t, tracker.SaveDialogOpen)
		assert.False(t, tracker.IsEditing())
	})

	t.Run("EditMode", func(t *testing.T) {
		tracker.OpenEdit(Objective{ID: "obj-1", Title: "Original"})
		assert.True(t, tracker.SaveDialogOpen)
		assert.True(t, tracker.IsEditing())
		assert.Equal(t, "obj-1", tracker.Editing.ID)
	})

	t.Run("FailureKeepsDialogOpen", func(t *testing.T) {
		tracker.SaveSettled(false)
		assert.True(t, tracker.SaveDialogOpen)
		assert.True(t, tracker.IsEditing())
	})

	t.Run("SuccessCloses", func(t *testing.T) {
		tracker.SaveSettled(true)
		assert.False(t, tracker.SaveDialogOpen)
		assert.False(t, tracker.IsEditing())
	})
}

func TestEditCopiesTheObjective(t *testing.T) {
	tracker := NewTrackerState()
	original := Objective{ID: "obj-1", Title: "Before"}

	tracker.OpenEdit(original)
	original.Title = "After"

	assert.Equal(t, "Before", tracker.Editing.Title)
}

func TestDeleteLifecycle(t *testing.T) {
	tracker := NewTrackerState()

	tracker.RequestDelete("obj-9")
	assert.True(t, tracker.DeleteDialogOpen)

	t.Run("ConfirmHandsBackPendingID", func(t *testing.T) {
		assert.Equal(t, "obj-9", tracker.ConfirmDelete())
		// Still pending until the mutation settles.
		assert.Equal(t, "obj-9", tracker.PendingDeleteID)
	})

	t.Run("FailureKeepsDialogOpenForRetry", func(t *testing.T) {
		tracker.DeleteSettled(false)
		assert.True(t, tracker.DeleteDialogOpen)
		assert.Equal(t, "obj-9", tracker.PendingDeleteID)
	})

	t.Run("SuccessClosesAndClears", func(t *testing.T) {
		tracker.DeleteSettled(true)
		assert.False(t, tracker.DeleteDialogOpen)
		assert.Equal(t, "", tracker.PendingDeleteID)
	})

	t.Run("CancelClearsEverything", func(t *testing.T) {
		tracker.RequestDelete("obj-10")
		tracker.CancelDelete()
		assert.False(t, tracker.DeleteDialogOpen)
		assert.Equal(t, "", tracker.PendingDeleteID)
	})
}

func TestProgressDialogLifecycle(t *testing.T) {
	tracker := NewTrackerState()

	tracker.OpenProgress(Objective{ID: "obj-3", Progress: 30})
	assert.True(t, tracker.ProgressDialogOpen)
	assert.Equal(t, "obj-3", tracker.ProgressTarget.ID)

	tracker.ProgressSettled(false)
	assert.True(t, tracker.ProgressDialogOpen)

	tracker.ProgressSettled(true)
	assert.False(t, tracker.ProgressDialogOpen)
	assert.Nil(t, tracker.ProgressTarget)
}

func TestCounts(t *testing.T) {
	tracker := NewTrackerState()

	objectives := []Objective{
		{Status: "Completed"},
		{Status: "On Track"},
		{Status: "At Risk"},
		{Status: "Delayed"},
	}

	completed, inProgress, atRisk := tracker.Counts(objectives)
	assert.Equal(t, 1, completed)
	// Everything not completed counts as in progress, At Risk and Delayed
	// included.
	assert.Equal(t, 3, inProgress)
	assert.Equal(t, 1, atRisk)
}
