package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validObjectiveForm() ObjectiveForm {
	return ObjectiveForm{
		Title:       "Improve customer satisfaction",
		Description: "Raise the average satisfaction rating from 4.2 to 4.5",
		KPI:         "Customer Satisfaction Rating",
		Weight:      20,
		Target:      "4.5/5.0",
		DueDate:     "2026-12-31",
		Status:      "On Track",
	}
}

func TestObjectiveFormValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validObjectiveForm().Validate())
	})

	t.Run("ShortTitle", func(t *testing.T) {
		f := validObjectiveForm()
		f.Title = "abc"
		assert.Error(t, f.Validate())
	})

	t.Run("WeightOutOfRange", func(t *testing.T) {
		f := validObjectiveForm()
		f.Weight = 0
		assert.Error(t, f.Validate())

		f.Weight = 150
		assert.Error(t, f.Validate())
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		f := validObjectiveForm()
		f.Status = "Paused"
		assert.Error(t, f.Validate())
	})

	t.Run("MalformedDueDate", func(t *testing.T) {
		f := validObjectiveForm()
		f.DueDate = "31/12/2026"
		assert.ErrorIs(t, f.Validate(), ErrInvalidDueDate)
	})
}

func TestProgressFormValidate(t *testing.T) {
	t.Run("ZeroProgressIsValid", func(t *testing.T) {
		f := ProgressForm{Progress: 0, Status: "Delayed"}
		assert.NoError(t, f.Validate())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		f := ProgressForm{Progress: 101, Status: "On Track"}
		assert.Error(t, f.Validate())
	})

	t.Run("MissingStatus", func(t *testing.T) {
		f := ProgressForm{Progress: 50}
		assert.Error(t, f.Validate())
	})

	t.Run("NoteIsOptional", func(t *testing.T) {
		f := ProgressForm{Progress: 50, Status: "On Track", Note: "halfway there"}
		assert.NoError(t, f.Validate())
	})
}
