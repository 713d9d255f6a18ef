package objective

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	util "github.com/example/perfdash/internal/utils"
)

func TestCreateObjectiveDTOValidate(t *testing.T) {
	valid := func() CreateObjectiveDTO {
		return CreateObjectiveDTO{
			Title:       "Ship the quarterly report",
			Description: "Deliver the automated quarterly report to finance",
			KPI:         "Reports delivered",
			Weight:      25,
			Target:      "4 reports",
			DueDate:     util.NewDateOnly(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)),
			Status:      StatusOnTrack,
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("ShortTitle", func(t *testing.T) {
		dto := valid()
		dto.Title = "abcd"
		assert.Error(t, dto.Validate())
	})

	t.Run("ShortDescription", func(t *testing.T) {
		dto := valid()
		dto.Description = "too short"
		assert.Error(t, dto.Validate())
	})

	t.Run("ShortKPI", func(t *testing.T) {
		dto := valid()
		dto.KPI = "ab"
		assert.Error(t, dto.Validate())
	})

	t.Run("WeightBounds", func(t *testing.T) {
		dto := valid()
		dto.Weight = 0
		assert.Error(t, dto.Validate())

		dto.Weight = 101
		assert.Error(t, dto.Validate())

		dto.Weight = 1
		assert.NoError(t, dto.Validate())

		dto.Weight = 100
		assert.NoError(t, dto.Validate())
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		dto := valid()
		dto.Status = Status("Paused")
		assert.Error(t, dto.Validate())
	})

	t.Run("MissingDueDate", func(t *testing.T) {
		dto := valid()
		dto.DueDate = util.DateOnly{}
		assert.ErrorIs(t, dto.Validate(), ErrDueDateRequired)
	})
}

func TestUpdateObjectiveDTOValidate(t *testing.T) {
	t.Run("EmptyIsValid", func(t *testing.T) {
		assert.NoError(t, UpdateObjectiveDTO{}.Validate())
	})

	t.Run("ShortTitlePointer", func(t *testing.T) {
		title := "abc"
		assert.Error(t, UpdateObjectiveDTO{Title: &title}.Validate())
	})

	t.Run("BadStatusPointer", func(t *testing.T) {
		status := Status("Done")
		assert.Error(t, UpdateObjectiveDTO{Status: &status}.Validate())
	})
}

func TestProgressUpdateDTOValidate(t *testing.T) {
	t.Run("ZeroProgressIsValid", func(t *testing.T) {
		dto := ProgressUpdateDTO{Progress: 0, Status: StatusDelayed}
		assert.NoError(t, dto.Validate())
	})

	t.Run("FullProgressIsValid", func(t *testing.T) {
		dto := ProgressUpdateDTO{Progress: 100, Status: StatusCompleted}
		assert.NoError(t, dto.Validate())
	})

	t.Run("NegativeProgress", func(t *testing.T) {
		dto := ProgressUpdateDTO{Progress: -1, Status: StatusOnTrack}
		assert.Error(t, dto.Validate())
	})

	t.Run("OverfullProgress", func(t *testing.T) {
		dto := ProgressUpdateDTO{Progress: 101, Status: StatusOnTrack}
		assert.Error(t, dto.Validate())
	})

	t.Run("MissingStatus", func(t *testing.T) {
		dto := ProgressUpdateDTO{Progress: 10}
		assert.Error(t, dto.Validate())
	})
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusOnTrack, StatusAtRisk, StatusDelayed, StatusCompleted} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("Blocked").Valid())
	assert.False(t, Status("").Valid())
}
