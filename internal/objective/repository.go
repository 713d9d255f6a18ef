package objective

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Sortable listing columns. Anything else falls back to creation time.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"due_date":   "due_date",
	"weight":     "weight",
	"progress":   "progress",
	"title":      "title",
	"status":     "status",
}

type ObjectiveRepository interface {
	Create(o *Objective) error
	ListByUser(userID uuid.UUID, f Filters) ([]*Objective, error)
	FindByIDAndUserID(id, userID uuid.UUID) (*Objective, error)
	Update(o *Objective) error
	Delete(id, userID uuid.UUID) error

	CreateProgressUpdate(pu *ProgressUpdate) error
	ListProgressUpdates(objectiveID uuid.UUID) ([]*ProgressUpdate, error)
}

type objectiveRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ObjectiveRepository {
	return &objectiveRepository{db: db}
}

func (r *objectiveRepository) Create(o *Objective) error {
	return r.db.Create(o).Error
}

func (r *objectiveRepository) ListByUser(userID uuid.UUID, f Filters) ([]*Objective, error) {
	q := r.db.Where("user_id = ?", userID)

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.DueAfter != nil {
		q = q.Where("due_date >= ?", f.DueAfter.Time)
	}
	if f.DueBefore != nil {
		q = q.Where("due_date <= ?", f.DueBefore.Time)
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if f.SortOrder == "asc" {
		direction = "ASC"
	}

	var objectives []*Objective
	if err := q.Order(column + " " + direction).Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

func (r *objectiveRepository) FindByIDAndUserID(id, userID uuid.UUID) (*Objective, error) {
	var o Objective
	if err := r.db.First(&o, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *objectiveRepository) Update(o *Objective) error {
	return r.db.Save(o).Error
}

func (r *objectiveRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Objective{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *objectiveRepository) CreateProgressUpdate(pu *ProgressUpdate) error {
	return r.db.Create(pu).Error
}

func (r *objectiveRepository) ListProgressUpdates(objectiveID uuid.UUID) ([]*ProgressUpdate, error) {
	var updates []*ProgressUpdate
	if err := r.db.
		Where("objective_id = ?", objectiveID).
		Order("created_at DESC").
		Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}
