package profile

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByID(id uuid.UUID) (*Profile, error)
	Upsert(p *Profile) error
	UpdateAvatarURL(id uuid.UUID, url string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(id uuid.UUID) (*Profile, error) {
	var p Profile
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Upsert(p *Profile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(p).Error
}

func (r *profileRepository) UpdateAvatarURL(id uuid.UUID, url string) error {
	return r.db.Model(&Profile{}).Where("id = ?", id).Update("avatar_url", url).Error
}
