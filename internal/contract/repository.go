package contract

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractRepository interface {
	FindByUserID(userID uuid.UUID) (*Contract, error)
	Create(c *Contract) error
	Update(c *Contract) error
}

type contractRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) FindByUserID(userID uuid.UUID) (*Contract, error) {
	var c Contract
	if err := r.db.First(&c, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contractRepository) Create(c *Contract) error {
	return r.db.Create(c).Error
}

func (r *contractRepository) Update(c *Contract) error {
	return r.db.Save(c).Error
}
