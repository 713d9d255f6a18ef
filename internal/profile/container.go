package profile

import (
	"github.com/example/perfdash/internal/storage"
	"gorm.io/gorm"
)

type ProfileContainer struct {
	Handler *Handler
	Service ProfileService
	Repo    ProfileRepository
}

func NewProfileContainer(db *gorm.DB, store storage.Store) *ProfileContainer {
	repo := NewRepository(db)
	service := NewService(repo, store)
	handler := NewHandler(service)

	return &ProfileContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
