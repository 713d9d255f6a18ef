package objective

import "gorm.io/gorm"

type ObjectiveContainer struct {
	Handler *Handler
	Service ObjectiveService
	Repo    ObjectiveRepository
}

func NewObjectiveContainer(db *gorm.DB) *ObjectiveContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ObjectiveContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
