package contract

import (
	"github.com/example/perfdash/internal/objective"
	"gorm.io/gorm"
)

type ContractContainer struct {
	Handler *Handler
	Service ContractService
}

func NewContractContainer(db *gorm.DB, objectives objective.ObjectiveService) *ContractContainer {
	repo := NewRepository(db)
	service := NewService(repo, objectives)
	handler := NewHandler(service)

	return &ContractContainer{
		Handler: handler,
		Service: service,
	}
}
