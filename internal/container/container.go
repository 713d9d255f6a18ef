package container

import (
	"context"
	"log"
	"os"

	"github.com/example/perfdash/internal/auth"
	"github.com/example/perfdash/internal/config"
	"github.com/example/perfdash/internal/contract"
	"github.com/example/perfdash/internal/objective"
	"github.com/example/perfdash/internal/profile"
	"github.com/example/perfdash/internal/storage"
	"github.com/example/perfdash/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	ObjectiveContainer *objective.ObjectiveContainer
	ProfileContainer   *profile.ProfileContainer
	ContractContainer  *contract.ContractContainer
}

func New() *Container {
	config.InitLogger()
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	store, err := storage.NewLocalStore(
		config.Getenv("STORAGE_DIR", "./data/storage"),
		config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
	)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	objectiveContainer := objective.NewObjectiveContainer(config.DB)
	profileContainer := profile.NewProfileContainer(config.DB, store)
	contractContainer := contract.NewContractContainer(config.DB, objectiveContainer.Service)

	return &Container{
		UserContainer:      userContainer,
		ObjectiveContainer: objectiveContainer,
		ProfileContainer:   profileContainer,
		ContractContainer:  contractContainer,
	}
}
