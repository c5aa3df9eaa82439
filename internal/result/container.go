package result

import (
	"github.com/saulo-duarte/testseries-lambda/internal/user"
	"gorm.io/gorm"
)

type ResultContainer struct {
	Repo    ResultRepository
	Service ResultService
	Handler *Handler
}

func NewResultContainer(db *gorm.DB, seriesRepo SeriesReader, userRepo user.UserRepository) *ResultContainer {
	repo := NewRepository(db)
	service := NewService(repo, seriesRepo, userRepo)
	handler := NewHandler(service)

	return &ResultContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
