package series

import (
	"github.com/saulo-duarte/testseries-lambda/internal/user"
	"gorm.io/gorm"
)

type SeriesContainer struct {
	Repo    SeriesRepository
	Service SeriesService
	Handler *Handler
}

func NewSeriesContainer(db *gorm.DB, userRepo user.UserRepository) *SeriesContainer {
	repo := NewRepository(db)
	service := NewService(repo, userRepo)
	handler := NewHandler(service)

	return &SeriesContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
