package container

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/testseries-lambda/internal/aiquiz"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/saulo-duarte/testseries-lambda/internal/result"
	"github.com/saulo-duarte/testseries-lambda/internal/router"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/saulo-duarte/testseries-lambda/internal/user"
)

type Container struct {
	Settings        *config.Settings
	UserContainer   *user.UserContainer
	SeriesContainer *series.SeriesContainer
	ResultContainer *result.ResultContainer
	AIQuizContainer *aiquiz.AIQuizContainer
	AuthHandler     *auth.Handler
}

func New() *Container {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	config.Init()
	auth.Init(settings.JWTSecret)

	ctx := context.Background()
	dsn, err := settings.DSN()
	if err != nil {
		log.Fatalf("invalid database config: %v", err)
	}
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if settings.DBAutoMigrate {
		if err := config.Migrate(ctx, &user.User{}, &series.Series{}, &series.Question{}, &result.Result{}); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
	}

	userContainer := user.NewUserContainer(config.DB)
	seriesContainer := series.NewSeriesContainer(config.DB, userContainer.Repo)
	resultContainer := result.NewResultContainer(config.DB, seriesContainer.Repo, userContainer.Repo)
	aiQuizContainer := aiquiz.NewAIQuizContainer(settings.GeminiModel)

	return &Container{
		Settings:        settings,
		UserContainer:   userContainer,
		SeriesContainer: seriesContainer,
		ResultContainer: resultContainer,
		AIQuizContainer: aiQuizContainer,
		AuthHandler:     auth.NewHandler(settings.CookieDomain),
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		UserHandler:   c.UserContainer.Handler,
		SeriesHandler: c.SeriesContainer.Handler,
		ResultHandler: c.ResultContainer.Handler,
		AIQuizHandler: c.AIQuizContainer.Handler,
		AuthHandler:   c.AuthHandler,
		CorsOrigins:   c.Settings.CorsOrigins,
	})
}
