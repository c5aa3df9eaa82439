package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/testseries-lambda/docs"
	"github.com/saulo-duarte/testseries-lambda/internal/aiquiz"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/saulo-duarte/testseries-lambda/internal/middlewares"
	"github.com/saulo-duarte/testseries-lambda/internal/result"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/saulo-duarte/testseries-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler   *user.Handler
	SeriesHandler *series.Handler
	ResultHandler *result.Handler
	AIQuizHandler *aiquiz.Handler
	AuthHandler   *auth.Handler
	CorsOrigins   []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/series", series.Routes(cfg.SeriesHandler))
		r.Mount("/results", result.Routes(cfg.ResultHandler))
		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
	})
	return r
}
