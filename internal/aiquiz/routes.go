package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.RequireRole(auth.RoleTeacher))
	r.Post("/", h.GenerateQuestions)
	return r
}
