package result

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateResult)
	r.Get("/my", h.ListMyResults)
	r.With(auth.RequireRole(auth.RoleTeacher)).Get("/all", h.ListCreatorResults)
	r.Get("/{id}", h.GetResult)
	r.Delete("/{id}", h.DeleteResult)
	return r
}
