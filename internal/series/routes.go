package series

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListSeries)
	r.Get("/{id}", h.GetSeries)
	r.With(auth.RequireRole(auth.RoleTeacher)).Post("/", h.CreateSeries)
	r.Put("/{id}", h.UpdateSeries)
	r.Delete("/{id}", h.DeleteSeries)

	r.Post("/{id}/questions", h.AddQuestion)
	r.Put("/{id}/questions/{questionID}", h.UpdateQuestion)
	r.Delete("/{id}/questions/{questionID}", h.DeleteQuestion)
	return r
}
