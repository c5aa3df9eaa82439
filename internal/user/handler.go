package user

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
)

type Handler struct {
	repo UserRepository
}

func NewHandler(repo UserRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado")
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Token com user id inválido")
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if u == nil {
		config.JSONError(w, http.StatusNotFound, "user not found")
		return
	}

	config.JSON(w, http.StatusOK, u)
}
