package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/testseries-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		if fields := config.ValidationFields(err); fields != nil {
			config.JSONValidationError(w, fields)
			return
		}
		if errors.Is(err, ErrProviderUnavailable) {
			config.JSONError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		log.WithError(err).Error("Falha ao gerar perguntas")
		config.JSONError(w, http.StatusBadGateway, "failed to generate questions")
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}
