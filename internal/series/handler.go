package series

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service SeriesService
}

func NewHandler(s SeriesService) *Handler {
	return &Handler{service: s}
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error, action string) {
	if fields := config.ValidationFields(err); fields != nil {
		config.JSONValidationError(w, fields)
		return
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, ErrForbidden):
		config.JSONError(w, http.StatusForbidden, "access denied")
	case errors.Is(err, ErrInvalidID):
		config.JSONError(w, http.StatusBadRequest, "invalid id")
	case errors.Is(err, ErrAnswerNotInOptions):
		config.JSONValidationError(w, map[string]string{"answer": err.Error()})
	case errors.Is(err, ErrSeriesNotFound), errors.Is(err, ErrQuestionNotFound):
		config.JSONError(w, http.StatusNotFound, err.Error())
	default:
		log.WithError(err).Errorf("Erro ao %s", action)
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// CreateSeries godoc
// @Summary  Create a test series
// @Tags     series
// @Accept   json
// @Produce  json
// @Param    series body CreateSeriesDTO true "Series"
// @Success  201 {object} SeriesResponse
// @Router   /series [post]
func (h *Handler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateSeriesDTO
	if !decode(w, r, log, &dto) {
		return
	}

	resp, err := h.service.CreateSeries(r.Context(), dto)
	if err != nil {
		writeError(w, log, err, "criar série")
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) ListSeries(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	list, err := h.service.ListSeries(r.Context())
	if err != nil {
		writeError(w, log, err, "listar séries")
		return
	}

	config.JSON(w, http.StatusOK, list)
}

// GetSeries godoc
// @Summary  Get a series with its question bank
// @Tags     series
// @Produce  json
// @Param    id path string true "Series ID"
// @Success  200 {object} SeriesResponse
// @Router   /series/{id} [get]
func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.GetSeries(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err, "buscar série")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateSeriesDTO
	if !decode(w, r, log, &dto) {
		return
	}

	resp, err := h.service.UpdateSeries(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, log, err, "atualizar série")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteSeries(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err, "deletar série")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "series deleted successfully",
	})
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto QuestionDTO
	if !decode(w, r, log, &dto) {
		return
	}

	q, err := h.service.AddQuestion(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		writeError(w, log, err, "adicionar pergunta")
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "question added successfully",
		"question": q,
	})
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateQuestionDTO
	if !decode(w, r, log, &dto) {
		return
	}

	q, err := h.service.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "questionID"), dto)
	if err != nil {
		writeError(w, log, err, "atualizar pergunta")
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteQuestion(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "questionID")); err != nil {
		writeError(w, log, err, "remover pergunta")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}
