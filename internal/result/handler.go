package result

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service ResultService
}

func NewHandler(s ResultService) *Handler {
	return &Handler{service: s}
}

func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	if fields := config.ValidationFields(err); fields != nil {
		config.JSONValidationError(w, fields)
		return
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, ErrInvalidID):
		config.JSONError(w, http.StatusBadRequest, "invalid id")
	case errors.Is(err, ErrSeriesNotFound):
		config.JSONError(w, http.StatusNotFound, "series not found")
	case errors.Is(err, ErrResultNotFound):
		config.JSONError(w, http.StatusNotFound, "result not found")
	case errors.Is(err, ErrForbidden):
		config.JSONError(w, http.StatusForbidden, "access denied")
	default:
		log.WithError(err).Error("Erro ao processar requisição de resultado")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

// CreateResult godoc
// @Summary  Submit answers for grading
// @Tags     results
// @Accept   json
// @Produce  json
// @Param    submission body CreateResultDTO true "Answers keyed by question id"
// @Success  201 {object} ResultResponse
// @Router   /results [post]
func (h *Handler) CreateResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateResultDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para resultado")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.CreateResult(r.Context(), dto)
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) ListMyResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	list, err := h.service.ListMyResults(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, list)
}

func (h *Handler) ListCreatorResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	list, err := h.service.ListCreatorResults(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, list)
}

// GetResult godoc
// @Summary  Get one result (owner or series creator)
// @Tags     results
// @Produce  json
// @Param    id path string true "Result ID"
// @Success  200 {object} ResultResponse
// @Failure  403 {object} config.ErrorResponse
// @Router   /results/{id} [get]
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.GetResult(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteResult(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "result deleted successfully",
	})
}
