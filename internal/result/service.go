package result

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/saulo-duarte/testseries-lambda/internal/user"
	"github.com/sirupsen/logrus"
)

var (
	ErrResultNotFound = errors.New("result not found")
	ErrSeriesNotFound = series.ErrSeriesNotFound
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("access denied")
	ErrInvalidID      = errors.New("invalid id format")
)

// SeriesReader is the part of the series store results depend on.
type SeriesReader interface {
	GetByID(id uuid.UUID) (*series.Series, error)
	GetByIDs(ids []uuid.UUID) (map[uuid.UUID]*series.Series, error)
}

type ResultService interface {
	CreateResult(ctx context.Context, dto CreateResultDTO) (*ResultResponse, error)
	ListMyResults(ctx context.Context) ([]*ResultResponse, error)
	GetResult(ctx context.Context, id string) (*ResultResponse, error)
	DeleteResult(ctx context.Context, id string) error
	ListCreatorResults(ctx context.Context) ([]*ResultResponse, error)
}

type resultService struct {
	repo       ResultRepository
	seriesRepo SeriesReader
	userRepo   user.UserRepository
}

func NewService(repo ResultRepository, seriesRepo SeriesReader, userRepo user.UserRepository) ResultService {
	return &resultService{
		repo:       repo,
		seriesRepo: seriesRepo,
		userRepo:   userRepo,
	}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Tentativa de %s sem autenticação", action)
		return uuid.Nil, ErrUnauthorized
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warnf("Token com user id inválido ao %s", action)
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

func parseUUID(log logrus.FieldLogger, id string, entityName string) (uuid.UUID, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warnf("ID de %s inválido", entityName)
		return uuid.Nil, ErrInvalidID
	}
	return parsedID, nil
}

func (s *resultService) CreateResult(ctx context.Context, dto CreateResultDTO) (*ResultResponse, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "enviar resultado")
	if err != nil {
		return nil, err
	}
	if err := config.Validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Dados inválidos para enviar resultado")
		return nil, err
	}

	seriesID := uuid.MustParse(dto.SeriesID)
	log = log.WithField("series_id", seriesID)

	sr, err := s.seriesRepo.GetByID(seriesID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar série para correção")
		return nil, fmt.Errorf("load series: %w", err)
	}
	if sr == nil {
		log.Warn("Resultado enviado para série inexistente")
		return nil, ErrSeriesNotFound
	}

	timeTaken := *dto.TimeTaken
	if limit := sr.TimerSeconds(); limit > 0 && timeTaken > limit {
		log.WithFields(logrus.Fields{
			"time_taken": timeTaken,
			"limit":      limit,
		}).Warn("Tempo gasto excede o cronômetro da série")
	}

	outcome := Score(sr.Questions, dto.Answers)

	now := time.Now()
	res := &Result{
		ID:        uuid.New(),
		UserID:    userID,
		SeriesID:  sr.ID,
		TimeTaken: timeTaken,
		Feedback:  dto.Feedback,
		CreatedAt: now,
		UpdatedAt: now,
	}
	outcome.apply(res)

	if err := s.repo.Create(res); err != nil {
		log.WithError(err).Error("Erro ao salvar resultado")
		return nil, fmt.Errorf("create result: %w", err)
	}

	log.WithFields(logrus.Fields{
		"result_id":  res.ID,
		"correct":    res.CorrectCount,
		"total":      outcome.Total,
		"percentage": res.Percentage,
	}).Info("Resultado criado com sucesso")
	return toResponse(res, sr, nil), nil
}

func (s *resultService) ListMyResults(ctx context.Context) ([]*ResultResponse, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "listar próprios resultados")
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar resultados do usuário")
		return nil, fmt.Errorf("list results: %w", err)
	}

	seriesByID := s.seriesFor(log, list)
	out := make([]*ResultResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toResponse(r, seriesByID[r.SeriesID], nil))
	}
	return out, nil
}

func (s *resultService) ListCreatorResults(ctx context.Context) ([]*ResultResponse, error) {
	log := config.WithContext(ctx)

	creatorID, err := getUserIDFromContext(ctx, log, "listar resultados das séries")
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListBySeriesCreator(creatorID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar resultados das séries do criador")
		return nil, fmt.Errorf("list creator results: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(list))
	for _, r := range list {
		userIDs = append(userIDs, r.UserID)
	}
	users, err := s.userRepo.GetByIDs(userIDs)
	if err != nil {
		log.WithError(err).Warn("Erro ao buscar donos dos resultados")
		users = nil
	}

	seriesByID := s.seriesFor(log, list)
	out := make([]*ResultResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toResponse(r, seriesByID[r.SeriesID], users[r.UserID]))
	}
	return out, nil
}

func (s *resultService) GetResult(ctx context.Context, id string) (*ResultResponse, error) {
	log := config.WithContext(ctx)

	res, sr, err := s.loadAccessible(ctx, log, id, "ler resultado")
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(res.UserID)
	if err != nil {
		log.WithError(err).Warn("Erro ao buscar dono do resultado")
		owner = nil
	}
	return toResponse(res, sr, owner), nil
}

func (s *resultService) DeleteResult(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	res, _, err := s.loadAccessible(ctx, log, id, "deletar resultado")
	if err != nil {
		return err
	}

	if err := s.repo.Delete(res.ID); err != nil {
		log.WithError(err).Error("Erro ao deletar resultado")
		return fmt.Errorf("delete result: %w", err)
	}

	log.WithField("result_id", res.ID).Info("Resultado deletado com sucesso")
	return nil
}

// loadAccessible applies the owner-or-series-creator rule shared by read and delete.
func (s *resultService) loadAccessible(ctx context.Context, log logrus.FieldLogger, id, action string) (*Result, *series.Series, error) {
	callerID, err := getUserIDFromContext(ctx, log, action)
	if err != nil {
		return nil, nil, err
	}
	resultID, err := parseUUID(log, id, "resultado")
	if err != nil {
		return nil, nil, err
	}

	res, err := s.repo.GetByID(resultID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar resultado")
		return nil, nil, fmt.Errorf("get result: %w", err)
	}
	if res == nil {
		return nil, nil, ErrResultNotFound
	}

	sr, err := s.seriesRepo.GetByID(res.SeriesID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar série do resultado")
		return nil, nil, fmt.Errorf("get series: %w", err)
	}

	if !CanAccess(callerID, res, sr) {
		log.WithField("result_id", res.ID).Warnf("Acesso negado ao %s", action)
		return nil, nil, ErrForbidden
	}
	return res, sr, nil
}

func (s *resultService) seriesFor(log logrus.FieldLogger, list []*Result) map[uuid.UUID]*series.Series {
	ids := make([]uuid.UUID, 0, len(list))
	seen := make(map[uuid.UUID]bool, len(list))
	for _, r := range list {
		if !seen[r.SeriesID] {
			seen[r.SeriesID] = true
			ids = append(ids, r.SeriesID)
		}
	}

	byID, err := s.seriesRepo.GetByIDs(ids)
	if err != nil {
		log.WithError(err).Warn("Erro ao buscar resumos das séries")
		return map[uuid.UUID]*series.Series{}
	}
	return byID
}
