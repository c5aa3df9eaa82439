package series

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/saulo-duarte/testseries-lambda/internal/user"
	"github.com/sirupsen/logrus"
)

var (
	ErrSeriesNotFound     = errors.New("series not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidID          = errors.New("invalid id format")
	ErrAnswerNotInOptions = errors.New("answer must match one of the options")
)

type SeriesService interface {
	CreateSeries(ctx context.Context, dto CreateSeriesDTO) (*SeriesResponse, error)
	ListSeries(ctx context.Context) ([]*SeriesResponse, error)
	GetSeries(ctx context.Context, id string) (*SeriesResponse, error)
	UpdateSeries(ctx context.Context, id string, dto UpdateSeriesDTO) (*SeriesResponse, error)
	DeleteSeries(ctx context.Context, id string) error

	AddQuestion(ctx context.Context, seriesID string, dto QuestionDTO) (*Question, error)
	UpdateQuestion(ctx context.Context, seriesID, questionID string, dto UpdateQuestionDTO) (*Question, error)
	DeleteQuestion(ctx context.Context, seriesID, questionID string) error
}

type seriesService struct {
	repo     SeriesRepository
	userRepo user.UserRepository
}

func NewService(repo SeriesRepository, userRepo user.UserRepository) SeriesService {
	return &seriesService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func getCallerFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, *auth.Claims, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Tentativa de %s sem autenticação", action)
		return uuid.Nil, nil, ErrUnauthorized
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warnf("Token com user id inválido ao %s", action)
		return uuid.Nil, nil, ErrUnauthorized
	}
	return id, claims, nil
}

func parseUUID(log logrus.FieldLogger, id string, entityName string) (uuid.UUID, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warnf("ID de %s inválido", entityName)
		return uuid.Nil, ErrInvalidID
	}
	return parsedID, nil
}

// loadOwned fetches a series and checks that the caller created it.
func (s *seriesService) loadOwned(log logrus.FieldLogger, seriesID string, callerID uuid.UUID) (*Series, error) {
	id, err := parseUUID(log, seriesID, "série")
	if err != nil {
		return nil, err
	}

	sr, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar série")
		return nil, fmt.Errorf("get series: %w", err)
	}
	if sr == nil {
		log.WithField("series_id", seriesID).Warn("Série não encontrada")
		return nil, ErrSeriesNotFound
	}
	if !sr.IsCreator(callerID) {
		log.WithFields(logrus.Fields{
			"series_id":  seriesID,
			"creator_id": sr.CreatorID,
		}).Warn("Usuário não é o criador da série")
		return nil, ErrForbidden
	}
	return sr, nil
}

func (s *seriesService) creator(log logrus.FieldLogger, id uuid.UUID) *user.User {
	u, err := s.userRepo.GetByID(id)
	if err != nil {
		log.WithError(err).Warn("Erro ao buscar criador da série")
		return nil
	}
	return u
}

func newQuestion(seriesID uuid.UUID, dto QuestionDTO, order int) Question {
	return Question{
		ID:         uuid.New(),
		SeriesID:   seriesID,
		Text:       dto.Text,
		Options:    append([]string(nil), dto.Options...),
		Answer:     dto.Answer,
		Image:      dto.Image,
		OrderIndex: order,
	}
}

func (s *seriesService) CreateSeries(ctx context.Context, dto CreateSeriesDTO) (*SeriesResponse, error) {
	log := config.WithContext(ctx)
	log.Info("Criando nova série...")

	callerID, claims, err := getCallerFromContext(ctx, log, "criar série")
	if err != nil {
		return nil, err
	}
	if claims.Role != auth.RoleTeacher {
		log.WithField("role", claims.Role).Warn("Apenas professores podem criar séries")
		return nil, ErrForbidden
	}

	if err := config.Validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Dados inválidos para criar série")
		return nil, err
	}

	sr := &Series{
		ID:          uuid.New(),
		Title:       dto.Title,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
		Timer:       dto.Timer,
		CreatorID:   callerID,
		SolutionVideo: SolutionVideo{
			IsYouTube: true,
		},
	}
	if dto.SolutionVideo != nil {
		sr.SolutionVideo.URL = dto.SolutionVideo.URL
		if dto.SolutionVideo.IsYouTube != nil {
			sr.SolutionVideo.IsYouTube = *dto.SolutionVideo.IsYouTube
		}
	}
	for i, q := range dto.Questions {
		sr.Questions = append(sr.Questions, newQuestion(sr.ID, q, i))
	}

	if err := s.repo.Create(sr); err != nil {
		log.WithError(err).Error("Erro ao criar série")
		return nil, fmt.Errorf("create series: %w", err)
	}

	log.WithField("series_id", sr.ID).Info("Série criada com sucesso")
	return toResponse(sr, s.creator(log, callerID), true), nil
}

func (s *seriesService) ListSeries(ctx context.Context) ([]*SeriesResponse, error) {
	log := config.WithContext(ctx)
	log.Info("Listando séries...")

	list, err := s.repo.List()
	if err != nil {
		log.WithError(err).Error("Erro ao listar séries")
		return nil, fmt.Errorf("list series: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(list))
	for _, sr := range list {
		ids = append(ids, sr.CreatorID)
	}
	creators, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		log.WithError(err).Warn("Erro ao buscar criadores das séries")
		creators = nil
	}

	out := make([]*SeriesResponse, 0, len(list))
	for _, sr := range list {
		out = append(out, toResponse(sr, creators[sr.CreatorID], false))
	}
	return out, nil
}

func (s *seriesService) GetSeries(ctx context.Context, id string) (*SeriesResponse, error) {
	log := config.WithContext(ctx)
	log.WithField("series_id", id).Info("Buscando série...")

	seriesID, err := parseUUID(log, id, "série")
	if err != nil {
		return nil, err
	}

	sr, err := s.repo.GetByID(seriesID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar série")
		return nil, fmt.Errorf("get series: %w", err)
	}
	if sr == nil {
		return nil, ErrSeriesNotFound
	}

	return toResponse(sr, s.creator(log, sr.CreatorID), true), nil
}

func (s *seriesService) UpdateSeries(ctx context.Context, id string, dto UpdateSeriesDTO) (*SeriesResponse, error) {
	log := config.WithContext(ctx)
	log.WithField("series_id", id).Info("Atualizando série...")

	callerID, _, err := getCallerFromContext(ctx, log, "atualizar série")
	if err != nil {
		return nil, err
	}
	if err := config.Validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Dados inválidos para atualizar série")
		return nil, err
	}

	sr, err := s.loadOwned(log, id, callerID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		sr.Title = *dto.Title
	}
	if dto.Description != nil {
		sr.Description = *dto.Description
	}
	if dto.ImageURL != nil {
		sr.ImageURL = dto.ImageURL
	}
	if dto.Timer != nil {
		sr.Timer = *dto.Timer
	}
	if dto.SolutionVideo != nil {
		sr.SolutionVideo.URL = dto.SolutionVideo.URL
		if dto.SolutionVideo.IsYouTube != nil {
			sr.SolutionVideo.IsYouTube = *dto.SolutionVideo.IsYouTube
		}
	}

	if err := s.repo.Update(sr); err != nil {
		log.WithError(err).Error("Erro ao atualizar série")
		return nil, fmt.Errorf("update series: %w", err)
	}

	log.Info("Série atualizada com sucesso")
	return toResponse(sr, s.creator(log, callerID), true), nil
}

func (s *seriesService) DeleteSeries(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	log.WithField("series_id", id).Info("Deletando série...")

	callerID, _, err := getCallerFromContext(ctx, log, "deletar série")
	if err != nil {
		return err
	}

	sr, err := s.loadOwned(log, id, callerID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(sr.ID); err != nil {
		log.WithError(err).Error("Erro ao deletar série")
		return fmt.Errorf("delete series: %w", err)
	}

	log.Info("Série deletada com sucesso")
	return nil
}

func (s *seriesService) AddQuestion(ctx context.Context, seriesID string, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)
	log.WithField("series_id", seriesID).Info("Adicionando pergunta à série...")

	callerID, _, err := getCallerFromContext(ctx, log, "adicionar pergunta")
	if err != nil {
		return nil, err
	}
	if err := config.Validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Dados inválidos para adicionar pergunta")
		return nil, err
	}

	sr, err := s.loadOwned(log, seriesID, callerID)
	if err != nil {
		return nil, err
	}

	q := newQuestion(sr.ID, dto, sr.nextOrderIndex())
	if err := s.repo.AddQuestion(&q); err != nil {
		log.WithError(err).Error("Erro ao adicionar pergunta")
		return nil, fmt.Errorf("add question: %w", err)
	}

	log.WithField("question_id", q.ID).Info("Pergunta adicionada com sucesso")
	return &q, nil
}

func (s *seriesService) UpdateQuestion(ctx context.Context, seriesID, questionID string, dto UpdateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"series_id":   seriesID,
		"question_id": questionID,
	})
	log.Info("Atualizando pergunta...")

	callerID, _, err := getCallerFromContext(ctx, log, "atualizar pergunta")
	if err != nil {
		return nil, err
	}
	if err := config.Validate.Struct(dto); err != nil {
		log.WithError(err).Warn("Dados inválidos para atualizar pergunta")
		return nil, err
	}

	qID, err := parseUUID(log, questionID, "pergunta")
	if err != nil {
		return nil, err
	}
	sr, err := s.loadOwned(log, seriesID, callerID)
	if err != nil {
		return nil, err
	}

	q := sr.Question(qID)
	if q == nil {
		log.Warn("Pergunta não encontrada na série")
		return nil, ErrQuestionNotFound
	}

	if dto.Text != nil {
		q.Text = *dto.Text
	}
	if len(dto.Options) == OptionsPerQuestion {
		q.Options = append([]string(nil), dto.Options...)
	}
	if dto.Answer != nil {
		q.Answer = *dto.Answer
	}
	if dto.Image != nil {
		q.Image = dto.Image
	}
	if !q.HasOption(q.Answer) {
		log.Warn("Resposta não corresponde a nenhuma alternativa")
		return nil, ErrAnswerNotInOptions
	}

	if err := s.repo.UpdateQuestion(q); err != nil {
		log.WithError(err).Error("Erro ao atualizar pergunta")
		return nil, fmt.Errorf("update question: %w", err)
	}

	log.Info("Pergunta atualizada com sucesso")
	return q, nil
}

func (s *seriesService) DeleteQuestion(ctx context.Context, seriesID, questionID string) error {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"series_id":   seriesID,
		"question_id": questionID,
	})
	log.Info("Removendo pergunta...")

	callerID, _, err := getCallerFromContext(ctx, log, "remover pergunta")
	if err != nil {
		return err
	}

	qID, err := parseUUID(log, questionID, "pergunta")
	if err != nil {
		return err
	}
	sr, err := s.loadOwned(log, seriesID, callerID)
	if err != nil {
		return err
	}
	if sr.Question(qID) == nil {
		log.Warn("Pergunta não encontrada na série")
		return ErrQuestionNotFound
	}

	if err := s.repo.DeleteQuestion(qID); err != nil {
		log.WithError(err).Error("Erro ao remover pergunta")
		return fmt.Errorf("delete question: %w", err)
	}

	log.Info("Pergunta removida com sucesso")
	return nil
}
