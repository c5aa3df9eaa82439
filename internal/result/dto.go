package result

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/saulo-duarte/testseries-lambda/internal/user"
)

type CreateResultDTO struct {
	SeriesID  string            `json:"series_id" validate:"required,uuid"`
	Answers   map[string]string `json:"answers" validate:"required"`
	TimeTaken *int              `json:"time_taken" validate:"required,gte=0"`
	Feedback  string            `json:"feedback" validate:"max=2000"`
}

type SeriesSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatorID   uuid.UUID `json:"creator_id"`
}

type ResultResponse struct {
	ID                 uuid.UUID           `json:"id"`
	UserID             uuid.UUID           `json:"user_id"`
	SeriesID           uuid.UUID           `json:"series_id"`
	TotalMarks         int                 `json:"total_marks"`
	CorrectCount       int                 `json:"correct_count"`
	WrongCount         int                 `json:"wrong_count"`
	Percentage         float64             `json:"percentage"`
	TimeTaken          int                 `json:"time_taken"`
	Feedback           string              `json:"feedback"`
	AttemptedQuestions []AttemptedQuestion `json:"attempted_questions"`
	Series             *SeriesSummary      `json:"series"`
	User               *user.Summary       `json:"user"`
	CreatedAt          time.Time           `json:"created_at"`
}

func summarizeSeries(s *series.Series) *SeriesSummary {
	if s == nil {
		return nil
	}
	return &SeriesSummary{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		CreatorID:   s.CreatorID,
	}
}

func toResponse(r *Result, s *series.Series, u *user.User) *ResultResponse {
	attempted := []AttemptedQuestion(r.AttemptedQuestions)
	if attempted == nil {
		attempted = []AttemptedQuestion{}
	}
	return &ResultResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		SeriesID:           r.SeriesID,
		TotalMarks:         r.TotalMarks,
		CorrectCount:       r.CorrectCount,
		WrongCount:         r.WrongCount,
		Percentage:         r.Percentage,
		TimeTaken:          r.TimeTaken,
		Feedback:           r.Feedback,
		AttemptedQuestions: attempted,
		Series:             summarizeSeries(s),
		User:               u.Summary(),
		CreatedAt:          r.CreatedAt,
	}
}
