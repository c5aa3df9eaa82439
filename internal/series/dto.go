package series

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/saulo-duarte/testseries-lambda/internal/user"
)

const (
	answerInOptionsTag  = "answer_in_options"
	answerInOptionsText = "{0} must match one of the options"
)

func init() {
	config.Validate.RegisterStructValidation(questionStructValidation, QuestionDTO{})
	config.RegisterCustomTranslation(answerInOptionsTag, answerInOptionsText)
}

type SolutionVideoDTO struct {
	URL       string `json:"url" validate:"omitempty,url"`
	IsYouTube *bool  `json:"is_youtube"`
}

type CreateSeriesDTO struct {
	Title         string            `json:"title" validate:"notblank,max=200"`
	Description   string            `json:"description" validate:"max=5000"`
	ImageURL      *string           `json:"image_url" validate:"omitempty,url"`
	Timer         int               `json:"timer" validate:"gte=0,lte=1440"`
	SolutionVideo *SolutionVideoDTO `json:"solution_video"`
	Questions     []QuestionDTO     `json:"questions" validate:"omitempty,dive"`
}

type UpdateSeriesDTO struct {
	Title         *string           `json:"title" validate:"omitnil,notblank,max=200"`
	Description   *string           `json:"description" validate:"omitempty,max=5000"`
	ImageURL      *string           `json:"image_url" validate:"omitempty,url"`
	Timer         *int              `json:"timer" validate:"omitempty,gte=0,lte=1440"`
	SolutionVideo *SolutionVideoDTO `json:"solution_video"`
}

type QuestionDTO struct {
	Text    string   `json:"text" validate:"notblank"`
	Options []string `json:"options" validate:"len=4,dive,notblank"`
	Answer  string   `json:"answer" validate:"notblank"`
	Image   *string  `json:"image"`
}

// UpdateQuestionDTO replaces only the supplied fields. The answer is checked
// against the resulting options in the service.
type UpdateQuestionDTO struct {
	Text    *string  `json:"text" validate:"omitnil,notblank"`
	Options []string `json:"options" validate:"omitempty,len=4,dive,notblank"`
	Answer  *string  `json:"answer" validate:"omitnil,notblank"`
	Image   *string  `json:"image"`
}

type SeriesResponse struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ImageURL      *string       `json:"image_url,omitempty"`
	SolutionVideo SolutionVideo `json:"solution_video"`
	Timer         int           `json:"timer"`
	Creator       *user.Summary `json:"creator"`
	CreatorID     uuid.UUID     `json:"creator_id"`
	QuestionCount int           `json:"question_count"`
	Questions     []Question    `json:"questions,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func toResponse(s *Series, creator *user.User, withQuestions bool) *SeriesResponse {
	resp := &SeriesResponse{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		ImageURL:      s.ImageURL,
		SolutionVideo: s.SolutionVideo,
		Timer:         s.Timer,
		Creator:       creator.Summary(),
		CreatorID:     s.CreatorID,
		QuestionCount: len(s.Questions),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if withQuestions {
		resp.Questions = s.Questions
		if resp.Questions == nil {
			resp.Questions = []Question{}
		}
	}
	return resp
}

func questionStructValidation(sl validator.StructLevel) {
	q, ok := sl.Current().Interface().(QuestionDTO)
	if !ok || q.Answer == "" {
		return
	}
	for _, o := range q.Options {
		if o == q.Answer {
			return
		}
	}
	sl.ReportError(q.Answer, "answer", "Answer", answerInOptionsTag, "")
}
