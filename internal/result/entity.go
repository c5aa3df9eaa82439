package result

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttemptedQuestion struct {
	QuestionText   string `json:"question_text"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
}

// Result references its user and series by id only; either may be deleted later.
type Result struct {
	ID                 uuid.UUID                              `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID                              `gorm:"type:uuid;not null;index" json:"user_id"`
	SeriesID           uuid.UUID                              `gorm:"type:uuid;not null;index" json:"series_id"`
	TotalMarks         int                                    `gorm:"not null;default:0" json:"total_marks"`
	CorrectCount       int                                    `gorm:"not null;default:0" json:"correct_count"`
	WrongCount         int                                    `gorm:"not null;default:0" json:"wrong_count"`
	Percentage         float64                                `gorm:"not null;default:0" json:"percentage"`
	TimeTaken          int                                    `gorm:"not null;default:0" json:"time_taken"`
	Feedback           string                                 `gorm:"type:text" json:"feedback"`
	AttemptedQuestions datatypes.JSONSlice[AttemptedQuestion] `gorm:"type:jsonb;not null" json:"attempted_questions"`
	CreatedAt          time.Time                              `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt          time.Time                              `gorm:"autoUpdateTime" json:"updated_at"`
}
