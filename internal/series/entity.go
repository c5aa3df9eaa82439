package series

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const OptionsPerQuestion = 4

type SolutionVideo struct {
	URL       string `gorm:"type:text" json:"url"`
	IsYouTube bool   `gorm:"column:is_youtube;not null" json:"is_youtube"`
}

type Series struct {
	ID            uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title         string        `gorm:"type:text;not null" json:"title"`
	Description   string        `gorm:"type:text" json:"description"`
	ImageURL      *string       `gorm:"type:text" json:"image_url,omitempty"`
	SolutionVideo SolutionVideo `gorm:"embedded;embeddedPrefix:solution_video_" json:"solution_video"`
	Timer         int           `gorm:"not null;default:0" json:"timer"`
	CreatorID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"creator_id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE" json:"questions"`
}

type Question struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SeriesID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"series_id"`
	Text       string         `gorm:"type:text;not null" json:"text"`
	Options    pq.StringArray `gorm:"type:text[];not null" json:"options"`
	Answer     string         `gorm:"type:text;not null" json:"answer"`
	Image      *string        `gorm:"type:text" json:"image,omitempty"`
	OrderIndex int            `gorm:"not null" json:"order_index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TimerSeconds is the allotted time in seconds, 0 when untimed.
func (s *Series) TimerSeconds() int {
	return s.Timer * 60
}

func (s *Series) IsCreator(userID uuid.UUID) bool {
	return s.CreatorID == userID
}

func (s *Series) Question(id uuid.UUID) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

func (s *Series) nextOrderIndex() int {
	next := 0
	for _, q := range s.Questions {
		if q.OrderIndex >= next {
			next = q.OrderIndex + 1
		}
	}
	return next
}

func (q *Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
