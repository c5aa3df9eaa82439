package attempt

import "fmt"

// Question is the client view of a bank entry. The correct answer is never kept.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Image   *string  `json:"image,omitempty"`
}

type Series struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Timer       int        `json:"timer"`
	Questions   []Question `json:"questions"`
}

func (s *Series) TimerSeconds() int {
	if s.Timer <= 0 {
		return 0
	}
	return s.Timer * 60
}

func (s *Series) question(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

type Submission struct {
	SeriesID  string            `json:"series_id"`
	Answers   map[string]string `json:"answers"`
	TimeTaken int               `json:"time_taken"`
	Feedback  string            `json:"feedback,omitempty"`
}

type AttemptedQuestion struct {
	QuestionText   string `json:"question_text"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
}

// Receipt is the graded result returned by the server.
type Receipt struct {
	ID                 string              `json:"id"`
	SeriesID           string              `json:"series_id"`
	TotalMarks         int                 `json:"total_marks"`
	CorrectCount       int                 `json:"correct_count"`
	WrongCount         int                 `json:"wrong_count"`
	Percentage         float64             `json:"percentage"`
	TimeTaken          int                 `json:"time_taken"`
	AttemptedQuestions []AttemptedQuestion `json:"attempted_questions"`
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
