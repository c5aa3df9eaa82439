package result

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
)

const untitledQuestion = "Untitled Question"

type Outcome struct {
	Attempted    []AttemptedQuestion
	Total        int
	CorrectCount int
	WrongCount   int
	Percentage   float64
}

// Score grades answers against the question bank in bank order. A question
// without an answer counts as wrong. It never mutates its inputs.
func Score(questions []series.Question, answers map[string]string) Outcome {
	normalized := normalizeAnswers(answers)

	out := Outcome{
		Attempted: make([]AttemptedQuestion, 0, len(questions)),
		Total:     len(questions),
	}
	for _, q := range questions {
		selected := normalized[q.ID.String()]
		isCorrect := selected != "" && selected == q.Answer

		text := q.Text
		if strings.TrimSpace(text) == "" {
			text = untitledQuestion
		}

		out.Attempted = append(out.Attempted, AttemptedQuestion{
			QuestionText:   text,
			SelectedOption: selected,
			CorrectOption:  q.Answer,
			IsCorrect:      isCorrect,
		})
		if isCorrect {
			out.CorrectCount++
		}
	}

	out.WrongCount = out.Total - out.CorrectCount
	out.Percentage = Percentage(out.CorrectCount, out.Total)
	return out
}

// Percentage is correct/total*100 rounded to two decimals, 0 for an empty bank.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*10000) / 100
}

// normalizeAnswers keys answers by canonical uuid text and drops empty
// selections so they grade like unanswered questions.
func normalizeAnswers(answers map[string]string) map[string]string {
	out := make(map[string]string, len(answers))
	for k, v := range answers {
		if v == "" {
			continue
		}
		if id, err := uuid.Parse(strings.TrimSpace(k)); err == nil {
			out[id.String()] = v
			continue
		}
		out[k] = v
	}
	return out
}

func (o Outcome) apply(r *Result) {
	r.TotalMarks = o.CorrectCount
	r.CorrectCount = o.CorrectCount
	r.WrongCount = o.WrongCount
	r.Percentage = o.Percentage
	r.AttemptedQuestions = o.Attempted
}
