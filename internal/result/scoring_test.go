package result_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/result"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bank(answers ...string) []series.Question {
	qs := make([]series.Question, 0, len(answers))
	for i, a := range answers {
		qs = append(qs, series.Question{
			ID:         uuid.New(),
			Text:       "question " + string(rune('A'+i)),
			Options:    []string{"A", "B", "C", "D"},
			Answer:     a,
			OrderIndex: i,
		})
	}
	return qs
}

func TestScore(t *testing.T) {
	t.Run("ThreeOfFour", func(t *testing.T) {
		qs := bank("A", "B", "C", "D")
		answers := map[string]string{
			qs[0].ID.String(): "A",
			qs[1].ID.String(): "B",
			qs[2].ID.String(): "C",
			qs[3].ID.String(): "A",
		}

		out := result.Score(qs, answers)

		assert.Equal(t, 3, out.CorrectCount)
		assert.Equal(t, 1, out.WrongCount)
		assert.Equal(t, 75.0, out.Percentage)
		require.Len(t, out.Attempted, 4)
		assert.False(t, out.Attempted[3].IsCorrect)
		assert.Equal(t, "A", out.Attempted[3].SelectedOption)
		assert.Equal(t, "D", out.Attempted[3].CorrectOption)
	})

	t.Run("EmptyBank", func(t *testing.T) {
		out := result.Score(nil, map[string]string{"x": "A"})
		assert.Equal(t, 0, out.Total)
		assert.Equal(t, 0.0, out.Percentage)
		assert.Empty(t, out.Attempted)
	})

	t.Run("MissingAnswersAreWrong", func(t *testing.T) {
		qs := bank("A", "B")
		out := result.Score(qs, map[string]string{qs[1].ID.String(): "B"})

		assert.Equal(t, 1, out.CorrectCount)
		assert.Equal(t, 1, out.WrongCount)
		assert.Equal(t, "", out.Attempted[0].SelectedOption)
		assert.False(t, out.Attempted[0].IsCorrect)
	})

	t.Run("ExactMatchOnly", func(t *testing.T) {
		qs := bank("Paris")
		out := result.Score(qs, map[string]string{qs[0].ID.String(): "paris"})
		assert.Equal(t, 0, out.CorrectCount)
	})

	t.Run("UppercaseKeys", func(t *testing.T) {
		qs := bank("C")
		out := result.Score(qs, map[string]string{strings.ToUpper(qs[0].ID.String()): "C"})
		assert.Equal(t, 1, out.CorrectCount)
	})

	t.Run("UntitledQuestion", func(t *testing.T) {
		qs := bank("A")
		qs[0].Text = ""
		out := result.Score(qs, nil)
		assert.Equal(t, "Untitled Question", out.Attempted[0].QuestionText)
	})

	t.Run("BankOrderPreserved", func(t *testing.T) {
		qs := bank("A", "B", "C")
		out := result.Score(qs, nil)
		for i, q := range qs {
			assert.Equal(t, q.Text, out.Attempted[i].QuestionText)
		}
	})

	t.Run("CountsAlwaysAddUp", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		options := []string{"A", "B", "C", "D"}
		for n := 0; n < 50; n++ {
			correct := make([]string, rng.Intn(20))
			for i := range correct {
				correct[i] = options[rng.Intn(4)]
			}
			qs := bank(correct...)
			answers := map[string]string{}
			for _, q := range qs {
				if rng.Intn(5) > 0 {
					answers[q.ID.String()] = options[rng.Intn(4)]
				}
			}

			out := result.Score(qs, answers)
			assert.Equal(t, len(qs), out.CorrectCount+out.WrongCount)
			assert.Equal(t, result.Percentage(out.CorrectCount, len(qs)), out.Percentage)
		}
	})
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		correct, total int
		want           float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{3, 4, 75},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, result.Percentage(c.correct, c.total), "%d/%d", c.correct, c.total)
	}
}
