package series_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/saulo-duarte/testseries-lambda/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	teacherID = uuid.New()
	otherID   = uuid.New()
	studentID = uuid.New()
)

func ctxAs(id uuid.UUID, role string) context.Context {
	return auth.WithClaims(context.Background(), &auth.Claims{UserID: id.String(), Role: role})
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func question(text, answer string) series.QuestionDTO {
	return series.QuestionDTO{
		Text:    text,
		Options: []string{"A", "B", "C", "D"},
		Answer:  answer,
	}
}

func newService() (series.SeriesService, *memRepo) {
	repo := newMemRepo()
	users := memUsers{teacherID: {ID: teacherID, Name: "Prof", Email: "prof@example.com", Role: auth.RoleTeacher}}
	return series.NewService(repo, users), repo
}

func TestCreateSeries(t *testing.T) {
	svc, _ := newService()

	t.Run("Teacher", func(t *testing.T) {
		resp, err := svc.CreateSeries(ctxAs(teacherID, auth.RoleTeacher), series.CreateSeriesDTO{
			Title:     "Mock Test 1",
			Timer:     10,
			Questions: []series.QuestionDTO{question("2+2?", "B"), question("3+3?", "C")},
		})
		require.NoError(t, err)

		assert.Equal(t, "Mock Test 1", resp.Title)
		assert.Equal(t, teacherID, resp.CreatorID)
		require.NotNil(t, resp.Creator)
		assert.Equal(t, "Prof", resp.Creator.Name)
		assert.True(t, resp.SolutionVideo.IsYouTube)
		require.Len(t, resp.Questions, 2)
		assert.Equal(t, 0, resp.Questions[0].OrderIndex)
		assert.Equal(t, 1, resp.Questions[1].OrderIndex)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		_, err := svc.CreateSeries(ctxAs(studentID, auth.RoleStudent), series.CreateSeriesDTO{Title: "x"})
		assert.ErrorIs(t, err, series.ErrForbidden)
	})

	t.Run("Anonymous", func(t *testing.T) {
		_, err := svc.CreateSeries(context.Background(), series.CreateSeriesDTO{Title: "x"})
		assert.ErrorIs(t, err, series.ErrUnauthorized)
	})

	t.Run("BlankTitle", func(t *testing.T) {
		_, err := svc.CreateSeries(ctxAs(teacherID, auth.RoleTeacher), series.CreateSeriesDTO{Title: "   "})
		fields := config.ValidationFields(err)
		require.NotNil(t, fields)
		assert.Contains(t, fields, "title")
	})

	t.Run("NegativeTimer", func(t *testing.T) {
		_, err := svc.CreateSeries(ctxAs(teacherID, auth.RoleTeacher), series.CreateSeriesDTO{Title: "x", Timer: -5})
		assert.Contains(t, config.ValidationFields(err), "timer")
	})

	t.Run("AnswerOutsideOptions", func(t *testing.T) {
		_, err := svc.CreateSeries(ctxAs(teacherID, auth.RoleTeacher), series.CreateSeriesDTO{
			Title:     "x",
			Questions: []series.QuestionDTO{question("q", "E")},
		})
		fields := config.ValidationFields(err)
		require.NotNil(t, fields)
		assert.Equal(t, "answer must match one of the options", fields["questions[0].answer"])
	})
}

func TestGetSeries(t *testing.T) {
	svc, _ := newService()
	created, err := svc.CreateSeries(ctxAs(teacherID, auth.RoleTeacher), series.CreateSeriesDTO{
		Title:     "Bank",
		Questions: []series.QuestionDTO{question("q1", "A")},
	})
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		got, err := svc.GetSeries(ctxAs(studentID, auth.RoleStudent), created.ID.String())
		require.NoError(t, err)
		require.Len(t, got.Questions, 1)
		assert.Equal(t, "A", got.Questions[0].Answer)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := svc.GetSeries(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, series.ErrSeriesNotFound)
	})

	t.Run("MalformedID", func(t *testing.T) {
		_, err := svc.GetSeries(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, series.ErrInvalidID)
	})
}

func TestUpdateAndDeleteSeries(t *testing.T) {
	svc, repo := newService()
	owner := ctxAs(teacherID, auth.RoleTeacher)
	created, err := svc.CreateSeries(owner, series.CreateSeriesDTO{Title: "Old", Description: "keep", Timer: 5})
	require.NoError(t, err)
	id := created.ID.String()

	t.Run("PartialUpdate", func(t *testing.T) {
		resp, err := svc.UpdateSeries(owner, id, series.UpdateSeriesDTO{Title: strPtr("New")})
		require.NoError(t, err)
		assert.Equal(t, "New", resp.Title)
		assert.Equal(t, "keep", resp.Description)
		assert.Equal(t, 5, resp.Timer)
	})

	t.Run("TimerToZero", func(t *testing.T) {
		resp, err := svc.UpdateSeries(owner, id, series.UpdateSeriesDTO{Timer: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Timer)
	})

	t.Run("BlankTitle", func(t *testing.T) {
		_, err := svc.UpdateSeries(owner, id, series.UpdateSeriesDTO{Title: strPtr("  ")})
		require.Error(t, err)
		assert.Contains(t, config.ValidationFields(err), "title")
	})

	t.Run("NonCreator", func(t *testing.T) {
		_, err := svc.UpdateSeries(ctxAs(otherID, auth.RoleTeacher), id, series.UpdateSeriesDTO{Title: strPtr("Hijack")})
		assert.ErrorIs(t, err, series.ErrForbidden)

		err = svc.DeleteSeries(ctxAs(otherID, auth.RoleTeacher), id)
		assert.ErrorIs(t, err, series.ErrForbidden)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteSeries(owner, id))
		got, _ := repo.GetByID(created.ID)
		assert.Nil(t, got)

		err := svc.DeleteSeries(owner, id)
		assert.ErrorIs(t, err, series.ErrSeriesNotFound)
	})
}

func TestQuestions(t *testing.T) {
	svc, _ := newService()
	owner := ctxAs(teacherID, auth.RoleTeacher)
	created, err := svc.CreateSeries(owner, series.CreateSeriesDTO{Title: "Bank"})
	require.NoError(t, err)
	sid := created.ID.String()

	var qid string

	t.Run("Add", func(t *testing.T) {
		q, err := svc.AddQuestion(owner, sid, question("first", "D"))
		require.NoError(t, err)
		qid = q.ID.String()

		second, err := svc.AddQuestion(owner, sid, question("second", "A"))
		require.NoError(t, err)
		assert.Equal(t, q.OrderIndex+1, second.OrderIndex)
	})

	t.Run("AddWrongOptionCount", func(t *testing.T) {
		_, err := svc.AddQuestion(owner, sid, series.QuestionDTO{Text: "q", Options: []string{"A", "B", "C"}, Answer: "A"})
		assert.Contains(t, config.ValidationFields(err), "options")
	})

	t.Run("AddByNonCreator", func(t *testing.T) {
		_, err := svc.AddQuestion(ctxAs(otherID, auth.RoleTeacher), sid, question("q", "A"))
		assert.ErrorIs(t, err, series.ErrForbidden)
	})

	t.Run("UpdateReplacesOptions", func(t *testing.T) {
		q, err := svc.UpdateQuestion(owner, sid, qid, series.UpdateQuestionDTO{
			Options: []string{"w", "x", "y", "z"},
			Answer:  strPtr("z"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"w", "x", "y", "z"}, []string(q.Options))
		assert.Equal(t, "first", q.Text)
	})

	t.Run("UpdateLeavesAnswerOrphaned", func(t *testing.T) {
		_, err := svc.UpdateQuestion(owner, sid, qid, series.UpdateQuestionDTO{
			Options: []string{"a", "b", "c", "d"},
		})
		assert.ErrorIs(t, err, series.ErrAnswerNotInOptions)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		err := svc.DeleteQuestion(owner, sid, uuid.NewString())
		assert.ErrorIs(t, err, series.ErrQuestionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteQuestion(owner, sid, qid))
		got, err := svc.GetSeries(owner, sid)
		require.NoError(t, err)
		require.Len(t, got.Questions, 1)
		assert.Equal(t, "second", got.Questions[0].Text)
	})
}

func TestListSeriesToleratesMissingCreator(t *testing.T) {
	repo := newMemRepo()
	svc := series.NewService(repo, memUsers{})
	_, err := svc.CreateSeries(ctxAs(teacherID, auth.RoleTeacher), series.CreateSeriesDTO{
		Title:     "Orphan",
		Questions: []series.QuestionDTO{question("q", "A")},
	})
	require.NoError(t, err)

	list, err := svc.ListSeries(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Creator)
	assert.Equal(t, 1, list[0].QuestionCount)
	assert.Empty(t, list[0].Questions)
}

var _ user.UserRepository = memUsers{}
