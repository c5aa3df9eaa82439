package result_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
	"github.com/saulo-duarte/testseries-lambda/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, h http.Handler, method, path string, body interface{}, claims *auth.Claims) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if claims != nil {
		req = req.WithContext(auth.WithClaims(req.Context(), claims))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestResultRoutes(t *testing.T) {
	f := newFixture()
	router := result.Routes(result.NewHandler(f.svc))

	student := &auth.Claims{UserID: f.student.String(), Role: auth.RoleStudent}
	teacher := &auth.Claims{UserID: f.creator.String(), Role: auth.RoleTeacher}
	stranger := &auth.Claims{UserID: f.stranger.String(), Role: auth.RoleStudent}

	var created result.ResultResponse

	t.Run("Create", func(t *testing.T) {
		rec := request(t, router, http.MethodPost, "/", map[string]interface{}{
			"series_id": f.timed.ID.String(),
			"answers": map[string]string{
				f.timed.Questions[0].ID.String(): "A",
				f.timed.Questions[1].ID.String(): "B",
				f.timed.Questions[2].ID.String(): "C",
				f.timed.Questions[3].ID.String(): "C",
			},
			"time_taken": 300,
		}, student)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
		assert.Equal(t, 75.0, created.Percentage)
		assert.Len(t, created.AttemptedQuestions, 4)
	})

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		claims *auth.Claims
		want   int
	}{
		{"CreateMissingAnswers", http.MethodPost, "/", map[string]interface{}{"series_id": f.timed.ID.String(), "time_taken": 1}, student, http.StatusBadRequest},
		{"CreateUnknownSeries", http.MethodPost, "/", map[string]interface{}{"series_id": uuid.NewString(), "answers": map[string]string{}, "time_taken": 1}, student, http.StatusNotFound},
		{"Mine", http.MethodGet, "/my", nil, student, http.StatusOK},
		{"AllAsStudent", http.MethodGet, "/all", nil, student, http.StatusForbidden},
		{"AllAsTeacher", http.MethodGet, "/all", nil, teacher, http.StatusOK},
		{"GetMalformed", http.MethodGet, "/nope", nil, student, http.StatusBadRequest},
		{"GetMissing", http.MethodGet, "/" + uuid.NewString(), nil, student, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := request(t, router, tc.method, tc.path, tc.body, tc.claims)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}

	t.Run("StrangerGetsGenericDenial", func(t *testing.T) {
		rec := request(t, router, http.MethodGet, "/"+created.ID.String(), nil, stranger)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"access denied"}`, rec.Body.String())
	})

	t.Run("OwnerDeletes", func(t *testing.T) {
		rec := request(t, router, http.MethodDelete, "/"+created.ID.String(), nil, student)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = request(t, router, http.MethodGet, "/"+created.ID.String(), nil, student)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
