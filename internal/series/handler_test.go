package series_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/testseries-lambda/internal/auth"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
	"github.com/saulo-duarte/testseries-lambda/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type httpTest struct {
	name   string
	method string
	path   string
	body   interface{}
	claims *auth.Claims
	want   int
}

func (tc httpTest) do(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if tc.body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(tc.body))
	}
	req := httptest.NewRequest(tc.method, tc.path, &buf)
	if tc.claims != nil {
		req = req.WithContext(auth.WithClaims(req.Context(), tc.claims))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSeriesRoutes(t *testing.T) {
	svc, _ := newService()
	router := series.Routes(series.NewHandler(svc))

	teacher := &auth.Claims{UserID: teacherID.String(), Role: auth.RoleTeacher}
	student := &auth.Claims{UserID: studentID.String(), Role: auth.RoleStudent}

	created, err := svc.CreateSeries(ctxAs(teacherID, auth.RoleTeacher), series.CreateSeriesDTO{Title: "Seeded"})
	require.NoError(t, err)
	base := "/" + created.ID.String()

	tests := []httpTest{
		{"CreateAsTeacher", http.MethodPost, "/", map[string]interface{}{"title": "New", "timer": 30}, teacher, http.StatusCreated},
		{"CreateAsStudent", http.MethodPost, "/", map[string]interface{}{"title": "New"}, student, http.StatusForbidden},
		{"CreateWithoutTitle", http.MethodPost, "/", map[string]interface{}{"description": "d"}, teacher, http.StatusBadRequest},
		{"List", http.MethodGet, "/", nil, student, http.StatusOK},
		{"GetMissing", http.MethodGet, "/" + uuid.NewString(), nil, student, http.StatusNotFound},
		{"GetMalformed", http.MethodGet, "/abc", nil, student, http.StatusBadRequest},
		{"UpdateByStudent", http.MethodPut, base, map[string]interface{}{"title": "x"}, student, http.StatusForbidden},
		{"AddQuestion", http.MethodPost, base + "/questions", map[string]interface{}{
			"text": "q", "options": []string{"1", "2", "3", "4"}, "answer": "4",
		}, teacher, http.StatusCreated},
		{"AddQuestionBadAnswer", http.MethodPost, base + "/questions", map[string]interface{}{
			"text": "q", "options": []string{"1", "2", "3", "4"}, "answer": "5",
		}, teacher, http.StatusBadRequest},
		{"DeleteMissingQuestion", http.MethodDelete, base + "/questions/" + uuid.NewString(), nil, teacher, http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := tc.do(t, router)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}

	t.Run("ValidationBody", func(t *testing.T) {
		rec := httpTest{method: http.MethodPost, path: "/", body: map[string]interface{}{"title": ""}, claims: teacher}.do(t, router)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body config.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "validation failed", body.Error)
		assert.Contains(t, body.Fields, "title")
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{"))
		req = req.WithContext(auth.WithClaims(req.Context(), teacher))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
