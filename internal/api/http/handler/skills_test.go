package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/jobmarket-server/internal/mocks"
)

func TestSkills_List(t *testing.T) {
	t.Parallel()

	t.Run("lists", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewSkillService(t)
		svc.On("List", mock.Anything).Return([]string{"go", "sql"}, nil).Once()

		rec := httptest.NewRecorder()
		NewSkills(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/skill", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Get skills successfully", env.Message)
		assert.JSONEq(t, `["go","sql"]`, string(env.Content))
	})

	t.Run("hides internal errors", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewSkillService(t)
		svc.On("List", mock.Anything).Return(nil, errors.New("conn reset")).Once()

		rec := httptest.NewRecorder()
		NewSkills(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/skill", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "conn reset")
	})
}
