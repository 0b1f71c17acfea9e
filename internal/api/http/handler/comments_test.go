package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apicontext "github.com/dtroode/jobmarket-server/internal/api/context"
	"github.com/dtroode/jobmarket-server/internal/mocks"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/testutil"
)

func newTestComments(t *testing.T) (*Comments, *mocks.CommentService) {
	t.Helper()
	svc := mocks.NewCommentService(t)
	return NewComments(svc, apicontext.NewManager(), testutil.MakeNoopLogger()), svc
}

func TestComments_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantField  string
		wantDetail string
	}{
		{
			name:       "posts",
			body:       map[string]any{"maCongViec": 3, "noiDung": "Great", "saoBinhLuan": 5},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "stars out of range",
			body:       map[string]any{"maCongViec": 3, "noiDung": "Great", "saoBinhLuan": 6},
			wantStatus: http.StatusBadRequest,
			wantField:  "saoBinhLuan",
			wantDetail: "must be at most 5",
		},
		{
			name:       "empty content",
			body:       map[string]any{"maCongViec": 3, "saoBinhLuan": 4},
			wantStatus: http.StatusBadRequest,
			wantField:  "noiDung",
			wantDetail: "is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTestComments(t)
			if tt.wantStatus == http.StatusCreated {
				svc.On("Create", mock.Anything, testUser, model.NewComment{JobID: 3, Content: "Great", Stars: 5}).
					Return(model.Comment{ID: 6, JobID: 3, CommenterID: testUser.ID}, nil).Once()
			}

			rec := httptest.NewRecorder()
			h.Create(rec, asUser(jsonRequest(t, http.MethodPost, "/api/binh-luan", tt.body), testUser))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantField != "" {
				assert.Equal(t, tt.wantDetail, env.Error.Details[tt.wantField])
				return
			}
			assert.Equal(t, "Comment created successfully", env.Message)
		})
	}
}

func TestComments_Reads(t *testing.T) {
	t.Parallel()

	h, svc := newTestComments(t)
	svc.On("List", mock.Anything).Return([]model.Comment{{ID: 6}}, nil).Once()
	svc.On("ListByJob", mock.Anything, int64(3)).Return([]model.Comment{{ID: 6, JobID: 3}}, nil).Once()
	svc.On("Get", mock.Anything, int64(6)).Return(model.Comment{ID: 6, Content: "Great"}, nil).Once()

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/binh-luan", nil))
	assert.Equal(t, "Get comments successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.ByJob(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/binh-luan/lay-binh-luan-theo-cong-viec/3", nil), "id", "3"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get comments by job successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.Get(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/binh-luan/6", nil), "id", "6"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Content), `"noiDung":"Great"`)
}

func TestComments_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	h, svc := newTestComments(t)
	svc.On("Update", mock.Anything, testUser, int64(6), mock.MatchedBy(func(u model.CommentUpdate) bool {
		return u.Stars != nil && *u.Stars == 3 && u.Content == nil
	})).Return(model.Comment{ID: 6, Stars: 3}, nil).Once()
	svc.On("Delete", mock.Anything, testUser, int64(6)).Return(model.ErrForbidden).Once()

	rec := httptest.NewRecorder()
	h.Update(rec, withURLParam(asUser(jsonRequest(t, http.MethodPut, "/api/binh-luan/6",
		map[string]any{"saoBinhLuan": 3}), testUser), "id", "6"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Comment updated successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.Delete(rec, withURLParam(asUser(httptest.NewRequest(http.MethodDelete, "/api/binh-luan/6", nil), testUser), "id", "6"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
