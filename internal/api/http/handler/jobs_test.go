package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apicontext "github.com/dtroode/jobmarket-server/internal/api/context"
	"github.com/dtroode/jobmarket-server/internal/mocks"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/testutil"
)

func newTestJobs(t *testing.T) (*Jobs, *mocks.JobService) {
	t.Helper()
	svc := mocks.NewJobService(t)
	return NewJobs(svc, apicontext.NewManager(), testutil.MakeNoopLogger()), svc
}

func TestJobs_Create(t *testing.T) {
	t.Parallel()

	t.Run("signed in user publishes", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestJobs(t)
		svc.On("Create", mock.Anything, testUser, mock.MatchedBy(func(req model.NewJob) bool {
			return req.Title == "Logo design" && req.Price != nil && *req.Price == 100 && req.SubcategoryID == 10
		})).Return(model.Job{ID: 3, Title: "Logo design", CreatorID: testutil.Ptr(testUser.ID)}, nil).Once()

		rec := httptest.NewRecorder()
		h.Create(rec, asUser(jsonRequest(t, http.MethodPost, "/api/cong-viec", map[string]any{
			"tenCongViec": "Logo design", "giaTien": 100, "maChiTietLoai": 10,
		}), testUser))

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Job created successfully", env.Message)
		assert.Contains(t, string(env.Content), `"nguoiTao":2`)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestJobs(t)

		rec := httptest.NewRecorder()
		h.Create(rec, asUser(jsonRequest(t, http.MethodPost, "/api/cong-viec", map[string]any{
			"giaTien": -1,
		}), testUser))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		details := decodeEnvelope(t, rec).Error.Details
		assert.Equal(t, "is required", details["tenCongViec"])
		assert.Equal(t, "must be at least 0", details["giaTien"])
		assert.Equal(t, "is required", details["maChiTietLoai"])
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestJobs(t)

		rec := httptest.NewRecorder()
		h.Create(rec, jsonRequest(t, http.MethodPost, "/api/cong-viec", map[string]any{}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJobs_Reads(t *testing.T) {
	t.Parallel()

	h, svc := newTestJobs(t)
	svc.On("List", mock.Anything).Return([]model.Job{{ID: 3}}, nil).Once()
	svc.On("Page", mock.Anything, model.PageQuery{Page: 1, PageSize: 3, Keyword: "logo"}).
		Return(model.Page[model.Job]{Data: []model.Job{{ID: 3}}, Total: 1, Page: 1, PageSize: 3, TotalPages: 1}, nil).Once()
	svc.On("Get", mock.Anything, int64(3)).
		Return(model.Job{ID: 3, Comments: []model.Comment{{ID: 7, Content: "Great"}}}, nil).Twice()

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/cong-viec", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get jobs successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.Paginate(rec, httptest.NewRequest(http.MethodGet, "/api/cong-viec/phan-trang-tim-kiem?pageSize=3&keyword=logo", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Get(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/cong-viec/3", nil), "id", "3"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get job successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.Detail(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/cong-viec/lay-cong-viec-chi-tiet/3", nil), "id", "3"))
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Get job detail successfully", env.Message)
	assert.Contains(t, string(env.Content), `"binhLuans":[`)
}

func TestJobs_Paginate_BadPage(t *testing.T) {
	t.Parallel()

	h, _ := newTestJobs(t)

	rec := httptest.NewRecorder()
	h.Paginate(rec, httptest.NewRequest(http.MethodGet, "/api/cong-viec/phan-trang-tim-kiem?page=x", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must be a number", decodeEnvelope(t, rec).Error.Details["page"])
}

func TestJobs_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	h, svc := newTestJobs(t)
	svc.On("Update", mock.Anything, testUser, int64(3), mock.MatchedBy(func(u model.JobUpdate) bool {
		return u.Price != nil && *u.Price == 250 && u.Title == nil
	})).Return(model.Job{ID: 3, Price: 250}, nil).Once()
	svc.On("Update", mock.Anything, testUser, int64(4), mock.Anything).Return(model.Job{}, model.ErrForbidden).Once()
	svc.On("Delete", mock.Anything, testUser, int64(3)).Return(nil).Once()

	rec := httptest.NewRecorder()
	h.Update(rec, withURLParam(asUser(jsonRequest(t, http.MethodPut, "/api/cong-viec/3",
		map[string]any{"giaTien": 250}), testUser), "id", "3"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job updated successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.Update(rec, withURLParam(asUser(jsonRequest(t, http.MethodPut, "/api/cong-viec/4",
		map[string]any{"giaTien": 250}), testUser), "id", "4"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.Delete(rec, withURLParam(asUser(httptest.NewRequest(http.MethodDelete, "/api/cong-viec/3", nil), testUser), "id", "3"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job deleted successfully", decodeEnvelope(t, rec).Message)
}

func TestJobs_UploadImage(t *testing.T) {
	t.Parallel()

	t.Run("uploads", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestJobs(t)
		svc.On("UploadImage", mock.Anything, testUser, int64(3), mock.MatchedBy(func(u model.Upload) bool {
			return u.ContentType == "image/png" && u.Filename == "me.png"
		})).Return(model.Job{ID: 3, Image: testutil.Ptr("http://cdn/jobs/3/a.png")}, nil).Once()

		rec := httptest.NewRecorder()
		h.UploadImage(rec, withURLParam(asUser(multipartAvatar(t, "file", "image/png", []byte("png")), testUser), "id", "3"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Image uploaded successfully", decodeEnvelope(t, rec).Message)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestJobs(t)

		rec := httptest.NewRecorder()
		h.UploadImage(rec, withURLParam(asUser(multipartAvatar(t, "image", "image/png", []byte("png")), testUser), "id", "3"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "is required", decodeEnvelope(t, rec).Error.Details["file"])
	})
}

func TestJobs_CatalogViews(t *testing.T) {
	t.Parallel()

	h, svc := newTestJobs(t)
	svc.On("Menu", mock.Anything).Return([]model.Category{{ID: 1, Name: "Design"}}, nil).Once()
	svc.On("SubcategoriesOf", mock.Anything, int64(1)).
		Return([]model.Subcategory{{ID: 10, Name: "Logo", Jobs: []model.Job{{ID: 3}}}}, nil).Once()
	svc.On("BySubcategory", mock.Anything, int64(10)).Return([]model.Job{{ID: 3}}, nil).Once()
	svc.On("Search", mock.Anything, "logo").Return([]model.Job{}, nil).Once()

	rec := httptest.NewRecorder()
	h.Menu(rec, httptest.NewRequest(http.MethodGet, "/api/cong-viec/lay-menu-loai-cong-viec", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get menu job types successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.Subcategories(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/cong-viec/lay-chi-tiet-loai-cong-viec/1", nil), "id", "1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.BySubcategory(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/cong-viec/lay-cong-viec-theo-chi-tiet-loai/10", nil), "id", "10"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Search(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/cong-viec/lay-danh-sach-cong-viec-theo-ten/logo", nil), "name", "logo"))
	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Equal(t, "Search jobs successfully", env.Message)
	assert.JSONEq(t, `[]`, string(env.Content))
}
