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

func newTestSubcategories(t *testing.T) (*Subcategories, *mocks.SubcategoryService) {
	t.Helper()
	svc := mocks.NewSubcategoryService(t)
	return NewSubcategories(svc, apicontext.NewManager(), testutil.MakeNoopLogger()), svc
}

func TestSubcategories_Create(t *testing.T) {
	t.Parallel()

	t.Run("admin creates", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestSubcategories(t)
		svc.On("Create", mock.Anything, testAdmin, model.NewSubcategory{Name: "Logo", CategoryID: 1}).
			Return(model.Subcategory{ID: 10, Name: "Logo", CategoryID: 1}, nil).Once()

		rec := httptest.NewRecorder()
		h.Create(rec, asUser(jsonRequest(t, http.MethodPost, "/api/chi-tiet-loai-cong-viec/them-nhom-chi-tiet-loai",
			map[string]any{"tenChiTiet": "Logo", "maLoaiCongViec": 1}), testAdmin))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Job detail type created successfully", decodeEnvelope(t, rec).Message)
	})

	t.Run("category id must be positive", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestSubcategories(t)

		rec := httptest.NewRecorder()
		h.Create(rec, asUser(jsonRequest(t, http.MethodPost, "/api/chi-tiet-loai-cong-viec",
			map[string]any{"tenChiTiet": "Logo", "maLoaiCongViec": -1}), testAdmin))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be greater than 0", decodeEnvelope(t, rec).Error.Details["maLoaiCongViec"])
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		h, svc := newTestSubcategories(t)
		svc.On("Create", mock.Anything, testAdmin, mock.Anything).
			Return(model.Subcategory{}, model.NewValidationError("maLoaiCongViec", "does not exist")).Once()

		rec := httptest.NewRecorder()
		h.Create(rec, asUser(jsonRequest(t, http.MethodPost, "/api/chi-tiet-loai-cong-viec",
			map[string]any{"tenChiTiet": "Logo", "maLoaiCongViec": 99}), testAdmin))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "does not exist", decodeEnvelope(t, rec).Error.Details["maLoaiCongViec"])
	})
}

func TestSubcategories_Reads(t *testing.T) {
	t.Parallel()

	h, svc := newTestSubcategories(t)
	svc.On("List", mock.Anything).Return([]model.Subcategory{{ID: 10, Name: "Logo"}}, nil).Once()
	svc.On("Page", mock.Anything, model.PageQuery{Page: 1, PageSize: 10}).
		Return(model.Page[model.Subcategory]{Data: []model.Subcategory{}, Page: 1, PageSize: 10}, nil).Once()
	svc.On("Get", mock.Anything, int64(10)).Return(model.Subcategory{ID: 10, Name: "Logo"}, nil).Once()

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/chi-tiet-loai-cong-viec", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Get job detail types successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.Paginate(rec, httptest.NewRequest(http.MethodGet, "/api/chi-tiet-loai-cong-viec/phan-trang-tim-kiem", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Get(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/chi-tiet-loai-cong-viec/10", nil), "id", "10"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Content), `"tenChiTiet":"Logo"`)
}

func TestSubcategories_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	h, svc := newTestSubcategories(t)
	svc.On("Update", mock.Anything, testAdmin, int64(10), mock.MatchedBy(func(u model.SubcategoryUpdate) bool {
		return u.Name != nil && *u.Name == "Logos" && u.CategoryID == nil
	})).Return(model.Subcategory{ID: 10, Name: "Logos"}, nil).Once()
	svc.On("Delete", mock.Anything, testAdmin, int64(10)).Return(nil).Once()

	rec := httptest.NewRecorder()
	h.Update(rec, withURLParam(asUser(jsonRequest(t, http.MethodPut, "/api/chi-tiet-loai-cong-viec/sua-nhom-chi-tiet-loai/10",
		map[string]string{"tenChiTiet": "Logos"}), testAdmin), "id", "10"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job detail type updated successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	h.Delete(rec, withURLParam(asUser(httptest.NewRequest(http.MethodDelete, "/api/chi-tiet-loai-cong-viec/10", nil), testAdmin), "id", "10"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job detail type deleted successfully", decodeEnvelope(t, rec).Message)
}

func TestSubcategories_UploadImage(t *testing.T) {
	t.Parallel()

	h, svc := newTestSubcategories(t)
	svc.On("UploadImage", mock.Anything, testAdmin, int64(10), mock.MatchedBy(func(u model.Upload) bool {
		return u.ContentType == "image/png" && u.Size == 3
	})).Return(model.Subcategory{ID: 10, Image: testutil.Ptr("http://cdn/subcategories/10/a.png")}, nil).Once()

	rec := httptest.NewRecorder()
	h.UploadImage(rec, withURLParam(asUser(multipartAvatar(t, "file", "image/png", []byte("png")), testAdmin), "id", "10"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Content), "http://cdn/subcategories/10/a.png")
}
