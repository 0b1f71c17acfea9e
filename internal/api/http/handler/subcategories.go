package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/validate"
)

// SubcategoryService defines the operations behind the job detail type routes.
type SubcategoryService interface {
	Create(ctx context.Context, actor model.SessionUser, req model.NewSubcategory) (model.Subcategory, error)
	List(ctx context.Context) ([]model.Subcategory, error)
	Page(ctx context.Context, query model.PageQuery) (model.Page[model.Subcategory], error)
	Get(ctx context.Context, id int64) (model.Subcategory, error)
	Update(ctx context.Context, actor model.SessionUser, id int64, upd model.SubcategoryUpdate) (model.Subcategory, error)
	Delete(ctx context.Context, actor model.SessionUser, id int64) error
	UploadImage(ctx context.Context, actor model.SessionUser, id int64, upload model.Upload) (model.Subcategory, error)
}

// Subcategories handles the /api/chi-tiet-loai-cong-viec routes.
type Subcategories struct {
	subcategories  SubcategoryService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewSubcategories(subcategories SubcategoryService, contextManager model.ContextManager, logger *logger.Logger) *Subcategories {
	return &Subcategories{
		subcategories:  subcategories,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create handles POST /api/chi-tiet-loai-cong-viec and
// POST /api/chi-tiet-loai-cong-viec/them-nhom-chi-tiet-loai.
func (h *Subcategories) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	var req model.NewSubcategory
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.NewSubcategory(req); err != nil {
		response.Error(w, err)
		return
	}

	sub, err := h.subcategories.Create(r.Context(), actor, req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "Job detail type created successfully", sub)
}

// List handles GET /api/chi-tiet-loai-cong-viec.
func (h *Subcategories) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subcategories.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get job detail types successfully", subs)
}

// Paginate handles GET /api/chi-tiet-loai-cong-viec/phan-trang-tim-kiem.
func (h *Subcategories) Paginate(w http.ResponseWriter, r *http.Request) {
	query, err := pageQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	result, err := h.subcategories.Page(r.Context(), query)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get job detail types with pagination successfully", result)
}

// Get handles GET /api/chi-tiet-loai-cong-viec/{id}.
func (h *Subcategories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	sub, err := h.subcategories.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get job detail type successfully", sub)
}

// Update handles PUT /api/chi-tiet-loai-cong-viec/{id} and
// PUT /api/chi-tiet-loai-cong-viec/sua-nhom-chi-tiet-loai/{id}.
func (h *Subcategories) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var upd model.SubcategoryUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.SubcategoryUpdate(upd); err != nil {
		response.Error(w, err)
		return
	}

	sub, err := h.subcategories.Update(r.Context(), actor, id, upd)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Job detail type updated successfully", sub)
}

// Delete handles DELETE /api/chi-tiet-loai-cong-viec/{id}.
func (h *Subcategories) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.subcategories.Delete(r.Context(), actor, id); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Job detail type deleted successfully", nil)
}

// UploadImage handles POST /api/chi-tiet-loai-cong-viec/upload-hinh-nhom-loai-cong-viec/{id}.
func (h *Subcategories) UploadImage(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	upload, file, err := readImage(w, r)
	if err != nil {
		response.Error(w, err)
		return
	}
	defer file.Close()

	sub, err := h.subcategories.UploadImage(r.Context(), actor, id, upload)
	if err != nil {
		h.logger.Warn("Subcategories handler: image upload failed",
			"subcategory_id", id,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	response.OK(w, "Image uploaded successfully", sub)
}
