package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/validate"
)

// CategoryService defines the operations behind the job type routes.
type CategoryService interface {
	Create(ctx context.Context, actor model.SessionUser, req model.NewCategory) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Page(ctx context.Context, query model.PageQuery) (model.Page[model.Category], error)
	Get(ctx context.Context, id int64) (model.Category, error)
	Update(ctx context.Context, actor model.SessionUser, id int64, upd model.CategoryUpdate) (model.Category, error)
	Delete(ctx context.Context, actor model.SessionUser, id int64) error
}

// Categories handles the /api/loai-cong-viec routes.
type Categories struct {
	categories     CategoryService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewCategories(categories CategoryService, contextManager model.ContextManager, logger *logger.Logger) *Categories {
	return &Categories{
		categories:     categories,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create handles POST /api/loai-cong-viec.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	var req model.NewCategory
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.NewCategory(req); err != nil {
		response.Error(w, err)
		return
	}

	category, err := h.categories.Create(r.Context(), actor, req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "Job type created successfully", category)
}

// List handles GET /api/loai-cong-viec.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get job types successfully", categories)
}

// Paginate handles GET /api/loai-cong-viec/phan-trang-tim-kiem.
func (h *Categories) Paginate(w http.ResponseWriter, r *http.Request) {
	query, err := pageQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	result, err := h.categories.Page(r.Context(), query)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get job types with pagination successfully", result)
}

// Get handles GET /api/loai-cong-viec/{id}.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	category, err := h.categories.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get job type successfully", category)
}

// Update handles PUT /api/loai-cong-viec/{id}.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var upd model.CategoryUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.CategoryUpdate(upd); err != nil {
		response.Error(w, err)
		return
	}

	category, err := h.categories.Update(r.Context(), actor, id, upd)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Job type updated successfully", category)
}

// Delete handles DELETE /api/loai-cong-viec/{id}.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.categories.Delete(r.Context(), actor, id); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Job type deleted successfully", nil)
}
