package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/validate"
)

// JobService defines the operations behind the job routes.
type JobService interface {
	Create(ctx context.Context, actor model.SessionUser, req model.NewJob) (model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	Page(ctx context.Context, query model.PageQuery) (model.Page[model.Job], error)
	Get(ctx context.Context, id int64) (model.Job, error)
	Update(ctx context.Context, actor model.SessionUser, id int64, upd model.JobUpdate) (model.Job, error)
	Delete(ctx context.Context, actor model.SessionUser, id int64) error
	UploadImage(ctx context.Context, actor model.SessionUser, id int64, upload model.Upload) (model.Job, error)
	Menu(ctx context.Context) ([]model.Category, error)
	SubcategoriesOf(ctx context.Context, categoryID int64) ([]model.Subcategory, error)
	BySubcategory(ctx context.Context, subcategoryID int64) ([]model.Job, error)
	Search(ctx context.Context, title string) ([]model.Job, error)
}

// Jobs handles the /api/cong-viec routes.
type Jobs struct {
	jobs           JobService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewJobs(jobs JobService, contextManager model.ContextManager, logger *logger.Logger) *Jobs {
	return &Jobs{
		jobs:           jobs,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create handles POST /api/cong-viec.
func (h *Jobs) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	var req model.NewJob
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.NewJob(req); err != nil {
		response.Error(w, err)
		return
	}

	job, err := h.jobs.Create(r.Context(), actor, req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "Job created successfully", job)
}

// List handles GET /api/cong-viec.
func (h *Jobs) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get jobs successfully", jobs)
}

// Paginate handles GET /api/cong-viec/phan-trang-tim-kiem.
func (h *Jobs) Paginate(w http.ResponseWriter, r *http.Request) {
	query, err := pageQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	result, err := h.jobs.Page(r.Context(), query)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get jobs with pagination successfully", result)
}

// Get handles GET /api/cong-viec/{id}.
func (h *Jobs) Get(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, "Get job successfully")
}

// Detail handles GET /api/cong-viec/lay-cong-viec-chi-tiet/{id}.
func (h *Jobs) Detail(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, "Get job detail successfully")
}

func (h *Jobs) get(w http.ResponseWriter, r *http.Request, message string) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	job, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, message, job)
}

// Update handles PUT /api/cong-viec/{id}.
func (h *Jobs) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var upd model.JobUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.JobUpdate(upd); err != nil {
		response.Error(w, err)
		return
	}

	job, err := h.jobs.Update(r.Context(), actor, id, upd)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Job updated successfully", job)
}

// Delete handles DELETE /api/cong-viec/{id}.
func (h *Jobs) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.jobs.Delete(r.Context(), actor, id); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Job deleted successfully", nil)
}

// UploadImage handles POST /api/cong-viec/upload-hinh-cong-viec/{id}.
func (h *Jobs) UploadImage(w http.ResponseWriter, r *http.Request) {
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

	job, err := h.jobs.UploadImage(r.Context(), actor, id, upload)
	if err != nil {
		h.logger.Warn("Jobs handler: image upload failed",
			"job_id", id,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	response.OK(w, "Image uploaded successfully", job)
}

// Menu handles GET /api/cong-viec/lay-menu-loai-cong-viec.
func (h *Jobs) Menu(w http.ResponseWriter, r *http.Request) {
	categories, err := h.jobs.Menu(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get menu job types successfully", categories)
}

// Subcategories handles GET /api/cong-viec/lay-chi-tiet-loai-cong-viec/{id},
// where id is a category.
func (h *Jobs) Subcategories(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	subs, err := h.jobs.SubcategoriesOf(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get job detail types successfully", subs)
}

// BySubcategory handles GET /api/cong-viec/lay-cong-viec-theo-chi-tiet-loai/{id}.
func (h *Jobs) BySubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	jobs, err := h.jobs.BySubcategory(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get jobs by detail type successfully", jobs)
}

// Search handles GET /api/cong-viec/lay-danh-sach-cong-viec-theo-ten/{name}.
func (h *Jobs) Search(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.Search(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Search jobs successfully", jobs)
}
