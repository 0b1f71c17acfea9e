package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/validate"
)

// HireService defines the operations behind the hired job routes.
type HireService interface {
	Create(ctx context.Context, actor model.SessionUser, req model.NewHire) (model.Hire, error)
	List(ctx context.Context) ([]model.Hire, error)
	ListOpen(ctx context.Context) ([]model.Hire, error)
	Page(ctx context.Context, query model.PageQuery) (model.Page[model.Hire], error)
	Get(ctx context.Context, id int64) (model.Hire, error)
	Update(ctx context.Context, actor model.SessionUser, id int64, upd model.HireUpdate) (model.Hire, error)
	Complete(ctx context.Context, actor model.SessionUser, id int64) (model.Hire, error)
	Delete(ctx context.Context, actor model.SessionUser, id int64) error
}

// Hires handles the /api/thue-cong-viec routes.
type Hires struct {
	hires          HireService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewHires(hires HireService, contextManager model.ContextManager, logger *logger.Logger) *Hires {
	return &Hires{
		hires:          hires,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create handles POST /api/thue-cong-viec.
func (h *Hires) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	var req model.NewHire
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.NewHire(req); err != nil {
		response.Error(w, err)
		return
	}

	hire, err := h.hires.Create(r.Context(), actor, req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "Job hired successfully", hire)
}

// List handles GET /api/thue-cong-viec.
func (h *Hires) List(w http.ResponseWriter, r *http.Request) {
	hires, err := h.hires.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get hired jobs successfully", hires)
}

// ListOpen handles GET /api/thue-cong-viec/lay-danh-sach-da-thue.
func (h *Hires) ListOpen(w http.ResponseWriter, r *http.Request) {
	hires, err := h.hires.ListOpen(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get hired jobs list successfully", hires)
}

// Paginate handles GET /api/thue-cong-viec/phan-trang-tim-kiem.
func (h *Hires) Paginate(w http.ResponseWriter, r *http.Request) {
	query, err := pageQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	result, err := h.hires.Page(r.Context(), query)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get hired jobs with pagination successfully", result)
}

// Get handles GET /api/thue-cong-viec/{id}.
func (h *Hires) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	hire, err := h.hires.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get hired job successfully", hire)
}

// Update handles PUT /api/thue-cong-viec/{id}.
func (h *Hires) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var upd model.HireUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		response.Error(w, err)
		return
	}

	hire, err := h.hires.Update(r.Context(), actor, id, upd)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Hired job updated successfully", hire)
}

// Complete handles POST /api/thue-cong-viec/hoan-thanh-cong-viec/{id}.
func (h *Hires) Complete(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	hire, err := h.hires.Complete(r.Context(), actor, id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Job completed successfully", hire)
}

// Delete handles DELETE /api/thue-cong-viec/{id}.
func (h *Hires) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.hires.Delete(r.Context(), actor, id); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Hired job deleted successfully", nil)
}
