package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/validate"
)

// CommentService defines the operations behind the comment routes.
type CommentService interface {
	Create(ctx context.Context, actor model.SessionUser, req model.NewComment) (model.Comment, error)
	List(ctx context.Context) ([]model.Comment, error)
	ListByJob(ctx context.Context, jobID int64) ([]model.Comment, error)
	Get(ctx context.Context, id int64) (model.Comment, error)
	Update(ctx context.Context, actor model.SessionUser, id int64, upd model.CommentUpdate) (model.Comment, error)
	Delete(ctx context.Context, actor model.SessionUser, id int64) error
}

// Comments handles the /api/binh-luan routes.
type Comments struct {
	comments       CommentService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewComments(comments CommentService, contextManager model.ContextManager, logger *logger.Logger) *Comments {
	return &Comments{
		comments:       comments,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create handles POST /api/binh-luan. The author is always the signed-in
// user.
func (h *Comments) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	var req model.NewComment
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.NewComment(req); err != nil {
		response.Error(w, err)
		return
	}

	comment, err := h.comments.Create(r.Context(), actor, req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "Comment created successfully", comment)
}

// List handles GET /api/binh-luan.
func (h *Comments) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get comments successfully", comments)
}

// ByJob handles GET /api/binh-luan/lay-binh-luan-theo-cong-viec/{id}.
func (h *Comments) ByJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	comments, err := h.comments.ListByJob(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get comments by job successfully", comments)
}

// Get handles GET /api/binh-luan/{id}.
func (h *Comments) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	comment, err := h.comments.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get comment successfully", comment)
}

// Update handles PUT /api/binh-luan/{id}.
func (h *Comments) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var upd model.CommentUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.CommentUpdate(upd); err != nil {
		response.Error(w, err)
		return
	}

	comment, err := h.comments.Update(r.Context(), actor, id, upd)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Comment updated successfully", comment)
}

// Delete handles DELETE /api/binh-luan/{id}.
func (h *Comments) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := sessionUser(h.contextManager, w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.comments.Delete(r.Context(), actor, id); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Comment deleted successfully", nil)
}
