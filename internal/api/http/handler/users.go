package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/jobmarket-server/internal/api/http/apierror"
	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/validate"
)

// UserService defines the account management operations behind the users routes.
type UserService interface {
	Create(ctx context.Context, actor model.SessionUser, req model.NewUser) (model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	Page(ctx context.Context, query model.PageQuery) (model.ProfilePage, error)
	SearchByName(ctx context.Context, name string) ([]model.Profile, error)
	Get(ctx context.Context, id int64) (model.Profile, error)
	Update(ctx context.Context, actor model.SessionUser, id int64, upd model.ProfileUpdate) (model.Profile, error)
	Delete(ctx context.Context, actor model.SessionUser, id int64) error
	UploadAvatar(ctx context.Context, userID int64, upload model.Upload) (model.Profile, error)
}

// Users handles the /api/users routes. Every route expects an
// authenticated session user in the request context.
type Users struct {
	users          UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUsers(users UserService, contextManager model.ContextManager, logger *logger.Logger) *Users {
	return &Users{
		users:          users,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create handles POST /api/users.
func (h *Users) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.contextManager.SessionUserFromContext(r.Context())
	if !ok {
		response.Error(w, apierror.ErrUnauthorized)
		return
	}

	var req model.NewUser
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.NewUser(req); err != nil {
		response.Error(w, err)
		return
	}

	profile, err := h.users.Create(r.Context(), actor, req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, "User created successfully", profile)
}

// List handles GET /api/users.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.users.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get users successfully", profiles)
}

// Paginate handles GET /api/users/phan-trang-tim-kiem?page=&pageSize=&keyword=.
func (h *Users) Paginate(w http.ResponseWriter, r *http.Request) {
	query, err := pageQuery(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	result, err := h.users.Page(r.Context(), query)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get users with pagination successfully", result)
}

// Search handles GET /api/users/search/{name}.
func (h *Users) Search(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.users.SearchByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Search users successfully", profiles)
}

// Get handles GET /api/users/{id}.
func (h *Users) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	profile, err := h.users.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "Get user successfully", profile)
}

// Update handles PUT /api/users/{id}.
func (h *Users) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.contextManager.SessionUserFromContext(r.Context())
	if !ok {
		response.Error(w, apierror.ErrUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var upd model.ProfileUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		response.Error(w, err)
		return
	}
	if err := validate.ProfileUpdate(upd); err != nil {
		response.Error(w, err)
		return
	}

	profile, err := h.users.Update(r.Context(), actor, id, upd)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "User updated successfully", profile)
}

// Delete handles DELETE /api/users/{id}.
func (h *Users) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.contextManager.SessionUserFromContext(r.Context())
	if !ok {
		response.Error(w, apierror.ErrUnauthorized)
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.users.Delete(r.Context(), actor, id); err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, "User deleted successfully", nil)
}

// UploadAvatar handles POST /api/users/upload-avatar for the current user.
func (h *Users) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.contextManager.SessionUserFromContext(r.Context())
	if !ok {
		response.Error(w, apierror.ErrUnauthorized)
		return
	}

	upload, file, err := readImage(w, r)
	if err != nil {
		response.Error(w, err)
		return
	}
	defer file.Close()

	profile, err := h.users.UploadAvatar(r.Context(), actor.ID, upload)
	if err != nil {
		h.logger.Warn("Users handler: avatar upload failed",
			"user_id", actor.ID,
			"error", err.Error())
		response.Error(w, err)
		return
	}

	response.OK(w, "Avatar uploaded successfully", profile)
}
