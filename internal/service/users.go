package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Users manages user accounts and profiles.
type Users struct {
	userStore model.UserStore
	passwords model.Hasher
	avatars   model.Storage
	logger    *logger.Logger
}

func NewUsers(userStore model.UserStore, passwords model.Hasher, avatars model.Storage, logger *logger.Logger) *Users {
	return &Users{
		userStore: userStore,
		passwords: passwords,
		avatars:   avatars,
		logger:    logger,
	}
}

// Create adds a password account on behalf of an admin.
func (u *Users) Create(ctx context.Context, actor model.SessionUser, req model.NewUser) (model.Profile, error) {
	if !actor.IsAdmin() {
		return model.Profile{}, model.ErrForbidden
	}

	_, err := u.userStore.GetByEmail(ctx, req.Email)
	if err == nil {
		return model.Profile{}, model.ErrDuplicateIdentity
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	digest, err := u.passwords.Hash(req.Password)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &digest,
		Role:         role,
	}
	req.ProfileFields.Apply(&user)

	created, err := u.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.Profile{}, model.ErrDuplicateIdentity
		}
		return model.Profile{}, fmt.Errorf("failed to create user: %w", err)
	}

	u.logger.Info("Users service: user created",
		"user_id", created.ID,
		"by", actor.ID)

	return created.Profile(), nil
}

// List returns every user.
func (u *Users) List(ctx context.Context) ([]model.Profile, error) {
	users, err := u.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return model.Profiles(users), nil
}

// Page returns one page of users, newest first, filtered by keyword on
// name or email.
func (u *Users) Page(ctx context.Context, query model.PageQuery) (model.ProfilePage, error) {
	query = query.WithDefaults()

	users, total, err := u.userStore.Page(ctx, query)
	if err != nil {
		return model.ProfilePage{}, fmt.Errorf("failed to page users: %w", err)
	}

	return model.NewPage(model.Profiles(users), total, query), nil
}

// SearchByName returns users whose name contains the given text.
func (u *Users) SearchByName(ctx context.Context, name string) ([]model.Profile, error) {
	users, err := u.userStore.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return model.Profiles(users), nil
}

// Get returns one user.
func (u *Users) Get(ctx context.Context, id int64) (model.Profile, error) {
	user, err := u.userStore.GetByID(ctx, id)
	if err != nil {
		return model.Profile{}, u.lookupError(id, err)
	}
	return user.Profile(), nil
}

// Update edits a profile. Users may edit themselves; admins may edit anyone
// and change roles.
func (u *Users) Update(ctx context.Context, actor model.SessionUser, id int64, upd model.ProfileUpdate) (model.Profile, error) {
	if actor.ID != id && !actor.IsAdmin() {
		return model.Profile{}, model.ErrForbidden
	}
	if upd.Role != nil && !actor.IsAdmin() {
		return model.Profile{}, model.ErrForbidden
	}

	user, err := u.userStore.GetByID(ctx, id)
	if err != nil {
		return model.Profile{}, u.lookupError(id, err)
	}

	if upd.Email != nil && *upd.Email != user.Email {
		_, err := u.userStore.GetByEmail(ctx, *upd.Email)
		if err == nil {
			return model.Profile{}, model.ErrDuplicateIdentity
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, fmt.Errorf("failed to get user by email: %w", err)
		}
		user.Email = *upd.Email
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	upd.ProfileFields.Apply(&user)

	updated, err := u.userStore.Update(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.Profile{}, model.ErrDuplicateIdentity
		}
		return model.Profile{}, u.lookupError(id, err)
	}

	u.logger.Info("Users service: user updated",
		"user_id", id,
		"by", actor.ID)

	return updated.Profile(), nil
}

// Delete removes a user on behalf of an admin.
func (u *Users) Delete(ctx context.Context, actor model.SessionUser, id int64) error {
	if !actor.IsAdmin() {
		return model.ErrForbidden
	}

	if err := u.userStore.Delete(ctx, id); err != nil {
		return u.lookupError(id, err)
	}

	u.logger.Info("Users service: user deleted",
		"user_id", id,
		"by", actor.ID)

	return nil
}

// UploadAvatar stores an image and points the user's avatar at it. The
// previous avatar object is removed when it lives in our storage.
func (u *Users) UploadAvatar(ctx context.Context, userID int64, upload model.Upload) (model.Profile, error) {
	user, err := u.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.Profile{}, u.lookupError(userID, err)
	}

	key, url, err := storeImage(ctx, u.avatars, "avatars", userID, upload)
	if err != nil {
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			u.logger.Error("Users service: failed to upload avatar",
				"user_id", userID,
				"error", err.Error())
		}
		return model.Profile{}, err
	}

	previous := user.Avatar
	user.Avatar = &url

	updated, err := u.userStore.Update(ctx, user)
	if err != nil {
		return model.Profile{}, u.lookupError(userID, err)
	}

	if oldKey, err := dropImage(ctx, u.avatars, previous); err != nil {
		u.logger.Warn("Users service: failed to delete previous avatar",
			"user_id", userID,
			"key", oldKey,
			"error", err.Error())
	}

	u.logger.Info("Users service: avatar uploaded",
		"user_id", userID,
		"key", key)

	return updated.Profile(), nil
}

func (u *Users) lookupError(id int64, err error) error {
	return lookupError("User", id, err)
}
