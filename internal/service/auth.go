package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Auth is the credential and session manager. It turns passwords or
// external identity assertions into sessions, rotates refresh tokens and
// resolves access tokens back into users.
type Auth struct {
	userStore    model.UserStore
	passwords    model.Hasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	codec model.TokenCodec,
	passwords model.Hasher,
	digests model.Digester,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		passwords:    passwords,
		tokenService: NewTokenService(codec, userStore, digests, logger),
		logger:       logger,
	}
}

// RegisterWithPassword creates a password account and opens its first session.
func (a *Auth) RegisterWithPassword(ctx context.Context, reg model.Registration) (model.Session, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", reg.Email)

	_, err := a.userStore.GetByEmail(ctx, reg.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", reg.Email)
		return model.Session{}, model.ErrDuplicateIdentity
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", reg.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	digest, err := a.passwords.Hash(reg.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", reg.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: &digest,
		Role:         model.RoleUser,
	}
	reg.ProfileFields.Apply(&user)

	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.Session{}, model.ErrDuplicateIdentity
		}
		a.logger.Error("Auth service: failed to create user",
			"email", reg.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := a.IssueSession(ctx, created.ID, created.Email)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: user registered",
		"user_id", created.ID)

	return model.Session{User: created.Profile(), Tokens: tokens}, nil
}

// AuthenticateWithPassword opens a session for a password account. Unknown
// email, missing password and wrong password all yield ErrInvalidCredentials.
func (a *Auth) AuthenticateWithPassword(ctx context.Context, email, password string) (model.Session, error) {
	a.logger.Debug("Auth service: starting password login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.PasswordHash == nil || !a.passwords.Compare(password, *user.PasswordHash) {
		a.logger.Info("Auth service: password login rejected",
			"user_id", user.ID)
		return model.Session{}, model.ErrInvalidCredentials
	}

	tokens, err := a.IssueSession(ctx, user.ID, user.Email)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: password login succeeded",
		"user_id", user.ID)

	return model.Session{User: user.Profile(), Tokens: tokens}, nil
}

// AuthenticateWithExternalIdentity opens a session for a provider identity.
// The user is found by external id, else linked by email, else created.
func (a *Auth) AuthenticateWithExternalIdentity(ctx context.Context, identity model.ExternalIdentity) (model.Session, error) {
	if identity.ExternalID == "" {
		return model.Session{}, model.NewValidationError("externalId", "is required")
	}

	a.logger.Debug("Auth service: starting external login",
		"external_id", identity.ExternalID,
		"email", identity.Email)

	user, err := a.findOrCreateExternal(ctx, identity)
	if err != nil {
		return model.Session{}, err
	}

	tokens, err := a.IssueSession(ctx, user.ID, user.Email)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: external login succeeded",
		"user_id", user.ID)

	return model.Session{User: user.Profile(), Tokens: tokens}, nil
}

func (a *Auth) findOrCreateExternal(ctx context.Context, identity model.ExternalIdentity) (model.User, error) {
	user, err := a.userStore.GetByExternalID(ctx, identity.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by external id: %w", err)
	}

	if identity.Email == "" {
		return model.User{}, model.NewValidationError("email", "is required")
	}

	user, err = a.userStore.GetByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		linked, err := a.userStore.LinkExternalID(ctx, user.ID, identity.ExternalID)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to link external id: %w", err)
		}
		a.logger.Info("Auth service: external id linked to existing user",
			"user_id", linked.ID)
		return linked, nil
	case !errors.Is(err, model.ErrNotFound):
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	externalID := identity.ExternalID
	newUser := model.User{
		Name:       identity.Name,
		Email:      identity.Email,
		ExternalID: &externalID,
		Role:       model.RoleUser,
	}
	if identity.AvatarURL != "" {
		avatar := identity.AvatarURL
		newUser.Avatar = &avatar
	}

	created, err := a.userStore.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// A concurrent login created the row first.
			existing, lookupErr := a.userStore.GetByExternalID(ctx, identity.ExternalID)
			if lookupErr == nil {
				return existing, nil
			}
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user created from external identity",
		"user_id", created.ID)

	return created, nil
}

// IssueSession signs a new token pair and makes its refresh token the only
// one that can rotate.
func (a *Auth) IssueSession(ctx context.Context, userID int64, email string) (model.TokenPair, error) {
	tokens, err := a.tokenService.Issue(ctx, userID, email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue session",
			"user_id", userID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to issue session: %w", err)
	}
	return tokens, nil
}

// RotateSession exchanges the current refresh token for a new pair.
func (a *Auth) RotateSession(ctx context.Context, userID int64, presentedRefresh string) (model.TokenPair, error) {
	tokens, err := a.tokenService.Rotate(ctx, userID, presentedRefresh)
	if err != nil {
		if !errors.Is(err, model.ErrAccessDenied) {
			a.logger.Error("Auth service: failed to rotate session",
				"user_id", userID,
				"error", err.Error())
		}
		return model.TokenPair{}, err
	}
	return tokens, nil
}

// ResolveSessionUser returns the identity behind a verified token subject.
func (a *Auth) ResolveSessionUser(ctx context.Context, userID int64) (model.SessionUser, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.SessionUser{}, model.ErrUnauthenticated
		}
		return model.SessionUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return model.SessionUser{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// EndSession clears the stored refresh token digest. Access tokens already
// issued stay valid until they expire.
func (a *Auth) EndSession(ctx context.Context, userID int64) error {
	if err := a.tokenService.Revoke(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrUnauthenticated
		}
		a.logger.Error("Auth service: failed to end session",
			"user_id", userID,
			"error", err.Error())
		return err
	}

	a.logger.Info("Auth service: session ended",
		"user_id", userID)
	return nil
}

// CurrentUser returns the full profile of the authenticated user.
func (a *Auth) CurrentUser(ctx context.Context, userID int64) (model.Profile, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, model.ErrUnauthenticated
		}
		return model.Profile{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user.OwnProfile(), nil
}

// Authenticate verifies an access token and resolves its user.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (model.SessionUser, error) {
	userID, err := a.tokenService.AccessSubject(accessToken)
	if err != nil {
		return model.SessionUser{}, err
	}
	return a.ResolveSessionUser(ctx, userID)
}

// Refresh verifies a refresh token and rotates the session it belongs to.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	userID, err := a.tokenService.RefreshSubject(refreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}
	return a.RotateSession(ctx, userID, refreshToken)
}
