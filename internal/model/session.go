package model

import "context"

// SessionUser is the identity resolved from an access token.
type SessionUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u SessionUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TokenPair is an access token together with its refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Session is the result of a successful sign-up or sign-in.
type Session struct {
	User   Profile
	Tokens TokenPair
}

// Registration is a password sign-up request.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	ProfileFields
}

// Credentials is a password sign-in request.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ExternalIdentity is an identity asserted by a third-party provider.
type ExternalIdentity struct {
	ExternalID string
	Email      string
	Name       string
	AvatarURL  string
}

// ContextManager threads the resolved session user through a request context.
type ContextManager interface {
	WithSessionUser(ctx context.Context, user SessionUser) context.Context
	SessionUserFromContext(ctx context.Context) (SessionUser, bool)
}
