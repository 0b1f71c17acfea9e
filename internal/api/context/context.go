package context

import (
	"context"

	"github.com/dtroode/jobmarket-server/internal/model"
)

// sessionUserKey is the private key under which the authenticated caller is stored.
type sessionUserKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager carries the authenticated session user through request contexts.
// Values live in the Go context only, so clients cannot inject them through
// headers or gRPC metadata.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// WithSessionUser returns a copy of ctx carrying the session user.
//
// Parameters:
//   - ctx: The parent context
//   - user: The authenticated caller
//
// Returns a new context holding the user.
func (m *Manager) WithSessionUser(ctx context.Context, user model.SessionUser) context.Context {
	return context.WithValue(ctx, sessionUserKey{}, user)
}

// SessionUserFromContext retrieves the session user placed by WithSessionUser.
//
// Parameters:
//   - ctx: The request context
//
// Returns the user and a boolean indicating if an authenticated user was found.
func (m *Manager) SessionUserFromContext(ctx context.Context) (model.SessionUser, bool) {
	user, ok := ctx.Value(sessionUserKey{}).(model.SessionUser)
	if !ok || user.ID == 0 {
		return model.SessionUser{}, false
	}
	return user, true
}
