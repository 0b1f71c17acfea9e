// Package middleware provides HTTP middleware for the public API.
package middleware

import (
	"context"
	"net/http"

	"github.com/dtroode/jobmarket-server/internal/api/http/apierror"
	"github.com/dtroode/jobmarket-server/internal/api/http/cookie"
	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Authenticator resolves an access token to the session user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.SessionUser, error)
}

// Authenticate rejects requests without a valid access token and injects
// the session user into the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle reads the access token from its cookie or the Authorization header.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := cookie.AccessTokenFrom(r)
		if token == "" {
			response.Error(w, apierror.ErrUnauthorized)
			return
		}

		user, err := m.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			m.logger.Debug("HTTP authentication rejected",
				"path", r.URL.Path,
				"error", err.Error())
			response.Error(w, apierror.ErrUnauthorized.WithMessage("Invalid or expired access token"))
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.WithSessionUser(r.Context(), user)))
	})
}
