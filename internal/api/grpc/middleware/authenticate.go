package middleware

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Authenticator resolves an access token to the session user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.SessionUser, error)
}

// Authenticate validates bearer tokens and injects the session user into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the bearer token from the authorization metadata, resolves
// the session user and returns a context carrying it.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}

	user, err := m.authenticator.Authenticate(ctx, token)
	if err != nil {
		m.logger.Debug("gRPC authentication rejected",
			"error", err.Error())
		return nil, status.Error(codes.Unauthenticated, "invalid or expired access token")
	}

	return m.contextManager.WithSessionUser(ctx, user), nil
}
