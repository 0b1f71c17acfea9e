package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// SessionService defines the session operations exposed to sibling services.
type SessionService interface {
	Authenticate(ctx context.Context, accessToken string) (model.SessionUser, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	EndSession(ctx context.Context, userID int64) error
}

var _ SessionServer = (*Session)(nil)

// Session handles gRPC endpoints for session introspection.
type Session struct {
	sessions       SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSession creates a new Session handler.
func NewSession(sessions SessionService, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Introspect resolves an access token to the session user it belongs to.
func (h *Session) Introspect(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	user, err := h.sessions.Authenticate(ctx, req.GetValue())
	if err != nil {
		h.logger.Debug("Session handler: introspection rejected",
			"error", err.Error())
		return nil, handleError(err)
	}

	out, err := structpb.NewStruct(map[string]any{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
	})
	if err != nil {
		return nil, handleError(err)
	}

	return out, nil
}

// Refresh rotates the presented refresh token.
func (h *Session) Refresh(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	pair, err := h.sessions.Refresh(ctx, req.GetValue())
	if err != nil {
		if !errors.Is(err, model.ErrAccessDenied) && !errors.Is(err, model.ErrUnauthenticated) {
			h.logger.Error("Session handler: refresh failed",
				"error", err.Error())
		}
		return nil, handleError(err)
	}

	out, err := structpb.NewStruct(map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
	if err != nil {
		return nil, handleError(err)
	}

	return out, nil
}

// EndSession revokes the refresh token of the authenticated caller.
func (h *Session) EndSession(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	user, ok := h.contextManager.SessionUserFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	if err := h.sessions.EndSession(ctx, user.ID); err != nil {
		h.logger.Error("Session handler: end session failed",
			"user_id", user.ID,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Session handler: session ended",
		"user_id", user.ID)

	return &emptypb.Empty{}, nil
}
