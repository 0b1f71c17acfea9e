package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/jobmarket-server/internal/api/grpc/handler"
	"github.com/dtroode/jobmarket-server/internal/api/grpc/middleware"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// SessionService is the union of what the handler and the auth interceptor need.
type SessionService interface {
	handler.SessionService
	middleware.Authenticator
}

// Router assembles the gRPC server for session introspection.
type Router struct {
	sessions       SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
	health         *health.Server
}

// New creates new gRPC Router instance.
//
// Parameters:
//   - sessions: The session manager
//   - contextManager: Carries the authenticated user into handlers
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	sessions SessionService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
		health:         health.NewServer(),
	}
}

// requiresAuth selects the methods that act on behalf of a caller.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return c.FullMethod() == handler.EndSessionMethod
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging and authentication interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessions, r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	handler.RegisterSessionServer(s, handler.NewSession(r.sessions, r.contextManager, r.logger))

	healthpb.RegisterHealthServer(s, r.health)
	r.health.SetServingStatus(handler.SessionServiceName, healthpb.HealthCheckResponse_SERVING)

	return s
}

// Shutdown marks every service as not serving.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}
