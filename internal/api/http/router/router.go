package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/jobmarket-server/internal/api/http/apierror"
	"github.com/dtroode/jobmarket-server/internal/api/http/cookie"
	"github.com/dtroode/jobmarket-server/internal/api/http/handler"
	"github.com/dtroode/jobmarket-server/internal/api/http/middleware"
	"github.com/dtroode/jobmarket-server/internal/api/http/response"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

const healthTimeout = 2 * time.Second

// AuthService is the union of what the auth handler and the authenticate
// middleware need.
type AuthService interface {
	handler.AuthService
	middleware.Authenticator
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Registry exposes and collects prometheus metrics.
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// Marketplace groups the services behind the catalog, job, hire, comment
// and skill routes.
type Marketplace struct {
	Categories    handler.CategoryService
	Subcategories handler.SubcategoryService
	Jobs          handler.JobService
	Hires         handler.HireService
	Comments      handler.CommentService
	Skills        handler.SkillService
}

// Router assembles the public HTTP API.
type Router struct {
	auth           AuthService
	users          handler.UserService
	marketplace    Marketplace
	google         handler.OAuthProvider
	limiter        middleware.RateLimiter
	health         HealthChecker
	contextManager model.ContextManager
	cookies        *cookie.Jar
	registry       Registry
	frontendURL    string
	allowedOrigins []string
	logger         *logger.Logger
}

// Option configures optional parts of the Router.
type Option func(*Router)

// WithGoogle enables the Google sign-in routes.
func WithGoogle(google handler.OAuthProvider) Option {
	return func(r *Router) { r.google = google }
}

// WithRateLimiter throttles the credential endpoints.
func WithRateLimiter(limiter middleware.RateLimiter) Option {
	return func(r *Router) { r.limiter = limiter }
}

// WithHealthChecker makes /healthz report the state of a dependency.
func WithHealthChecker(health HealthChecker) Option {
	return func(r *Router) { r.health = health }
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - auth: The session manager
//   - users: The account management service
//   - marketplace: The job marketplace services
//   - contextManager: Carries the authenticated user into handlers
//   - cookies: Writes the session cookies
//   - registry: Receives the HTTP metrics and backs /metrics
//   - frontendURL: Where the Google callback sends the browser
//   - allowedOrigins: Origins allowed to send credentialed requests
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	auth AuthService,
	users handler.UserService,
	marketplace Marketplace,
	contextManager model.ContextManager,
	cookies *cookie.Jar,
	registry Registry,
	frontendURL string,
	allowedOrigins []string,
	logger *logger.Logger,
	opts ...Option,
) *Router {
	r := &Router{
		auth:           auth,
		users:          users,
		marketplace:    marketplace,
		contextManager: contextManager,
		cookies:        cookies,
		registry:       registry,
		frontendURL:    frontendURL,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register builds the chi router with all routes and middleware.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.auth, r.google, r.cookies, r.contextManager, r.frontendURL, r.logger)
	usersHandler := handler.NewUsers(r.users, r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.auth, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(middleware.NewMetrics(r.registry).Handle)
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(middleware.NewLogging(r.logger).Handle)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, apierror.ErrNotFound)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, &apierror.APIError{
			Code:       "method_not_allowed",
			Message:    "Method not allowed",
			StatusCode: http.StatusMethodNotAllowed,
		})
	})

	mux.Get("/healthz", r.healthz)
	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))

	mux.Route("/api/auth", func(api chi.Router) {
		api.Group(func(credentials chi.Router) {
			if r.limiter != nil {
				credentials.Use(middleware.NewRateLimit(r.limiter, r.logger).Handle)
			}
			credentials.Post("/signup", authHandler.SignUp)
			credentials.Post("/signin", authHandler.SignIn)
			credentials.Post("/refresh", authHandler.Refresh)
		})

		api.Get("/google", authHandler.Google)
		api.Get("/google/callback", authHandler.GoogleCallback)

		api.Group(func(private chi.Router) {
			private.Use(authenticate.Handle)
			private.Get("/me", authHandler.Me)
			private.Post("/logout", authHandler.Logout)
		})
	})

	mux.Route("/api/users", func(api chi.Router) {
		api.Use(authenticate.Handle)
		api.Post("/", usersHandler.Create)
		api.Get("/", usersHandler.List)
		api.Get("/phan-trang-tim-kiem", usersHandler.Paginate)
		api.Get("/search/{name}", usersHandler.Search)
		api.Post("/upload-avatar", usersHandler.UploadAvatar)
		api.Get("/{id}", usersHandler.Get)
		api.Put("/{id}", usersHandler.Update)
		api.Delete("/{id}", usersHandler.Delete)
	})

	r.registerMarketplace(mux, authenticate)

	return mux
}

// registerMarketplace mounts the catalog, job, hire, comment and skill
// routes. Reads are public; writes need a session.
func (r *Router) registerMarketplace(mux chi.Router, authenticate *middleware.Authenticate) {
	categories := handler.NewCategories(r.marketplace.Categories, r.contextManager, r.logger)
	subcategories := handler.NewSubcategories(r.marketplace.Subcategories, r.contextManager, r.logger)
	jobs := handler.NewJobs(r.marketplace.Jobs, r.contextManager, r.logger)
	hires := handler.NewHires(r.marketplace.Hires, r.contextManager, r.logger)
	comments := handler.NewComments(r.marketplace.Comments, r.contextManager, r.logger)
	skills := handler.NewSkills(r.marketplace.Skills)

	mux.Route("/api/loai-cong-viec", func(api chi.Router) {
		api.Get("/", categories.List)
		api.Get("/phan-trang-tim-kiem", categories.Paginate)
		api.Get("/{id}", categories.Get)

		api.Group(func(private chi.Router) {
			private.Use(authenticate.Handle)
			private.Post("/", categories.Create)
			private.Put("/{id}", categories.Update)
			private.Delete("/{id}", categories.Delete)
		})
	})

	mux.Route("/api/chi-tiet-loai-cong-viec", func(api chi.Router) {
		api.Get("/", subcategories.List)
		api.Get("/phan-trang-tim-kiem", subcategories.Paginate)
		api.Get("/{id}", subcategories.Get)

		api.Group(func(private chi.Router) {
			private.Use(authenticate.Handle)
			private.Post("/", subcategories.Create)
			private.Post("/them-nhom-chi-tiet-loai", subcategories.Create)
			private.Post("/upload-hinh-nhom-loai-cong-viec/{id}", subcategories.UploadImage)
			private.Put("/sua-nhom-chi-tiet-loai/{id}", subcategories.Update)
			private.Put("/{id}", subcategories.Update)
			private.Delete("/{id}", subcategories.Delete)
		})
	})

	mux.Route("/api/cong-viec", func(api chi.Router) {
		api.Get("/", jobs.List)
		api.Get("/phan-trang-tim-kiem", jobs.Paginate)
		api.Get("/lay-menu-loai-cong-viec", jobs.Menu)
		api.Get("/lay-chi-tiet-loai-cong-viec/{id}", jobs.Subcategories)
		api.Get("/lay-cong-viec-theo-chi-tiet-loai/{id}", jobs.BySubcategory)
		api.Get("/lay-cong-viec-chi-tiet/{id}", jobs.Detail)
		api.Get("/lay-danh-sach-cong-viec-theo-ten/{name}", jobs.Search)
		api.Get("/{id}", jobs.Get)

		api.Group(func(private chi.Router) {
			private.Use(authenticate.Handle)
			private.Post("/", jobs.Create)
			private.Post("/upload-hinh-cong-viec/{id}", jobs.UploadImage)
			private.Put("/{id}", jobs.Update)
			private.Delete("/{id}", jobs.Delete)
		})
	})

	mux.Route("/api/thue-cong-viec", func(api chi.Router) {
		api.Get("/", hires.List)
		api.Get("/phan-trang-tim-kiem", hires.Paginate)
		api.Get("/lay-danh-sach-da-thue", hires.ListOpen)
		api.Get("/{id}", hires.Get)

		api.Group(func(private chi.Router) {
			private.Use(authenticate.Handle)
			private.Post("/", hires.Create)
			private.Post("/hoan-thanh-cong-viec/{id}", hires.Complete)
			private.Put("/{id}", hires.Update)
			private.Delete("/{id}", hires.Delete)
		})
	})

	mux.Route("/api/binh-luan", func(api chi.Router) {
		api.Get("/", comments.List)
		api.Get("/lay-binh-luan-theo-cong-viec/{id}", comments.ByJob)
		api.Get("/{id}", comments.Get)

		api.Group(func(private chi.Router) {
			private.Use(authenticate.Handle)
			private.Post("/", comments.Create)
			private.Put("/{id}", comments.Update)
			private.Delete("/{id}", comments.Delete)
		})
	})

	mux.Get("/api/skill", skills.List)
}

func (r *Router) healthz(w http.ResponseWriter, req *http.Request) {
	if r.health != nil {
		ctx, cancel := context.WithTimeout(req.Context(), healthTimeout)
		defer cancel()

		if err := r.health.Ping(ctx); err != nil {
			r.logger.Error("Health check failed",
				"error", err.Error())
			response.Error(w, &apierror.APIError{
				Code:       "unavailable",
				Message:    "Service unavailable",
				StatusCode: http.StatusServiceUnavailable,
			})
			return
		}
	}

	response.OK(w, "ok", nil)
}
