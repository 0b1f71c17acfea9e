package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc/reflection"

	apicontext "github.com/dtroode/jobmarket-server/internal/api/context"
	grpcrouter "github.com/dtroode/jobmarket-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/jobmarket-server/internal/api/grpc/server"
	"github.com/dtroode/jobmarket-server/internal/api/http/cookie"
	httprouter "github.com/dtroode/jobmarket-server/internal/api/http/router"
	httpserver "github.com/dtroode/jobmarket-server/internal/api/http/server"
	"github.com/dtroode/jobmarket-server/internal/config"
	"github.com/dtroode/jobmarket-server/internal/hash"
	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
	"github.com/dtroode/jobmarket-server/internal/ratelimit"
	"github.com/dtroode/jobmarket-server/internal/repository/postgres"
	"github.com/dtroode/jobmarket-server/internal/server"
	"github.com/dtroode/jobmarket-server/internal/service"
	storage "github.com/dtroode/jobmarket-server/internal/storage/minio"
	"github.com/dtroode/jobmarket-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, token.WithTTL(cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL))
	passwords := hash.NewBcrypt(hash.DefaultCost)

	authService := service.NewAuth(userRepo, tokenManager, passwords, hash.SHA256{}, logger)
	ctxMgr := apicontext.NewManager()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	usersService := service.NewUsers(userRepo, passwords, storageClient, logger)

	categoryRepo := postgres.NewCategoryRepository(db)
	subcategoryRepo := postgres.NewSubcategoryRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	hireRepo := postgres.NewHireRepository(db)
	commentRepo := postgres.NewCommentRepository(db)

	marketplace := httprouter.Marketplace{
		Categories:    service.NewCategories(categoryRepo, logger),
		Subcategories: service.NewSubcategories(subcategoryRepo, jobRepo, storageClient, logger),
		Jobs:          service.NewJobs(jobRepo, categoryRepo, subcategoryRepo, commentRepo, storageClient, logger),
		Hires:         service.NewHires(hireRepo, logger),
		Comments:      service.NewComments(commentRepo, logger),
		Skills:        service.NewSkills(userRepo, logger),
	}

	opts := []httprouter.Option{httprouter.WithHealthChecker(db)}

	if cfg.Google.Enabled() {
		google := service.NewGoogleOAuth(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.CallbackURL, authService, logger)
		opts = append(opts, httprouter.WithGoogle(google))
	} else {
		logger.Info("Google sign-in disabled, GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set")
	}

	if cfg.Redis.Addr != "" {
		redisClient, err := ratelimit.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()

		limiter := ratelimit.NewLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		opts = append(opts, httprouter.WithRateLimiter(limiter))
	} else {
		logger.Info("Rate limiting disabled, REDIS_ADDR not set")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cookies := cookie.NewJar(cfg.SecureCookies(), cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	httpHandler := httprouter.New(
		authService,
		usersService,
		marketplace,
		ctxMgr,
		cookies,
		registry,
		cfg.FrontendURL,
		cfg.HTTP.AllowedOrigins,
		logger,
		opts...,
	).Register()

	servers := []struct {
		server model.Server
		layer  model.SecurityLayer
	}{
		{
			server: httpserver.NewHTTPServer(httpHandler, fmt.Sprintf(":%s", cfg.HTTP.Port)),
			layer:  server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
		},
		{
			server: registerGRPCServer(logger, authService, ctxMgr, fmt.Sprintf(":%s", cfg.GRPC.Port)),
			layer:  server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	authService *service.Auth,
	ctxMgr model.ContextManager,
	addr string,
) *grpcserver.GRPCServer {
	r := grpcrouter.New(authService, ctxMgr, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcserver.NewGRPCServer(s, addr)
}
