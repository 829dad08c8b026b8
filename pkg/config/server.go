// Package config assembles and runs the cover letter API server.
package config

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/api"
	"github.com/Egham-7/cover-letter-ai/internal/config"
	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/cache"
	"github.com/Egham-7/cover-letter-ai/internal/services/database"
	"github.com/Egham-7/cover-letter-ai/internal/services/letters"
	"github.com/Egham-7/cover-letter-ai/internal/services/middleware"
	"github.com/Egham-7/cover-letter-ai/internal/services/provider"
	"github.com/Egham-7/cover-letter-ai/internal/services/request"
	"github.com/Egham-7/cover-letter-ai/internal/services/response"
	"github.com/Egham-7/cover-letter-ai/internal/services/select_model"
	"github.com/Egham-7/cover-letter-ai/internal/services/translation"
	"github.com/Egham-7/cover-letter-ai/internal/services/usage"
	"github.com/Egham-7/cover-letter-ai/pkg/builder"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const (
	maxRequestTimeout = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second

	resolutionWorkers = 4
	resolutionBuffer  = 1024
)

// Server is one cover letter API instance.
type Server struct {
	config  *config.Config
	builder *builder.Builder
	app     *fiber.App
	redis   *redis.Client
	db      *database.DB
	worker  *usage.Worker
}

type serverInfrastructure struct {
	redis *redis.Client
	db    *database.DB
}

type serverServices struct {
	registry    *provider.Registry
	selector    *select_model.Service
	cache       *cache.ResponseCache
	letters     *letters.Service
	translation *translation.Service
	usage       *usage.Service
	worker      *usage.Worker
}

// NewServer creates a server with the given configuration.
// The cfg parameter is required and must not be nil.
func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		panic("config cannot be nil - use config.LoadFromFile() or the builder to create config")
	}
	return &Server{config: cfg}
}

// NewServerWithBuilder creates a server whose rate limit, timeout and extra
// middleware come from the builder.
func NewServerWithBuilder(b *builder.Builder) *Server {
	return &Server{
		config:  b.Build(),
		builder: b,
	}
}

// Setup validates the configuration, connects infrastructure and returns the
// fully routed app without listening. Call Close when done.
func (s *Server) Setup() (*fiber.App, error) {
	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogLevel(s.config)

	infra, err := initializeInfrastructure(s.config)
	if err != nil {
		return nil, err
	}
	s.redis = infra.redis
	s.db = infra.db

	svcs, err := initializeServices(s.config, infra)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.worker = svcs.worker

	s.app = createFiberApp(s.config)
	setupMiddleware(s.app, s.config, s.builder)
	setupRoutes(s.app, s.config, svcs, s.db)

	return s.app, nil
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	app, err := s.Setup()
	if err != nil {
		return err
	}
	defer s.Close()

	listenAddr := ":" + s.config.Server.Port

	fmt.Printf("🚀 Cover letter API starting on %s\n", listenAddr)
	fmt.Printf("   Environment: %s\n", s.config.Server.Environment)
	fmt.Printf("   Go version: %s\n", runtime.Version())
	fmt.Printf("   GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		if err := app.Listen(listenAddr); err != nil {
			serverErrChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		fiberlog.Infof("Received signal: %v. Starting graceful shutdown...", sig)
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	}

	fiberlog.Info("Server shutting down gracefully...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	fiberlog.Info("Server shutdown completed successfully")

	return nil
}

// Close drains the resolution log and releases connections.
func (s *Server) Close() {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			fiberlog.Errorf("Failed to close Redis client: %v", err)
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			fiberlog.Errorf("Failed to close database connection: %v", err)
		}
	}
}

func createFiberApp(cfg *config.Config) *fiber.App {
	isProd := cfg.IsProduction()

	return fiber.New(fiber.Config{
		AppName:           "CoverLetterAI v1.0",
		EnablePrintRoutes: !isProd,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       5 * time.Minute,
		ReadBufferSize:    8192,
		WriteBufferSize:   8192,
		Prefork:           false,
		CaseSensitive:     true,
		StrictRouting:     false,
		Network:           "tcp",
		ServerHeader:      "CoverLetterAI",
	})
}

func setupMiddleware(app *fiber.App, cfg *config.Config, b *builder.Builder) {
	isProd := cfg.IsProduction()

	// Recover middleware (must be first)
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !isProd,
	}))

	rateMax, rateWindow := cfg.Server.RateLimitRpm, time.Minute
	keyFunc := func(c *fiber.Ctx) string { return c.IP() }
	if b != nil && b.GetRateLimitConfig() != nil {
		rlCfg := b.GetRateLimitConfig()
		rateMax, rateWindow = rlCfg.Max, rlCfg.Expiration
		if rlCfg.KeyFunc != nil {
			keyFunc = rlCfg.KeyFunc
		}
	}
	respSvc := response.NewBaseService()
	app.Use(limiter.New(limiter.Config{
		Max:               rateMax,
		Expiration:        rateWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      keyFunc,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return respSvc.Error(c, fiber.StatusTooManyRequests,
				fmt.Sprintf("%d requests per %v", rateMax, rateWindow),
				string(models.ErrorTypeRateLimit), "RATE_LIMIT_EXCEEDED")
		},
	}))

	if b != nil && b.GetTimeoutConfig() != nil {
		timeoutDuration := b.GetTimeoutConfig().Timeout
		app.Use(func(c *fiber.Ctx) error {
			handler := func(c *fiber.Ctx) error {
				return c.Next()
			}
			return timeout.NewWithContext(handler, timeoutDuration)(c)
		})
	} else {
		defaultTimeout := cfg.RequestTimeout()
		app.Use(func(c *fiber.Ctx) error {
			timeout := defaultTimeout
			if customTimeout := c.Get("X-Request-Timeout"); customTimeout != "" {
				if d, err := time.ParseDuration(customTimeout); err == nil && d > 0 {
					timeout = min(d, maxRequestTimeout)
				}
			}

			ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
			defer cancel()
			c.SetUserContext(ctx)

			return c.Next()
		})
	}

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	if isProd {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency} ${bytesSent}b\n",
			Output: os.Stdout,
		}))
	} else {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
			Output: os.Stdout,
		}))
	}

	allowedHeaders := []string{
		"Origin", "Content-Type", "Accept", "User-Agent",
		request.RequestIDHeader, "X-Request-Timeout",
		middleware.OfflineHeader, middleware.AdminTokenHeader,
	}

	// Credentialed CORS cannot be combined with a wildcard origin.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowHeaders:     strings.Join(allowedHeaders, ", "),
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: cfg.Server.AllowedOrigins != "*",
		MaxAge:           86400,
		ExposeHeaders:    "Content-Length, Content-Type, " + request.RequestIDHeader,
	}))

	app.Use("/api", middleware.Offline())

	if b != nil {
		for _, mw := range b.GetMiddlewares() {
			app.Use(mw)
		}
	}

	if !isProd {
		app.Use(pprof.New())
	}
}

func setupLogLevel(cfg *config.Config) {
	logLevel := cfg.GetNormalizedLogLevel()

	switch logLevel {
	case "trace":
		fiberlog.SetLevel(fiberlog.LevelTrace)
	case "debug":
		fiberlog.SetLevel(fiberlog.LevelDebug)
	case "info", "":
		fiberlog.SetLevel(fiberlog.LevelInfo)
	case "warn", "warning":
		fiberlog.SetLevel(fiberlog.LevelWarn)
	case "error":
		fiberlog.SetLevel(fiberlog.LevelError)
	case "fatal":
		fiberlog.SetLevel(fiberlog.LevelFatal)
	case "panic":
		fiberlog.SetLevel(fiberlog.LevelPanic)
	default:
		fiberlog.SetLevel(fiberlog.LevelInfo)
		fiberlog.Warnf("Unknown log level '%s', defaulting to 'info'", logLevel)
	}

	fiberlog.Infof("Log level set to: %s", logLevel)
}

func createRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.Cache.Backend != models.CacheBackendRedis {
		fiberlog.Info("Using in-memory response cache")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 50
	opt.MinIdleConns = 10
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute
	opt.ConnMaxLifetime = 30 * time.Minute
	opt.DialTimeout = 10 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second
	opt.MaxRetries = 3
	opt.MinRetryBackoff = 8 * time.Millisecond
	opt.MaxRetryBackoff = 512 * time.Millisecond

	fiberlog.Debugf("Redis client configuration: PoolSize=%d, MinIdle=%d, MaxRetries=%d",
		opt.PoolSize, opt.MinIdleConns, opt.MaxRetries)

	return testRedisConnectionWithRetry(redis.NewClient(opt))
}

func testRedisConnectionWithRetry(client *redis.Client) (*redis.Client, error) {
	const maxAttempts = 3
	const baseDelay = 1 * time.Second

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx).Err()
		cancel()

		if err == nil {
			fiberlog.Infof("Redis connection established successfully (attempt %d/%d)", attempt, maxAttempts)
			return client, nil
		}

		fiberlog.Warnf("Redis connection failed (attempt %d/%d): %v", attempt, maxAttempts, err)

		if attempt < maxAttempts {
			delay := time.Duration(attempt) * baseDelay
			fiberlog.Infof("Retrying Redis connection in %v...", delay)
			time.Sleep(delay)
		}
	}

	if err := client.Close(); err != nil {
		fiberlog.Errorf("Failed to close Redis client after connection failures: %v", err)
	}

	return nil, fmt.Errorf("failed to connect to Redis after %d attempts", maxAttempts)
}

func initializeInfrastructure(cfg *config.Config) (*serverInfrastructure, error) {
	infra := &serverInfrastructure{}

	redisClient, err := createRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis client: %w", err)
	}
	infra.redis = redisClient

	if cfg.Database == nil {
		fiberlog.Info("Database not configured - resolution log disabled")
		return infra, nil
	}

	db, err := database.New(*cfg.Database)
	if err != nil {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	infra.db = db
	fiberlog.Infof("Database (%s) initialized successfully", db.DriverName())

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	fiberlog.Info("Database migrations completed successfully")

	return infra, nil
}

func initializeServices(cfg *config.Config, infra *serverInfrastructure) (*serverServices, error) {
	candidates, err := select_model.ParseCandidates(cfg.Models.Candidates)
	if err != nil {
		return nil, fmt.Errorf("invalid model candidates: %w", err)
	}

	registry := provider.NewRegistryFromConfig(cfg)
	selector := select_model.NewService(candidates, registry,
		select_model.NewGenerationProber(registry, cfg.Models.ProbePrompt),
		select_model.Options{
			MaxCandidates: cfg.Models.MaxCandidates,
			MemoTTL:       cfg.MemoTTL(),
		})

	responseCache := cache.NewMemory(cfg.CacheTTL(), cache.SystemClock)
	if infra.redis != nil {
		responseCache = cache.New(cache.NewRedisStore(infra.redis, cfg.Cache.KeyPrefix, cfg.CacheTTL()))
	}

	svcs := &serverServices{
		registry:    registry,
		selector:    selector,
		cache:       responseCache,
		translation: translation.NewService(cfg.Translation, cfg.TranslationTimeout()),
	}

	var opts []letters.Option
	if infra.db != nil {
		workers := resolutionWorkers
		if infra.db.DriverName() == "sqlite3" {
			// sqlite allows a single writer
			workers = 1
		}
		svcs.usage = usage.NewService(infra.db.DB)
		svcs.worker = usage.NewWorker(svcs.usage, workers, resolutionBuffer)
		opts = append(opts, letters.WithRecorder(svcs.worker))
	}
	svcs.letters = letters.NewService(responseCache, selector, opts...)

	return svcs, nil
}

func setupRoutes(app *fiber.App, cfg *config.Config, svcs *serverServices, db *database.DB) {
	reqSvc := request.NewBaseService()
	respSvc := response.NewBaseService()

	app.Use(middleware.RequestID(reqSvc))

	healthHandler := api.NewHealthHandler(svcs.cache, db, svcs.registry)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	lettersHandler := api.NewLettersHandler(reqSvc, respSvc, svcs.letters)
	translateHandler := api.NewTranslateHandler(reqSvc, respSvc, svcs.translation)
	debugHandler := api.NewDebugHandler(reqSvc, respSvc, svcs.letters)
	modelsHandler := api.NewModelsHandler(respSvc, svcs.selector)

	apiGroup := app.Group("/api")
	apiGroup.Post("/generate-letter", lettersHandler.GenerateLetter)
	apiGroup.Post("/evaluate-letter", lettersHandler.EvaluateLetter)
	apiGroup.Post("/field-suggestion", lettersHandler.SuggestField)
	apiGroup.Post("/translate", translateHandler.Translate)
	apiGroup.Post("/debug/json", debugHandler.DebugJSON)
	apiGroup.Get("/models", modelsHandler.ListModels)

	if cfg.Server.AdminToken == "" {
		fiberlog.Info("Admin token not configured - /admin routes disabled")
	} else {
		adminHandler := api.NewAdminHandler(respSvc, svcs.letters, svcs.usage)
		adminGroup := app.Group("/admin", middleware.NewAdminAuth(cfg.Server.AdminToken, respSvc).RequireToken())
		adminGroup.Delete("/cache", adminHandler.ClearCache)
		adminGroup.Get("/resolutions", adminHandler.Resolutions)
	}

	app.Get("/", welcomeHandler())
}

func welcomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":    "Welcome to the cover letter API!",
			"version":    "1.0.0",
			"go_version": runtime.Version(),
			"status":     "running",
			"endpoints": fiber.Map{
				"generate_letter":  "/api/generate-letter",
				"evaluate_letter":  "/api/evaluate-letter",
				"field_suggestion": "/api/field-suggestion",
				"translate":        "/api/translate",
				"models":           "/api/models",
				"health":           "/health",
			},
		})
	}
}
