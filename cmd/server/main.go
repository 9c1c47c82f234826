package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	collectionapp "github.com/Tecnavis/paycollection/internal/application/collection"
	identityapp "github.com/Tecnavis/paycollection/internal/application/identity"
	ledgerapp "github.com/Tecnavis/paycollection/internal/application/ledger"
	partnerapp "github.com/Tecnavis/paycollection/internal/application/partner"
	"github.com/Tecnavis/paycollection/internal/infrastructure/auth"
	"github.com/Tecnavis/paycollection/internal/infrastructure/config"
	"github.com/Tecnavis/paycollection/internal/infrastructure/logger"
	"github.com/Tecnavis/paycollection/internal/infrastructure/persistence"
	"github.com/Tecnavis/paycollection/internal/interfaces/http/handler"
	"github.com/Tecnavis/paycollection/internal/interfaces/http/middleware"
	"github.com/Tecnavis/paycollection/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting collection backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	schemeRepo := persistence.NewGormSchemeRepository(db.DB)
	enrollmentRepo := persistence.NewGormEnrollmentRepository(db.DB)
	entryRepo := persistence.NewGormCollectionEntryRepository(db.DB)
	ledgerEntryRepo := persistence.NewGormLedgerEntryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	agentRepo := persistence.NewGormAgentRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	schemeService := collectionapp.NewSchemeService(schemeRepo, enrollmentRepo)
	enrollmentService := collectionapp.NewEnrollmentService(enrollmentRepo, schemeRepo, entryRepo, customerRepo)
	entryService := collectionapp.NewEntryService(entryRepo, enrollmentRepo, schemeRepo)
	ledgerService := ledgerapp.NewLedgerService(ledgerEntryRepo)
	customerService := partnerapp.NewCustomerService(customerRepo, agentRepo, enrollmentRepo)
	agentService := partnerapp.NewAgentService(agentRepo, customerRepo)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)

	// HTTP handlers
	schemeHandler := handler.NewSchemeHandler(schemeService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	entryHandler := handler.NewEntryHandler(entryService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	customerHandler := handler.NewCustomerHandler(customerService)
	agentHandler := handler.NewAgentHandler(agentService)
	authHandler := handler.NewAuthHandler(authService)
	systemHandler := handler.NewSystemHandler()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, panic recovery, request
	// logging, security headers, CORS, body limit, rate limiting.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoints (outside API versioning). Readiness shares the
	// liveness handler: the service is ready once the database answers.
	engine.GET("/health", healthHandler(db, log))
	engine.GET("/health/ready", healthHandler(db, log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Auth routes (public, tighter rate limit against credential stuffing)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.RateLimitByKey(authLimiter, func(c *gin.Context) string {
			return c.ClientIP()
		}))
	}
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)

	// Identity routes (protected)
	identityRoutes := router.NewDomainGroup("identity", "/identity")
	identityRoutes.GET("/auth/me", authHandler.GetCurrentUser)
	identityRoutes.PUT("/auth/password", authHandler.ChangePassword)
	identityRoutes.POST("/users", middleware.RequireRole("admin"), authHandler.CreateUser)

	// Collection domain (schemes, enrollments, payment entries)
	collectionRoutes := router.NewDomainGroup("collection", "/collection")
	collectionRoutes.POST("/schemes", schemeHandler.Create)
	collectionRoutes.GET("/schemes", schemeHandler.List)
	collectionRoutes.GET("/schemes/:id", schemeHandler.GetByID)
	collectionRoutes.PUT("/schemes/:id", schemeHandler.Update)
	collectionRoutes.POST("/schemes/:id/deactivate", schemeHandler.Deactivate)
	collectionRoutes.DELETE("/schemes/:id", schemeHandler.Delete)
	collectionRoutes.GET("/schemes/:id/enrollments", enrollmentHandler.ListByScheme)

	collectionRoutes.POST("/enrollments", enrollmentHandler.Enroll)
	collectionRoutes.GET("/enrollments/:id", enrollmentHandler.GetByID)
	collectionRoutes.POST("/enrollments/:id/close", enrollmentHandler.Close)
	collectionRoutes.DELETE("/enrollments/:id", enrollmentHandler.Delete)
	collectionRoutes.GET("/enrollments/:id/entries", entryHandler.ListByEnrollment)

	collectionRoutes.POST("/entries", entryHandler.Record)
	collectionRoutes.GET("/entries/:id", entryHandler.GetByID)
	collectionRoutes.PUT("/entries/:id", entryHandler.Amend)
	collectionRoutes.DELETE("/entries/:id", entryHandler.Delete)

	// Partner domain (customers, agents)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.GetByID)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.POST("/customers/:id/deactivate", customerHandler.Deactivate)
	partnerRoutes.DELETE("/customers/:id", customerHandler.Delete)
	partnerRoutes.GET("/customers/:id/enrollments", enrollmentHandler.ListByCustomer)

	partnerRoutes.POST("/agents", agentHandler.Create)
	partnerRoutes.GET("/agents", agentHandler.List)
	partnerRoutes.GET("/agents/:id", agentHandler.GetByID)
	partnerRoutes.PUT("/agents/:id", agentHandler.Update)
	partnerRoutes.DELETE("/agents/:id", agentHandler.Delete)

	// Office ledger domain
	ledgerRoutes := router.NewDomainGroup("ledger", "/ledger")
	ledgerRoutes.POST("/entries", ledgerHandler.Create)
	ledgerRoutes.GET("/entries", ledgerHandler.List)
	ledgerRoutes.GET("/entries/:id", ledgerHandler.GetByID)
	ledgerRoutes.PUT("/entries/:id", ledgerHandler.Update)
	ledgerRoutes.DELETE("/entries/:id", ledgerHandler.Delete)
	ledgerRoutes.GET("/summary", ledgerHandler.Summarize)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	r.Register(authRoutes).
		Register(identityRoutes).
		Register(collectionRoutes).
		Register(partnerRoutes).
		Register(ledgerRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
