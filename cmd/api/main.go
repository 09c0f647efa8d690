package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finza/finza-backend/internal/config"
	"github.com/finza/finza-backend/internal/handler"
	"github.com/finza/finza-backend/internal/middleware"
	"github.com/finza/finza-backend/internal/repository/ledger"
	"github.com/finza/finza-backend/internal/repository/postgres"
	"github.com/finza/finza-backend/internal/repository/storage"
	"github.com/finza/finza-backend/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Pick the backing medium: Postgres when DATABASE_URL is set,
	// otherwise the local data file
	var kv storage.KV
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to ping database")
		}

		kv, err = postgres.NewKV(context.Background(), pool)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Postgres store")
		}
		log.Info().Msg("Using Postgres store")
	} else {
		kv = storage.NewFileKV(cfg.DataFile)
		log.Info().Str("path", cfg.DataFile).Msg("Using file store")
	}

	// Initialize repositories
	ledgerRepo := ledger.New(kv)

	// Receipt storage is optional
	var receiptRepo storage.ReceiptRepository
	if cfg.S3.Enabled() {
		repo, err := storage.NewS3ReceiptRepository(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize receipt storage")
		}
		receiptRepo = repo
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Receipt storage enabled")
	}

	// Initialize services
	ledgerService := service.NewLedgerService(ledgerRepo)
	calcService := service.NewCalculationService(ledgerRepo, ledgerRepo)
	notificationService := service.NewNotificationService()
	dashboardService := service.NewDashboardService(calcService, notificationService)
	billService := service.NewBillService(ledgerRepo)
	receiptService := service.NewReceiptService(receiptRepo, ledgerRepo)

	// Auth is optional for single-user local setups
	var authMiddleware *middleware.AuthMiddleware
	if cfg.Auth0Domain != "" {
		authMiddleware, err = middleware.NewAuthMiddleware(cfg.Auth0Domain, cfg.Auth0Audience)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth middleware")
		}
	} else {
		log.Warn().Msg("AUTH0_DOMAIN not set, serving API without authentication")
	}

	// Initialize handlers
	monthHandler := handler.NewMonthHandler(ledgerService, calcService)
	transactionHandler := handler.NewTransactionHandler(ledgerService, calcService)
	expenseHandler := handler.NewExpenseHandler(ledgerService)
	billHandler := handler.NewBillHandler(billService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	receiptHandler := handler.NewReceiptHandler(receiptService)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Per-IP rate limiting
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes and swagger UI
	handler.RegisterRoutes(e, authMiddleware, monthHandler, transactionHandler, expenseHandler, billHandler, dashboardHandler, receiptHandler)
	handler.RegisterSwagger(e)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
