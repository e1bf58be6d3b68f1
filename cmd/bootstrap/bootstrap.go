package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codingwithstephen/gp-surgery-mobile/config"
	deliveryHttp "github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/handler"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/middleware"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/infrastructure/cache"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/infrastructure/database"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/repository"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/service"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/usecase"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/jwt"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	setLogLevel(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.WithField("driver", cfg.DB.Driver).Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func setLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, keeping %s", level, logrus.GetLevel())
		return
	}
	logrus.SetLevel(parsed)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	gate := service.NewGate(log, service.DefaultRolePolicy())
	auditService := service.NewAuditService(log, auditLogRepo)
	rateLimiter := service.NewRateLimiter(redisClient, cfg.RateLimit)
	tokenRegistry := service.NewTokenRegistry(redisClient)

	deps := usecase.Deps{
		DB:            db,
		Log:           log,
		Validator:     validator.NewValidator(),
		Lookup:        usecase.NewRuleLookup(db, patientRepo, doctorRepo, appointmentRepo, medicalRecordRepo),
		Gate:          gate,
		AuditService:  auditService,
		MaskForbidden: cfg.Auth.MaskForbidden,
	}

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(deps, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(deps, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(deps, appointmentRepo)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(deps, medicalRecordRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, gate, auditLogRepo)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, log)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, log)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, log)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase, log)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, log)
	userHandler := handler.NewUserHandler()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenRegistry, cfg.Auth.CheckRevocation, log)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimiter, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	requestLogger := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		patientHandler,
		doctorHandler,
		appointmentHandler,
		medicalRecordHandler,
		auditLogHandler,
		userHandler,
		authMiddleware,
		rateLimitMiddleware,
		corsMiddleware,
		requestLogger,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
