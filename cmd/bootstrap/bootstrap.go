package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-portal/config"
	"patient-portal/internal/booking"
	deliveryHttp "patient-portal/internal/delivery/http"
	"patient-portal/internal/delivery/http/handler"
	"patient-portal/internal/delivery/http/middleware"
	"patient-portal/internal/infrastructure/cache"
	"patient-portal/internal/infrastructure/storage"
	"patient-portal/internal/infrastructure/store"
	"patient-portal/internal/repository"
	"patient-portal/internal/service"
	"patient-portal/internal/session"
	"patient-portal/internal/usecase"
	"patient-portal/pkg/token"
	"patient-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Sessions    *session.Manager
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
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize durable client storage
	localStorage, err := storage.NewLocal(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open durable storage: %w", err)
	}

	// Initialize all layers
	server, sessions := initializeServer(cfg, redisClient, localStorage)
	app.Server = server
	app.Sessions = sessions

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client, localStorage *storage.Local) (*http.Server, *session.Manager) {
	// Initialize logger and validator
	log := logrus.StandardLogger()
	customValidator := validator.NewValidator()

	// Initialize the seeded record store and repositories
	recordStore := store.New()
	doctorRepo := repository.NewDoctorRepository(recordStore)
	appointmentRepo := repository.NewAppointmentRepository(recordStore)
	medicalRecordRepo := repository.NewMedicalRecordRepository(recordStore)

	// Initialize redis-backed services
	registry := token.NewRegistry(redisClient, cfg.Mock.SessionTTL, log)
	appointmentCache := service.NewAppointmentCache(redisClient, log)

	// Initialize usecases (the simulated service boundary)
	scale := cfg.Mock.LatencyScale
	authUsecase := usecase.NewAuthUsecase(log, registry, scale)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, scale)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, appointmentCache, scale)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(log, medicalRecordRepo, scale)

	// Initialize the process-wide session and hydrate it from storage
	sessions := session.NewManager(authUsecase, localStorage, log)
	sessions.Hydrate(context.Background())

	// Initialize the booking wizard
	workflow := booking.NewWorkflow(appointmentUsecase, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(sessions, authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, recordStore)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, workflow)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase)
	bookingHandler := handler.NewBookingHandler(workflow, doctorUsecase, sessions)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(registry)
	corsMiddleware := middleware.NewCORSMiddleware("")

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, doctorHandler, appointmentHandler, medicalRecordHandler, bookingHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, sessions
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

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
