package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/adoptionsystem/adoption-api/docs"
	"github.com/adoptionsystem/adoption-api/internal/api/handler"
	"github.com/adoptionsystem/adoption-api/internal/api/middleware"
	"github.com/adoptionsystem/adoption-api/internal/core/service"
	"github.com/adoptionsystem/adoption-api/internal/infrastructure/config"
	mongodb "github.com/adoptionsystem/adoption-api/internal/infrastructure/db/mongo"
	redisdb "github.com/adoptionsystem/adoption-api/internal/infrastructure/db/redis"
	"github.com/adoptionsystem/adoption-api/internal/infrastructure/storage"
	"github.com/adoptionsystem/adoption-api/internal/pkg/password"
	"github.com/adoptionsystem/adoption-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("adoption"))

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	uploads, err := storage.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.MaxSize)
	if err != nil {
		return nil, err
	}

	hasher := password.NewHasher()
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	animalRepo := mongodb.NewAnimalRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, log)
	animalService := service.NewAnimalService(animalRepo, userRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, animalRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, uploads)
	userHandler := handler.NewUserHandler(userService)
	animalHandler := handler.NewAnimalHandler(animalService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/test", authHandler.Test, authRequired)

	// --- User routes ---
	users := e.Group("/api/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.PUT("/:id/password", userHandler.UpdatePassword, authRequired)
	users.DELETE("/:id", userHandler.Delete)

	// --- Animal routes ---
	animals := e.Group("/api/animals")
	animals.GET("", animalHandler.List)
	animals.GET("/:id", animalHandler.Get)
	animals.POST("", animalHandler.Create)
	animals.PUT("/:id", animalHandler.Update)
	animals.DELETE("/:id", animalHandler.Delete)

	// --- Appointment routes (session required) ---
	appointments := e.Group("/api/appointments", authRequired)
	appointments.GET("", appointmentHandler.List)
	appointments.GET("/:id", appointmentHandler.Get)
	appointments.POST("", appointmentHandler.Create)
	appointments.PUT("/:id", appointmentHandler.Update)
	appointments.DELETE("/:id", appointmentHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
