package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/schoolspace/classroom-reservation/internal/api/handler"
	"github.com/schoolspace/classroom-reservation/internal/api/middleware"
	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/service"
	"github.com/schoolspace/classroom-reservation/internal/infrastructure/config"
	postgresdb "github.com/schoolspace/classroom-reservation/internal/infrastructure/db/postgres"
	redisdb "github.com/schoolspace/classroom-reservation/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := postgresdb.NewUserRepository(db)
	classroomRepo := postgresdb.NewClassroomRepository(db)
	reservationRepo := postgresdb.NewReservationRepository(db)
	classroomCache := redisdb.NewClassroomCache(rdb, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo)
	classroomService := service.NewClassroomService(classroomRepo, classroomCache, log)
	reservationService := service.NewReservationService(reservationRepo, classroomRepo, log)
	exportService := service.NewExportService(reservationRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	classroomHandler := handler.NewClassroomHandler(classroomService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	exportHandler := handler.NewExportHandler(exportService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminMW := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Classroom routes ---
	e.GET("/api/classrooms", classroomHandler.List)
	e.POST("/api/classrooms", classroomHandler.Create, authMW, adminMW)
	e.PUT("/api/classrooms/:id", classroomHandler.Update, authMW, adminMW)
	e.DELETE("/api/classrooms/:id", classroomHandler.Delete, authMW, adminMW)

	// --- Reservation routes ---
	e.GET("/api/reservations", reservationHandler.List)
	e.GET("/api/reservations/my", reservationHandler.ListMine, authMW)
	e.POST("/api/reservations", reservationHandler.Create, authMW)
	e.DELETE("/api/reservations/:id", reservationHandler.Delete, authMW)
	e.POST("/api/reservations/batch", reservationHandler.BatchLock, authMW, adminMW)
	e.DELETE("/api/reservations/batch/:batch_id", reservationHandler.DeleteBatch, authMW, adminMW)
	e.GET("/api/reservations/export", exportHandler.Export, authMW, adminMW)

	// --- User administration routes ---
	users := e.Group("/api/users", authMW, adminMW)
	users.GET("", userHandler.List)
	users.GET("/pending", userHandler.ListPending)
	users.POST("", userHandler.Create)
	users.PUT("/:id/approve", userHandler.Approve)
	users.PUT("/:id/password", userHandler.ResetPassword)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
