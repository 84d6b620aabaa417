package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/employeeapp/employee-system/docs"
	"github.com/employeeapp/employee-system/internal/api/handler"
	"github.com/employeeapp/employee-system/internal/api/middleware"
	"github.com/employeeapp/employee-system/internal/core/domain"
	"github.com/employeeapp/employee-system/internal/core/service"
	"github.com/employeeapp/employee-system/internal/infrastructure/config"
	mongodb "github.com/employeeapp/employee-system/internal/infrastructure/db/mongo"
	redisdb "github.com/employeeapp/employee-system/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered.
//
// Route authorization is declared statically here: /auth/* and the probes
// bypass auth entirely, employee reads need any authenticated role, employee
// writes and all of /api/users need admin.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("employee_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	hasher := service.NewBcryptHasher(0)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxFailures, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, hasher, tokens, throttle, log)
	userService := service.NewUserService(userRepo, hasher, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	requireAuth := middleware.Auth(tokens)
	anyRole := middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes (no token required) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Identity echo for authenticated clients ---
	e.GET("/api/me", authHandler.Me, requireAuth)

	// --- Employee routes ---
	employees := e.Group("/api/employees", requireAuth)
	employees.GET("", employeeHandler.List, anyRole)
	employees.GET("/:id", employeeHandler.Get, anyRole)
	employees.GET("/department/:department", employeeHandler.ListByDepartment, anyRole)
	employees.POST("", employeeHandler.Create, adminOnly)
	employees.PUT("/:id", employeeHandler.Update, adminOnly)
	employees.DELETE("/:id", employeeHandler.Delete, adminOnly)

	// --- User management routes (admin only) ---
	users := e.Group("/api/users", requireAuth, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.UpdateEmail)
	users.PUT("/:id/role", userHandler.SetRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
