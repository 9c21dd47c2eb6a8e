package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teamatlas/people-directory/internal/api/handler"
	"github.com/teamatlas/people-directory/internal/api/middleware"
	"github.com/teamatlas/people-directory/internal/core/domain"
	"github.com/teamatlas/people-directory/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(authService ports.AuthService, directory ports.DirectoryService, db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(directory)

	// --- Auth routes ---
	e.POST("/sign-up", authHandler.SignUp)
	e.POST("/sign-in", authHandler.SignIn)

	// --- Directory routes ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.PATCH("/users/:id", userHandler.Update)

	// Role changes are the one gated operation: the flat role tag from the
	// token decides access, nothing finer-grained.
	e.PATCH("/users/:id/role", userHandler.UpdateRole,
		middleware.Auth(jwtSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleHR),
	)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
