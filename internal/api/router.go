package api

import (
	"strings"
	"time"

	"mpesa-wrap/docs"
	"mpesa-wrap/internal/api/handlers"
	"mpesa-wrap/pkg/auth"
	"mpesa-wrap/pkg/config"
	"mpesa-wrap/pkg/metrics"
	"mpesa-wrap/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.Config,
	statementHandler *handlers.StatementHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(corsConfig(cfg.CORS)))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestID} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Swagger docs register themselves in init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}

	if jwtManager == nil {
		appLogger.Warn("AUTH_JWT_SECRET not set, statement routes are public")
	}
	requireToken := middleware.AuthMiddleware(jwtManager, appLogger)

	// Route used by the original web client
	app.Post("/process-statement", requireToken, statementHandler.ProcessStatement)

	api := app.Group("/api/v1", requireToken)
	statements := api.Group("/statements")
	statements.Post("/analyze", statementHandler.ProcessStatement)

	return app
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	origins := strings.Join(cfg.AllowOrigins, ",")
	if origins == "" {
		origins = "*"
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		// fiber rejects credentials combined with a wildcard origin
		AllowCredentials: origins != "*",
	}
}
