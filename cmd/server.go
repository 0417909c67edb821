package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerbuddy/compass/market/chat/chatapi"
	"github.com/careerbuddy/compass/market/insight/insightapi"
	"github.com/careerbuddy/compass/market/match/matchapi"
	"github.com/careerbuddy/compass/market/news/newsapi"
	"github.com/careerbuddy/compass/market/posting/postingapi"
	"github.com/careerbuddy/compass/pkg/errx"
	"github.com/careerbuddy/compass/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.ParseLevel(os.Getenv("LOG_LEVEL")))
	logx.Info("Starting CareerBuddy Market API...")

	// 2. Initialize Dependency Container
	container := NewContainer()
	defer container.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "CareerBuddy Market API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Per-caller request cap; excess requests are rejected before they
	// reach the services below.
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status":   "ok",
			"provider": container.JobProvider.Configured(),
		}
		if container.Redis != nil {
			status["redis"] = container.Redis.Ping(c.Context()).Err() == nil
		}
		return c.JSON(status)
	})

	// 6. Register Routes

	// Jobs: /api/jobs/search
	postingapi.RegisterRoutes(app, container.PostingHandlers)

	// Recommendations: /api/jobs/recommendations
	matchapi.RegisterRoutes(app, container.MatchHandlers)

	// Market data: /api/salaries, /api/skills/trends, /api/companies, /api/market/stats
	insightapi.RegisterRoutes(app, container.InsightHandlers)

	// Headlines: /api/news
	newsapi.RegisterRoutes(app, container.NewsHandlers)

	// Assistant: /chat
	chatapi.RegisterRoutes(app, container.ChatHandlers)

	// 7. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		logx.Infof("Server listening on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
