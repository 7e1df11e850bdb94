package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "school-cms/docs"
	"school-cms/interfaces/api/handlers"
	"school-cms/interfaces/api/middleware"
	"school-cms/interfaces/api/routes"
	"school-cms/pkg/di"
	"school-cms/pkg/logger"
	"school-cms/pkg/scalar"
)

func main() {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}
	if err := logger.Init(logDir, true); err != nil {
		fmt.Printf("Warning: Failed to initialize logger: %v\n", err)
	}
	logger.Startup("logger_init", "Logger initialized", map[string]interface{}{"dir": logDir})

	container := di.NewContainer()
	if err := container.Initialize(); err != nil {
		logger.StartupError("container_init_failed", "Failed to initialize container", err, nil)
		os.Exit(1)
	}

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
		// Behind the school's reverse proxy the client address is in X-Forwarded-For
		ProxyHeader: fiber.HeaderXForwardedFor,
	})

	setupGracefulShutdown(app, container)

	app.Use(recover.New())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(&cfg.CORS))

	h := handlers.NewHandlers(container.GetHandlerServices(), container.GetHandlerInfrastructure(), cfg)
	routes.SetupRoutes(app, h, cfg, container.LimiterStorage)
	scalar.SetupRoutes(app, scalar.Config{Title: cfg.App.Name + " API"})

	port := cfg.App.Port
	logger.Startup("server_starting", "Server starting", map[string]interface{}{
		"port":        port,
		"environment": cfg.App.Env,
		"health":      fmt.Sprintf("http://localhost:%s/health", port),
		"api":         fmt.Sprintf("http://localhost:%s/api/v1", port),
		"docs":        fmt.Sprintf("http://localhost:%s/docs", port),
		"track_view":  fmt.Sprintf("http://localhost:%s/api/track-view", port),
		"websocket":   fmt.Sprintf("ws://localhost:%s/ws/notifications", port),
	})

	if err := app.Listen(":" + port); err != nil {
		logger.StartupError("server_failed", "Server failed to start", err, nil)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Startup("shutdown_started", "Gracefully shutting down", nil)

		if err := app.Shutdown(); err != nil {
			logger.StartupError("server_shutdown_failed", "Error stopping server", err, nil)
		}
		if err := container.Cleanup(); err != nil {
			logger.StartupError("cleanup_failed", "Error during cleanup", err, nil)
		}

		logger.Startup("shutdown_complete", "Shutdown complete", nil)
		logger.Default().Close()
		os.Exit(0)
	}()
}
