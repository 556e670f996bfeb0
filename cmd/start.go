package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"webhook-relay/core/config"
	"webhook-relay/core/dispatch"
	"webhook-relay/core/loader"
	"webhook-relay/core/logger"
	"webhook-relay/core/middleware/rayid"
	"webhook-relay/core/store"

	"webhook-relay/feature/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "webhook-relay/docs/swagger"
)

// @title Webhook Relay API
// @version 1.0
// @description API for registering webhook adapters and relaying payloads to their targets.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the webhook relay server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		})

		// 4. Initialize Record Store and Dispatcher
		recordStore := store.New(cfg.Store, logg)
		forwarder := dispatch.New(cfg.Dispatch, logg)

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(webhook.NewFeature(recordStore, forwarder, cfg.Server.BaseURL(), logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("store", cfg.Store.Path))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
