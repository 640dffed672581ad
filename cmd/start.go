package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fragment-loader/core/config"
	"fragment-loader/core/events"
	"fragment-loader/core/loader"
	"fragment-loader/core/logger"
	"fragment-loader/core/middleware/auth"
	"fragment-loader/core/middleware/rayid"
	"fragment-loader/feature/pages"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "fragment-loader/docs/swagger"
)

// @title Fragment Loader API
// @version 1.0
// @description Assembles pages from declared HTML fragments.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the fragment loader server",
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

		// 3. Initialize Fragment Source
		src, err := buildSource(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create fragment source", zap.Error(err))
		}

		bus := events.NewBus()
		bus.Subscribe(func(e events.Event) {
			logg.Debug("Fragment event", zap.String("event", e.Name))
		})

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(pages.NewFeature(src, cfg.Loader, cfg.Server.IndexPage, logg, bus))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("source", cfg.Source.Driver),
				zap.Bool("development", cfg.Loader.DevelopmentMode))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
