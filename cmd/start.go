package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"record-merger/core/config"
	"record-merger/core/database"
	"record-merger/core/loader"
	"record-merger/core/logger"
	"record-merger/core/middleware/auth"
	"record-merger/core/middleware/rayid"
	"record-merger/core/middleware/requestlog"
	"record-merger/core/storage"

	"record-merger/feature/product"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "record-merger/docs/swagger"
)

// @title Record Merger API
// @version 1.0
// @description API for reconciling a supplier product feed against the catalog database.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the record merger server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Database is optional; features without one stay disabled
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to catalog database",
				zap.String("driver", cfg.Database.Driver),
				zap.String("name", cfg.Database.Name),
			)
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		mgr := loader.NewManager()

		products, err := product.NewFeature(store, cfg.Storage.Bucket, logg, db, cfg.Reconcile)
		if err != nil {
			logg.Fatal("Failed to create products feature", zap.Error(err))
		}
		mgr.Register(products)

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(requestlog.New(logg))

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		if cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key not configured, requests are not authenticated")
		}

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

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
