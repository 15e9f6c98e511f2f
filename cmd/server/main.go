package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"case_track_app_go/config"
	"case_track_app_go/db"
	"case_track_app_go/handlers"
	"case_track_app_go/models"
	"case_track_app_go/services"
	"case_track_app_go/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the in-memory database
	conn, err := db.Initialize(cfg.Environment)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close(conn)

	// Run migrations
	if err := db.AutoMigrate(conn, &models.Case{}); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Wire the store into the request handlers; nothing holds it globally
	store := services.NewCaseStore(conn)
	importer := services.NewCaseImporter(store, logger)
	h := handlers.New(store, importer, logger)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	renderer, err := templates.NewRenderer()
	if err != nil {
		logger.Fatal("failed to load templates", zap.Error(err))
	}
	e.Renderer = renderer

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(requestLogger(logger))

	// Static files
	e.Static("/static", "static")

	// Routes
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/dashboard")
	})
	e.GET("/dashboard", h.Dashboard)

	e.GET("/cases/new", h.NewCaseForm)
	e.POST("/cases/new", h.CreateCase)
	e.GET("/cases/:id/edit", h.EditCaseForm)
	e.POST("/cases/:id/edit", h.UpdateCase)
	// Deletion only via POST so a crawler or prefetch can never trigger it
	e.POST("/cases/:id/delete", h.DeleteCase)

	e.GET("/cases/import", h.ImportForm)
	e.POST("/cases/import", h.ImportCases)
	e.GET("/cases/import/template", h.ImportTemplate)
	e.GET("/cases/export", h.ExportCases)

	// Start server
	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// requestLogger bridges echo's request logging into zap
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
