package cmd

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tokusound/config"
	"tokusound/handlers"
	"tokusound/middleware"
	"tokusound/services"
	"tokusound/websocket"
)

// StartWebServer starts the web server
func StartWebServer(cfg *config.Config) {
	// Set production mode if not specified
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the catalog once. A failed load is not fatal: the server runs
	// over an empty catalog and the error surfaces in responses.
	catalogService := services.NewCatalogService(cfg.DataFile)
	catalog, err := catalogService.Load()
	loadError := ""
	if err != nil {
		logrus.WithError(err).Error("catalog load failed, serving empty catalog")
		catalog = services.EmptyCatalog()
		loadError = "failed to load sound data"
	}

	// Initialize services
	hub := websocket.NewHub()
	go hub.Run()

	submissionService := services.NewSubmissionService(cfg.PublicDir)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalog, loadError)
	submitHandler := handlers.NewSubmitHandler(submissionService, hub)
	eventsHandler := handlers.NewEventsHandler(hub)
	healthHandler := handlers.NewHealthHandler(cfg)

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Logging())

	setupRoutes(r, catalogHandler, submitHandler, eventsHandler, healthHandler)

	logrus.WithField("addr", cfg.ListenAddr).Info("tokusound server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}

// setupRoutes configures all the HTTP routes
func setupRoutes(r *gin.Engine, catalogHandler *handlers.CatalogHandler, submitHandler *handlers.SubmitHandler, eventsHandler *handlers.EventsHandler, healthHandler *handlers.HealthHandler) {
	// Health check endpoint
	r.GET("/health", healthHandler.HealthCheck)

	// API routes group
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/status", healthHandler.APIStatus)

		// Catalog endpoints
		apiGroup.GET("/data", catalogHandler.GetCatalog)
		apiGroup.GET("/sounds", catalogHandler.GetSounds)
		apiGroup.GET("/tags", catalogHandler.GetTags)

		// Submission endpoint
		apiGroup.POST("/save-form", submitHandler.SaveForm)

		// WebSocket endpoints for submission events
		wsGroup := apiGroup.Group("/ws")
		{
			wsGroup.GET("/submissions", eventsHandler.SubscribeAll)
			wsGroup.GET("/submissions/:category", eventsHandler.SubscribeCategory)
		}
	}
}
