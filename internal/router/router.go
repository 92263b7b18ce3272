package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sofdesk/internal/config"
	"sofdesk/internal/handler"
	"sofdesk/internal/middleware"
	"sofdesk/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	sofH *handler.SOFHandler,
	voyageH *handler.VoyageHandler,
	chatH *handler.ChatHandler,
	lookupH *handler.LookupHandler,
	statsH *handler.StatsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RateLimit(cfg.RateLimit))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/token", authH.Token)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Statement of Facts
	sof := protected.Group("/sof")
	sof.POST("/upload", sofH.Upload)
	sof.POST("/parse", sofH.ParseText)
	sof.POST("/scenario", sofH.Scenario)
	sof.GET("/export/csv", sofH.ExportCSV)
	sof.GET("/export/xlsx", sofH.ExportXLSX)
	sof.GET("", sofH.List)
	sof.GET("/:id", sofH.GetByID)
	sof.GET("/:id/compliance", sofH.Compliance)
	sof.GET("/:id/explanation", sofH.Explanation)
	sof.DELETE("/:id", sofH.Delete)

	// Voyage tracking
	voyages := protected.Group("/voyages")
	voyages.POST("", voyageH.Create)
	voyages.GET("", voyageH.List)
	voyages.GET("/:id", voyageH.GetByID)
	voyages.PATCH("/:id/status", voyageH.UpdateStatus)

	// Assistant
	chat := protected.Group("/chat")
	chat.POST("", chatH.Ask)
	chat.GET("/history", chatH.History)

	// Reference data
	protected.GET("/ports", lookupH.ListPortsByCategory)
	protected.GET("/ports/:identifier", lookupH.GetPort)
	protected.GET("/weather/:port", lookupH.GetWeather)
	protected.POST("/navigation/route", lookupH.EstimateRoute)
	protected.POST("/carbon/estimate", lookupH.EstimateCarbon)
	protected.GET("/checklists", lookupH.ListChecklistStages)
	protected.GET("/checklists/:stage", lookupH.GetChecklist)

	// Stats
	protected.GET("/stats", statsH.GetStats)

	return r
}
