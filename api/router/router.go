package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"viralpack/api/handlers"
	"viralpack/auth"
	"viralpack/config"
	"viralpack/db"
	"viralpack/eventbus"
	"viralpack/middleware"
	"viralpack/repositories"
	"viralpack/services"
)

// New assembles the gin engine: middleware, services and routes.
// The beta token manager is required; without a cookie secret the
// generation endpoint cannot be gated.
func New(cfg config.AppConfig, bus eventbus.EventBus, tokens *auth.BetaTokenManager) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	api := r.Group("/api/v1")
	{
		database := db.Database()

		betaSvc := services.NewBetaServiceFromEnv(tokens)
		api.POST("/beta/verify", handlers.VerifyBetaKeyHandler(betaSvc))

		waitlistSvc := services.NewWaitlistService(repositories.NewWaitlistRepository(database), bus)
		api.POST("/waitlist", handlers.WaitlistHandler(waitlistSvc))

		produceSvc := services.NewProduceServiceFromEnv(
			cfg,
			repositories.NewAILogRepository(database),
			repositories.NewPackRepository(database),
			bus,
		)
		api.POST("/produce", middleware.BetaGate(tokens), handlers.ProduceHandler(produceSvc))
	}

	return r
}

// corsMiddleware wraps rs/cors for gin. The generator page runs in a
// browser, so preflight must be answered before the beta gate.
func corsMiddleware() gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	})
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
