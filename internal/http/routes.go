package http

import (
	"insect_duel/internal/config"
	"insect_duel/internal/http/handlers"
	"insect_duel/internal/http/middleware"
	"insect_duel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the engine with middleware, ops endpoints and game routes.
func NewRouter(cfg *config.Config, gameService *service.GameService, version string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog(), middleware.CORS())

	RegisterRoutes(r, cfg, gameService, version)
	return r
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, gameService *service.GameService, version string) {
	h := handlers.NewHandler(gameService)

	storeName := "memory"
	if middleware.RedisEnabled() {
		storeName = "redis"
	}
	healthHandler := handlers.NewHealthHandler(storeName, middleware.PingRedis, version)

	// Health checks and metrics (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow())

	root := r.Group("")
	root.Use(rl)
	registerGameRoutes(root, h)

	v1 := r.Group("/api/v1")
	v1.Use(rl)
	registerGameRoutes(v1, h)

	// Legacy paths still used by the first web client
	legacy := r.Group("/api/py")
	legacy.Use(rl)
	{
		legacy.GET("/new_game", h.NewGame)
		legacy.POST("/compare", h.Compare)
		legacy.POST("/calculate_final_result", h.Finalize)
	}
}

func registerGameRoutes(g *gin.RouterGroup, h *handlers.Handler) {
	g.GET("/new-game", h.NewGame)
	g.GET("/decks", h.Decks)
	g.POST("/compare", h.Compare)
	g.POST("/finalize", h.Finalize)
}
