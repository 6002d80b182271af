package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"atsresume/config"
	"atsresume/handlers"
	"atsresume/middleware"
	"atsresume/services"
	"atsresume/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()
	logger := utils.NewLogger()

	engine := services.NewChromeEngine(cfg.Renderer.ChromePath, cfg.Renderer.RenderTimeout)
	renderer := services.NewRenderService(engine)
	resumeHandler := handlers.NewResumeHandler(renderer, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.AllowedOrigins
	r.Use(middleware.CORS(corsConfig))
	r.Use(middleware.MaxRequestSize(cfg.Limits.MaxRequestBytes))

	generalLimiter := middleware.NewRateLimiter(cfg.Limits.GeneralPerMinute, time.Minute)
	renderLimiter := middleware.NewRateLimiter(cfg.Limits.RenderPerMinute, time.Minute)
	renderCache := middleware.NewResponseCache(cfg.Limits.CacheTTL)

	api := r.Group("/api", generalLimiter.Limit())
	api.GET("/health", handlers.Health)
	api.POST("/resume/segment", middleware.ValidateJSON(), resumeHandler.Segment)
	api.POST("/resume/generate", middleware.ValidateJSON(), renderLimiter.Limit(), renderCache.Cache(), resumeHandler.Generate)

	logger.Info("Starting ATS resume service", map[string]any{"port": cfg.Port, "environment": cfg.Environment})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
