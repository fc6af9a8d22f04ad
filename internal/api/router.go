package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/tripsheet-backend-go/internal/config"
	"github.com/jengzang/tripsheet-backend-go/internal/handler"
	"github.com/jengzang/tripsheet-backend-go/internal/middleware"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Itinerary *handler.ItineraryHandler
	Geocode   *handler.GeocodeHandler
	Settings  *handler.SettingsHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trip Sheet Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 行程相关接口
		itinerary := api.Group("/itinerary")
		{
			itinerary.GET("", h.Itinerary.Get)
			itinerary.GET("/stats", h.Itinerary.Stats)
			itinerary.GET("/annotations", h.Itinerary.Annotations)
		}

		// 地理编码接口（上游限速，入口同样限流）
		geocode := api.Group("/geocode")
		geocode.Use(middleware.RateLimit(30, time.Minute))
		{
			geocode.POST("", h.Geocode.Lookup)
			geocode.POST("/batch", h.Geocode.Batch)
		}

		// 配置接口
		settings := api.Group("/settings")
		{
			settings.GET("", h.Settings.Get)
			settings.PUT("", middleware.Auth(cfg.JWTSecret), h.Settings.Update)
		}
	}

	return r
}
