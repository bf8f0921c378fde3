package routes

import (
	"jobhub/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func PublicApi(router *gin.Engine) *gin.RouterGroup {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	publicEndpoints := router.Group("/api/v1/")
	{
		// Интроспекция гео-шардинга
		publicEndpoints.GET("shards", handlers.ShardsList)
		publicEndpoints.GET("shards/resolve", handlers.ShardResolve)
		publicEndpoints.GET("shards/stats", handlers.ShardStats)
	}
	return publicEndpoints
}
