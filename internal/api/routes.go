package api

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Akshat3144/safespace-api/internal/storage"
)

// NewRouter builds the gin engine with middleware and every API route.
func NewRouter(store storage.Storage, logger *logrus.Logger, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(logger), Recovery(logger), cors.New(corsConfig(allowOrigins)))

	SetupRoutes(router, NewHandler(store, logger))
	return router
}

func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.Health)

	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetProperties)
		api.GET("/properties/:id", handler.GetProperty)
		api.POST("/properties", handler.CreateProperty)

		api.GET("/neighborhoods", handler.GetNeighborhoods)
		api.GET("/neighborhoods/:id", handler.GetNeighborhood)
		api.POST("/neighborhoods", handler.CreateNeighborhood)

		api.GET("/compare/:userId", handler.GetCompareList)
		api.POST("/compare", handler.AddToCompareList)
		api.DELETE("/compare/:id", handler.RemoveFromCompareList)

		api.GET("/nearest-neighborhood", handler.GetNearestNeighborhood)
		api.GET("/geojson/properties", handler.GetPropertiesGeoJSON)
		api.GET("/geojson/neighborhoods", handler.GetNeighborhoodsGeoJSON)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

func corsConfig(allowOrigins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.ExposeHeaders = []string{"X-Request-ID"}

	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
	}
	return config
}
