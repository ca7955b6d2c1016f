package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP router with all routes configured.
func NewServer(handler *Handler, version string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware, the frontend is served from a different origin
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, version)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, version string) {
	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)

	r.GET("/restaurants", handler.ListRestaurants)
	r.GET("/restaurants/types", handler.ListRestaurantTypes)
	r.GET("/restaurants/:id", handler.GetRestaurant)
	r.GET("/restaurants/:id/menu", handler.GetRestaurantMenu)

	r.GET("/items", handler.SearchItems)
	r.GET("/items/:id/prices", handler.GetItemPriceHistory)

	r.GET("/reports", handler.ListReports)
	r.POST("/reports", handler.CreateReport)
	r.POST("/prices", handler.CreatePrice)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Restorang",
			"version":     version,
			"description": "Restaurant menu and price catalog for Zagreb",
			"endpoints": map[string]string{
				"health":      "/health",
				"stats":       "/stats",
				"restaurants": "/restaurants?name=<q>&type=<t>&quarter=<q>",
				"types":       "/restaurants/types",
				"restaurant":  "/restaurants/<id>",
				"menu":        "/restaurants/<id>/menu",
				"items":       "/items?name=<q>",
				"prices":      "/items/<id>/prices",
				"reports":     "/reports (GET, POST)",
				"submit":      "/prices (POST)",
			},
		})
	})

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
