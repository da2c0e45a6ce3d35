package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"bazar_api/api/docs"
	"bazar_api/internal/metrics"
	"bazar_api/internal/sales"
)

// InitRoutes registers the sales, status, docs and metrics endpoints on the given Gin engine.
// Sales and status live under basePath; docs and metrics are served from the root.
func InitRoutes(e *gin.Engine, salesService *sales.Service, logger *zap.Logger, basePath string) {
	e.Use(requestLogger(logger), metrics.Middleware(), corsMiddleware())

	salesHandler := NewSalesHandler(salesService, logger)

	g := e.Group(basePath)
	g.GET("/sales", salesHandler.handleListSales)
	g.POST("/sales", salesHandler.handleCreateSale)
	g.GET("/sales/statistics", salesHandler.handleSalesStatistics)
	g.DELETE("/sales/:saleId", salesHandler.handleDeleteSale)
	g.GET("/status", handleStatus)

	// the generated document carries the annotated base path; point it at the mounted one
	docs.SwaggerInfo.BasePath = basePath
	if basePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}
	e.GET("/api-docs/*any", swaggerHandler())
	e.GET("/metrics", gin.WrapH(metrics.Handler()))

	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route not found"})
	})
}

// swaggerHandler serves Swagger UI and doc.json, sending the bare directory to the UI page.
func swaggerHandler() gin.HandlerFunc {
	ui := ginSwagger.WrapHandler(swaggerFiles.Handler)
	return func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
			return
		}
		ui(c)
	}
}

// NewEngine builds a Gin engine with recovery and every route registered.
func NewEngine(salesService *sales.Service, logger *zap.Logger, basePath string) *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery())

	InitRoutes(e, salesService, logger, basePath)
	return e
}
