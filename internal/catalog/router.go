package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures the public catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/catalog", controller.GetCatalog) // GET /api/v1/catalog
}
