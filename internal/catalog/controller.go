package catalog

import (
	"net/http"

	"glambook/internal/shared/constants"
	"glambook/internal/shared/utils/response"
	"glambook/pkg/cache"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	catalog *Catalog
	cache   cache.Service
}

func NewController(catalog *Catalog, cacheService cache.Service) *Controller {
	return &Controller{
		catalog: catalog,
		cache:   cacheService,
	}
}

// GetCatalog handles GET /api/v1/catalog
// Returns the full service/price reference data the booking form renders from.
func (c *Controller) GetCatalog(ctx *gin.Context) {
	if c.cache != nil {
		var cached Catalog
		err := c.cache.GetOrSet(ctx.Request.Context(), constants.CACHE_KEY_CATALOG, constants.TTL_CATALOG,
			func() (interface{}, error) {
				return c.catalog, nil
			}, &cached)
		if err == nil {
			response.Success(ctx, http.StatusOK, "Catalog retrieved successfully", cached)
			return
		}
		// Redis down: serve from memory.
	}

	response.Success(ctx, http.StatusOK, "Catalog retrieved successfully", c.catalog)
}
