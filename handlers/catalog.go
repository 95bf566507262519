package handlers

import (
	"net/http"

	catalogRepo "roomly/database/repository/catalog"
	"roomly/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only configuration the booking UI needs.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
}

func NewCatalogHandler(catalog catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// ListPackages handles GET /api/packages.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.Catalog.ListPackages(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// ListExtras handles GET /api/extras.
func (h *CatalogHandler) ListExtras(c *gin.Context) {
	items, err := h.Catalog.ListExtraItems(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load extra items", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"extras": items})
}

// Healthz handles GET /healthz.
func Healthz(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
