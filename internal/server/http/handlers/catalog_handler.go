package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sucan/ordertrack/internal/catalog"
	"github.com/sucan/ordertrack/internal/server/http/dto"
)

// CatalogHandler serves product search.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Search handles GET /api/search.
func (h *CatalogHandler) Search(c *gin.Context) {
	matches := h.facade.SearchProducts(c.Query("q"))

	response := make([]dto.ProductResponse, 0, len(matches))
	for _, m := range matches {
		response = append(response, toProductResponse(m))
	}

	c.JSON(http.StatusOK, response)
}

func toProductResponse(m catalog.Match) dto.ProductResponse {
	return dto.ProductResponse{
		Code:           m.Code,
		Barcode:        m.Barcode,
		Name:           m.Name,
		Manufacturer:   m.Manufacturer,
		Brand:          m.Brand,
		ProductType:    m.ProductType,
		ArrivalChannel: m.ArrivalChannel,
	}
}
