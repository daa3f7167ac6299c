package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// GET /catalog
// --------------------------------------------------
//

func (h *Handler) Get(c *gin.Context) {
	cat := h.service.Current()

	basePrices := gin.H{}
	offers := gin.H{}
	for _, size := range Sizes() {
		basePrices[string(size)] = cat.BasePrice(size)
		offers[string(size)] = cat.OfferRule(size)
	}

	c.JSON(http.StatusOK, gin.H{
		"toppings":    cat.Toppings(),
		"base_prices": basePrices,
		"offers":      offers,
	})
}

//
// --------------------------------------------------
// POST /admin/catalog/reload
// --------------------------------------------------
//

func (h *Handler) Reload(c *gin.Context) {
	cat, err := h.service.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog reload failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "catalog reloaded",
		"toppings": len(cat.Toppings()),
	})
}
