package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"alvezinc.backend/internal/domain/entities"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/internal/interfaces/http/response"
)

type shopService interface {
	ListProducts(ctx context.Context) ([]*entities.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*entities.ProductSearchResult, error)
}

// ShopHandler handles the product catalog endpoints
type ShopHandler struct {
	shopUsecase shopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopUsecase shopService) *ShopHandler {
	return &ShopHandler{shopUsecase: shopUsecase}
}

// ListProducts returns the full catalog
// GET /api/v1/shop
func (h *ShopHandler) ListProducts(c *gin.Context) {
	products, err := h.shopUsecase.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if products == nil {
		products = []*entities.Product{}
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// SearchProducts runs a ranked full-text search over the catalog.
// Results come back ordered by descending relevance; an empty match
// set is a normal 200, not an error.
// GET /api/v1/shop/search?q=<terms>
func (h *ShopHandler) SearchProducts(c *gin.Context) {
	var input entities.SearchProductsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	results, err := h.shopUsecase.SearchProducts(c.Request.Context(), input.Query)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) {
			response.Error(c, domainerrors.BadRequest("invalid search query"))
			return
		}
		response.Error(c, err)
		return
	}

	if results == nil {
		results = []*entities.ProductSearchResult{}
	}
	response.Success(c, http.StatusOK, gin.H{"products": results})
}
