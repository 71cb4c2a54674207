package api

import (
	"net/http"

	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/handler/httperr"
	"shopfront/internal/infra/backend"
	"shopfront/internal/pkg/errs"
	"shopfront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List products
// @Description Current catalog with stock levels
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	views, err := h.q.ListProducts(c.Request.Context())
	if err != nil {
		switch {
		case errs.Is(err, backend.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired. Please log in again.", nil)
		case errs.Is(err, backend.ErrUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Connection error. Please try again.", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Get product
// @Description One catalog row, including the current stock ceiling
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	view, err := h.q.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errs.Is(err, backend.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired. Please log in again.", nil)
		case errs.Is(err, backend.ErrUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Connection error. Please try again.", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.ProductResponse(*view))
}
