package api

import (
	"net/http"

	reqdto "shopfront/internal/handler/dto/request"
	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/handler/httperr"
	"shopfront/internal/pkg/errs"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Snapshot of the shopper's cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.q.Snapshot()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cart", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add a product to the cart, merging with an existing line
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Add cart item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddItem(req.ProductID, req.Name, req.UnitPrice, req.NormalizedQuantity())
	if err != nil {
		h.abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Set cart line quantity
// @Description Clamp the line quantity into [1, max_stock]
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body reqdto.SetCartQuantityRequest true "Set quantity request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [patch]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	productID := c.Param("productId")
	var req reqdto.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.SetQuantity(productID, *req.Quantity, *req.MaxStock)
	if err != nil {
		h.abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view, err := h.cmds.RemoveItem(c.Param("productId"))
	if err != nil {
		h.abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	view, err := h.cmds.Clear()
	if err != nil {
		h.abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func (h *CartHandler) abortWithCartError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrCartLineNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart line not found", nil)
	case errs.Is(err, commands.ErrCartValidation), errs.Is(err, commands.ErrInvalidUnitPrice):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cart operation failed", nil)
	}
}
