package api

import (
	"net/http"

	reqdto "shopfront/internal/handler/dto/request"
	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/handler/httperr"
	"shopfront/internal/infra/backend"
	"shopfront/internal/pkg/errs"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.CheckoutCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.CheckoutCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Submit a sale request for one product
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Place order request"
// @Success 201 {object} resdto.PlaceOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.PlaceOrder(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.abortWithSubmitError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPlaceOrderResult(result))
}

// @Summary List my orders
// @Description Order history for the current session, split by status
// @Tags orders
// @Produce json
// @Success 200 {object} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /orders/me [get]
func (h *OrderHandler) Mine(c *gin.Context) {
	view, err := h.q.MyOrders(c.Request.Context())
	if err != nil {
		switch {
		case errs.Is(err, backend.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired. Please log in again.", nil)
		case errs.Is(err, backend.ErrUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Connection error. Please try again.", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load orders", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrdersView(view))
}

func (h *OrderHandler) abortWithSubmitError(c *gin.Context, err error) {
	if rej, ok := backend.AsRejection(err); ok {
		// The backend's refusal reason is shown to the user verbatim.
		httperr.AbortWithError(c, http.StatusBadRequest, err, rej.Reason, nil)
		return
	}
	switch {
	case errs.Is(err, commands.ErrInvalidOrderQuantity), errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, commands.ErrSessionExpired):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired. Please log in again.", nil)
	case errs.Is(err, commands.ErrConnectionFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Connection error. Please try again.", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Order submission failed", nil)
	}
}
