package api

import (
	"net/http"

	"order-fulfillment/internal/domain/order"
	reqdto "order-fulfillment/internal/handler/dto/request"
	resdto "order-fulfillment/internal/handler/dto/response"
	"order-fulfillment/internal/handler/httperr"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/commands"
	"order-fulfillment/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place order
// @Description Allocate stock from the nearest warehouses and persist the order. Orders that fail validation are stored with validity=false and a reason.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.OrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req reqdto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	view, err := h.orderCommands.Place(c.Request.Context(), req.ToPlaceParams())
	if err != nil {
		h.abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Verify order
// @Description Price an order against current stock without persisting anything
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.OrderRequest true "Order request"
// @Success 200 {object} resdto.OrderQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders/verify [post]
func (h *OrderHandler) VerifyOrder(c *gin.Context) {
	var req reqdto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	qt, err := h.orderQueries.Verify(c.Request.Context(), req.ToVerifyParams())
	if err != nil {
		h.abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(qt))
}

// @Summary Get order
// @Description Get an order with its items
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /orders/{orderId} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidOrderID, nil)
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List orders
// @Description List all orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Failure 500 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	views, err := h.orderQueries.List(c.Request.Context())
	if err != nil {
		h.abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromOrderViews(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrOrderNotFound):
		httperr.NotFound(c, err, httperr.MsgOrderNotFound)
	case errs.Is(err, queries.ErrDeviceNotFound):
		httperr.NotFound(c, err, httperr.MsgDeviceNotFound)
	case errs.Is(err, order.ErrInvalidDeviceCount), errs.Is(err, order.ErrDeviceCountTooLarge):
		httperr.BadRequest(c, err)
	default:
		httperr.Internal(c, err)
	}
}
