package handler

import (
	"github.com/labstack/echo/v4"

	"giglance/internal/usecase"
	"giglance/pkg/response"
	"giglance/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// ListOrders returns the caller's orders, filtered by role: sellers see
// orders addressed to them, buyers see orders they placed.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID := c.Param("id")
	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

// ListOrdersFor is the admin view over either side of the order book.
func (h *OrderHandler) ListOrdersFor(c echo.Context) error {
	adminID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	field := c.QueryParam("field")
	value := c.QueryParam("value")

	orders, total, err := h.orderUseCase.ListOrdersFor(c.Request().Context(), adminID, field, value, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, params.Page, params.PageSize)
}
