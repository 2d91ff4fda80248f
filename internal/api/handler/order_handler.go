package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pizzastore/ordering-system/internal/api/metrics"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for the order builder and the status
// machine.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Begin handles POST /v1/orders.
//
// @Summary      Open a new draft order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      beginOrderRequest  true  "Store to order from"
// @Success      201   {object}  beginOrderResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Begin(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	var req beginOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	orderID, err := h.service.BeginOrder(c.Request().Context(), ports.BeginOrderInput{
		Login:   login,
		StoreID: req.StoreID,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, beginOrderResponse{OrderID: orderID, Status: "incomplete"})
}

// AddLine handles POST /v1/orders/:id/lines.
//
// @Summary      Add a line to a draft order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Order identifier"
// @Param        body  body      addLineRequest  true  "Item and quantity"
// @Success      201   {object}  addLineResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders/{id}/lines [post]
func (h *OrderHandler) AddLine(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}
	orderID, err := pathOrderID(c)
	if err != nil {
		return err
	}

	var req addLineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lineTotal, err := h.service.AddLine(c.Request().Context(), ports.AddLineInput{
		Requester: login,
		OrderID:   orderID,
		ItemName:  req.Item,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.OrderLinesAddedTotal.Inc()
	return c.JSON(http.StatusCreated, addLineResponse{
		OrderID:   orderID,
		Item:      req.Item,
		Quantity:  req.Quantity,
		LineTotal: lineTotal.StringFixed(2),
	})
}

// Cancel handles DELETE /v1/orders/:id.
//
// @Summary      Cancel a draft order
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  int  true  "Order identifier"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/orders/{id} [delete]
func (h *OrderHandler) Cancel(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}
	orderID, err := pathOrderID(c)
	if err != nil {
		return err
	}

	if err := h.service.CancelOrder(c.Request().Context(), ports.OrderRef{Requester: login, OrderID: orderID}); err != nil {
		return err
	}

	metrics.OrdersCancelledTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Commit handles POST /v1/orders/:id/commit.
//
// @Summary      Commit a draft order, fixing its total
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Order identifier"
// @Success      200  {object}  commitOrderResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/orders/{id}/commit [post]
func (h *OrderHandler) Commit(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}
	orderID, err := pathOrderID(c)
	if err != nil {
		return err
	}

	start := time.Now()
	total, err := h.service.CommitOrder(c.Request().Context(), ports.OrderRef{Requester: login, OrderID: orderID})
	if err != nil {
		return err
	}
	metrics.OrderCommitDuration.Observe(time.Since(start).Seconds())
	metrics.OrdersCommittedTotal.Inc()

	return c.JSON(http.StatusOK, commitOrderResponse{
		OrderID:    orderID,
		TotalPrice: total.StringFixed(2),
		Status:     "incomplete",
	})
}

// Get handles GET /v1/orders/:id.
//
// @Summary      Get an order with its lines
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Order identifier"
// @Success      200  {object}  orderDetailResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}
	orderID, err := pathOrderID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetOrder(c.Request().Context(), ports.OrderRef{Requester: login, OrderID: orderID})
	if err != nil {
		return err
	}

	resp := orderDetailResponse{
		OrderID:    detail.ID,
		Login:      detail.Login,
		StoreID:    detail.StoreID,
		TotalPrice: detail.Total.StringFixed(2),
		Status:     string(detail.Status),
		Committed:  detail.Committed,
		CreatedAt:  detail.CreatedAt,
		Lines:      make([]orderLineResponse, 0, len(detail.Lines)),
	}
	for _, l := range detail.Lines {
		resp.Lines = append(resp.Lines, orderLineResponse{
			Item:      l.ItemName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			LineTotal: l.LineTotal.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// List handles GET /v1/orders?scope=own|all&limit=N&by_user=login.
//
// @Summary      List orders, newest first
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        scope    query  string  false  "own (default) or all"
// @Param        limit    query  int     false  "most-recent-N cap"
// @Param        by_user  query  string  false  "filter by owning login (all scope only)"
// @Success      200  {object}  listOrdersResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	scope := c.QueryParam("scope")
	if scope == "" {
		scope = ports.ScopeOwn
	}
	if scope != ports.ScopeOwn && scope != ports.ScopeAll {
		return echo.NewHTTPError(http.StatusBadRequest, "scope must be own or all")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
	}

	summaries, err := h.service.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Requester: login,
		Scope:     scope,
		ByUser:    c.QueryParam("by_user"),
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	resp := listOrdersResponse{Data: make([]orderSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		resp.Data = append(resp.Data, orderSummaryResponse{
			OrderID:    s.ID,
			Login:      s.Login,
			StoreID:    s.StoreID,
			TotalPrice: s.Total.StringFixed(2),
			Status:     string(s.Status),
			CreatedAt:  s.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// ToggleStatus handles POST /v1/orders/:id/status.
//
// @Summary      Toggle an order between complete and incomplete
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Order identifier"
// @Success      200  {object}  toggleStatusResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/orders/{id}/status [post]
func (h *OrderHandler) ToggleStatus(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}
	orderID, err := pathOrderID(c)
	if err != nil {
		return err
	}

	status, err := h.service.ToggleStatus(c.Request().Context(), ports.OrderRef{Requester: login, OrderID: orderID})
	if err != nil {
		return err
	}

	metrics.StatusTogglesTotal.WithLabelValues(string(status)).Inc()
	return c.JSON(http.StatusOK, toggleStatusResponse{OrderID: orderID, Status: string(status)})
}

func pathOrderID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid order identifier")
	}
	return id, nil
}
