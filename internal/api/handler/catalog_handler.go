package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

// CatalogHandler handles store and menu requests, including manager-only
// menu administration.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type itemRequest struct {
	Name        string `json:"name"     validate:"required"`
	Category    string `json:"category" validate:"required"`
	Price       string `json:"price"    validate:"required"`
	Ingredients string `json:"ingredients"`
	Description string `json:"description"`
}

type itemResponse struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Ingredients string `json:"ingredients"`
	Description string `json:"description"`
}

type menuResponse struct {
	Data []itemResponse `json:"data"`
}

type storesResponse struct {
	Data []domain.Store `json:"data"`
}

// ListStores handles GET /v1/stores.
//
// @Summary      List stores
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  storesResponse
// @Router       /v1/stores [get]
func (h *CatalogHandler) ListStores(c echo.Context) error {
	stores, err := h.service.ListStores(c.Request().Context())
	if err != nil {
		return err
	}
	if stores == nil {
		stores = []domain.Store{}
	}
	return c.JSON(http.StatusOK, storesResponse{Data: stores})
}

// ListMenu handles GET /v1/menu?category=&max_price=&sort=price_asc|price_desc.
//
// @Summary      List menu items
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        category   query  string  false  "exact category match"
// @Param        max_price  query  string  false  "price ceiling, decimal"
// @Param        sort       query  string  false  "price_asc or price_desc"
// @Success      200  {object}  menuResponse
// @Router       /v1/menu [get]
func (h *CatalogHandler) ListMenu(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	filter := ports.MenuFilter{Category: c.QueryParam("category")}

	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "max_price must be a decimal")
		}
		filter.MaxPrice = &maxPrice
	}

	switch c.QueryParam("sort") {
	case "":
		filter.Sort = ports.MenuSortNone
	case "price_asc":
		filter.Sort = ports.MenuSortPriceAsc
	case "price_desc":
		filter.Sort = ports.MenuSortPriceDesc
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "sort must be price_asc or price_desc")
	}

	items, err := h.service.ListMenu(c.Request().Context(), login, filter)
	if err != nil {
		return err
	}

	resp := menuResponse{Data: make([]itemResponse, 0, len(items))}
	for _, it := range items {
		resp.Data = append(resp.Data, toItemResponse(it))
	}
	return c.JSON(http.StatusOK, resp)
}

// AddItem handles POST /v1/menu. Manager only.
//
// @Summary      Add a menu item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      itemRequest  true  "Item details"
// @Success      201   {object}  itemResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/menu [post]
func (h *CatalogHandler) AddItem(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	item, err := bindItem(c)
	if err != nil {
		return err
	}

	if err := h.service.AddItem(c.Request().Context(), login, item); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toItemResponse(*item))
}

// UpdateItem handles PUT /v1/menu/:name. Manager only.
//
// @Summary      Update a menu item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string       true  "Item name"
// @Param        body  body      itemRequest  true  "Item details"
// @Success      200   {object}  itemResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/menu/{name} [put]
func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	item, err := bindItem(c)
	if err != nil {
		return err
	}
	item.Name = c.Param("name")

	if err := h.service.UpdateItem(c.Request().Context(), login, item); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(*item))
}

// RemoveItem handles DELETE /v1/menu/:name. Manager only.
//
// @Summary      Remove a menu item
// @Tags         catalog
// @Security     BearerAuth
// @Param        name  path  string  true  "Item name"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/menu/{name} [delete]
func (h *CatalogHandler) RemoveItem(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveItem(c.Request().Context(), login, c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindItem(c echo.Context) (*domain.Item, error) {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "price must be a decimal")
	}

	return &domain.Item{
		Name:        req.Name,
		Category:    req.Category,
		Price:       price,
		Ingredients: req.Ingredients,
		Description: req.Description,
	}, nil
}

func toItemResponse(it domain.Item) itemResponse {
	return itemResponse{
		Name:        it.Name,
		Category:    it.Category,
		Price:       it.Price.StringFixed(2),
		Ingredients: it.Ingredients,
		Description: it.Description,
	}
}
