package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

// ProfileHandler handles a user's own profile plus manager-only user
// administration.
type ProfileHandler struct {
	service ports.UserService
}

func NewProfileHandler(service ports.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	FavoriteItem *string `json:"favorite_item"`
	Phone        *string `json:"phone"`
	Password     *string `json:"password"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer driver manager"`
}

type usersResponse struct {
	Data []domain.User `json:"data"`
}

// Get handles GET /v1/profile.
//
// @Summary      View own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetProfile(c.Request().Context(), login)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PATCH /v1/profile. Absent fields stay unchanged.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  updateProfileRequest  true  "Fields to change"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		Login:        login,
		FavoriteItem: req.FavoriteItem,
		Phone:        req.Phone,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUsers handles GET /v1/users. Manager only.
//
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/users [get]
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListUsers(c.Request().Context(), login)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, usersResponse{Data: users})
}

// SetRole handles PATCH /v1/users/:login/role. Manager only.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        login  path  string          true  "User login"
// @Param        body   body  setRoleRequest  true  "New role"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{login}/role [patch]
func (h *ProfileHandler) SetRole(c echo.Context) error {
	login, err := ctxLogin(c)
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.SetRole(c.Request().Context(), login, c.Param("login"), domain.Role(req.Role)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
