package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	"github.com/inkhouse/ecommerce-backend/internal/usecase"
)

type UserService interface {
	SaveUser(ctx context.Context, in usecase.SaveUserInput) (model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, bool, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, bool, error)
	UpdateUser(ctx context.Context, id int64, in usecase.UpdateUserInput) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// /users
type UserHandler struct {
	uc UserService
}

// DI
func NewUserHandler(uc UserService) *UserHandler {
	return &UserHandler{uc: uc}
}

// /users/addUser のリクエストボディ
type addUserRequest struct {
	Email    string `json:"email" validate:"required"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/users")

	g.POST("/addUser", h.add)
	g.GET("/getUsers", h.list)
	g.GET("/email/:email", h.byEmail)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *UserHandler) add(c echo.Context) error {
	var req addUserRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	if _, err := h.uc.SaveUser(c.Request().Context(), usecase.SaveUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}); err != nil {
		return writeError(c, err)
	}
	return c.String(http.StatusOK, "User has been added")
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.GetAllUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	u, found, err := h.uc.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) byEmail(c echo.Context) error {
	u, found, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req updateUserRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	u, err := h.uc.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
