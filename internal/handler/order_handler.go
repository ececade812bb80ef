package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	"github.com/inkhouse/ecommerce-backend/internal/usecase"
)

type OrderService interface {
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetOrderByID(ctx context.Context, id int64) (model.Order, bool, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type OrderHandler struct {
	uc OrderService
}

func NewOrderHandler(uc OrderService) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 税額・合計はクライアントが計算して送る
type orderCreateRequest struct {
	UserID        *int64     `json:"userId" validate:"required"`
	DiscountID    *int64     `json:"discountId"`
	SubtotalCents *int64     `json:"subtotalCents" validate:"required"`
	DiscountCents *int64     `json:"discountCents"`
	TaxRateBasis  *int64     `json:"taxRateBasis"`
	TaxCents      *int64     `json:"taxCents" validate:"required"`
	TotalCents    *int64     `json:"totalCents" validate:"required"`
	Status        string     `json:"status"`
	PlacedAt      *time.Time `json:"placedAt"`
}

func (h *OrderHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/orders")

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/user/:userId", h.listByUser)
	g.GET("/:id", h.detail)
	g.PATCH("/:id/status", h.updateStatus)
	g.DELETE("/:id", h.delete)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.GetAllOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	o, found, err := h.uc.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) listByUser(c echo.Context) error {
	userID, ok := parseID(c, "userId")
	if !ok {
		return badRequest(c, "invalid userId")
	}

	out, err := h.uc.GetOrdersByUserID(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req orderCreateRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		UserID:        *req.UserID,
		DiscountID:    req.DiscountID,
		SubtotalCents: *req.SubtotalCents,
		DiscountCents: req.DiscountCents,
		TaxRateBasis:  req.TaxRateBasis,
		TaxCents:      *req.TaxCents,
		TotalCents:    *req.TotalCents,
		Status:        req.Status,
		PlacedAt:      req.PlacedAt,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// PATCH /api/orders/{id}/status?status=
// 値のチェックはDBの CHECK 制約に任せる
func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	status := c.QueryParam("status")
	if status == "" {
		return badRequest(c, "status is required")
	}

	out, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
