package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	"github.com/inkhouse/ecommerce-backend/internal/usecase"
)

// ProductService is the slice of usecase.ProductUsecase the handler needs.
type ProductService interface {
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int64) (model.Product, bool, error)
	CreateProduct(ctx context.Context, in usecase.CreateProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, id int64, in usecase.UpdateProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	SearchProductsByTitle(ctx context.Context, query string) ([]model.Product, error)
	GetActiveProducts(ctx context.Context) ([]model.Product, error)
	GetProductsInStock(ctx context.Context, threshold int64) ([]model.Product, error)
}

// /api/products
type ProductHandler struct {
	uc ProductService
}

// DI
func NewProductHandler(uc ProductService) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// POST /api/products のリクエストボディ
type productCreateRequest struct {
	Title          *string `json:"title" validate:"required"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"imageUrl" validate:"omitempty,max=500"`
	BasePriceCents *int64  `json:"basePriceCents" validate:"required"`
	QtyAvailable   *int64  `json:"qtyAvailable"`
	IsActive       *bool   `json:"isActive"`
}

// PUT /api/products/{id}。省略したフィールドは変更しない
type productUpdateRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"imageUrl" validate:"omitempty,max=500"`
	BasePriceCents *int64  `json:"basePriceCents"`
	QtyAvailable   *int64  `json:"qtyAvailable"`
	IsActive       *bool   `json:"isActive"`
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/products")

	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/search", h.search)
	g.GET("/active", h.active)
	g.GET("/in-stock", h.inStock)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.GetAllProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	p, found, err := h.uc.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req productCreateRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.CreateProductInput{
		Title:          *req.Title,
		BasePriceCents: *req.BasePriceCents,
		QtyAvailable:   req.QtyAvailable,
		IsActive:       req.IsActive,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.ImageURL != nil {
		in.ImageURL = *req.ImageURL
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req productUpdateRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		BasePriceCents: req.BasePriceCents,
		QtyAvailable:   req.QtyAvailable,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /api/products/search?name=
// name が無ければ 400。空文字は全件にマッチする
func (h *ProductHandler) search(c echo.Context) error {
	if _, ok := c.QueryParams()["name"]; !ok {
		return badRequest(c, "name is required")
	}

	out, err := h.uc.SearchProductsByTitle(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) active(c echo.Context) error {
	out, err := h.uc.GetActiveProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// min（default 0）
func (h *ProductHandler) inStock(c echo.Context) error {
	var threshold int64
	if v := c.QueryParam("min"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return badRequest(c, "invalid min")
		}
		threshold = x
	}

	out, err := h.uc.GetProductsInStock(c.Request().Context(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
