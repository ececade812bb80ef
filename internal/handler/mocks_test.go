package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	"github.com/inkhouse/ecommerce-backend/internal/handler"
	"github.com/inkhouse/ecommerce-backend/internal/usecase"
	"github.com/inkhouse/ecommerce-backend/internal/validator"
)

type ProductServiceMock struct{ mock.Mock }

func (m *ProductServiceMock) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductServiceMock) GetProductByID(ctx context.Context, id int64) (model.Product, bool, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Bool(1), args.Error(2)
}

func (m *ProductServiceMock) CreateProduct(ctx context.Context, in usecase.CreateProductInput) (model.Product, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductServiceMock) UpdateProduct(ctx context.Context, id int64, in usecase.UpdateProductInput) (model.Product, error) {
	args := m.Called(ctx, id, in)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductServiceMock) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductServiceMock) SearchProductsByTitle(ctx context.Context, query string) ([]model.Product, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductServiceMock) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductServiceMock) GetProductsInStock(ctx context.Context, threshold int64) ([]model.Product, error) {
	args := m.Called(ctx, threshold)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

type OrderServiceMock struct{ mock.Mock }

func (m *OrderServiceMock) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderServiceMock) GetOrderByID(ctx context.Context, id int64) (model.Order, bool, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *OrderServiceMock) GetOrdersByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderServiceMock) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (model.Order, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderServiceMock) UpdateOrderStatus(ctx context.Context, id int64, status string) (model.Order, error) {
	args := m.Called(ctx, id, status)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderServiceMock) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type UserServiceMock struct{ mock.Mock }

func (m *UserServiceMock) SaveUser(ctx context.Context, in usecase.SaveUserInput) (model.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserServiceMock) GetAllUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.User)
	return items, args.Error(1)
}

func (m *UserServiceMock) GetUserByID(ctx context.Context, id int64) (model.User, bool, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Bool(1), args.Error(2)
}

func (m *UserServiceMock) GetUserByEmail(ctx context.Context, email string) (model.User, bool, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Bool(1), args.Error(2)
}

func (m *UserServiceMock) UpdateUser(ctx context.Context, id int64, in usecase.UpdateUserInput) (model.User, error) {
	args := m.Called(ctx, id, in)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserServiceMock) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newEcho wires the handlers onto a bare echo instance.
func newEcho(p handler.ProductService, o handler.OrderService, u handler.UserService) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(zerolog.Nop())

	api := e.Group("/api")
	if p != nil {
		handler.NewProductHandler(p).RegisterRoutes(api)
	}
	if o != nil {
		handler.NewOrderHandler(o).RegisterRoutes(api)
	}
	if u != nil {
		handler.NewUserHandler(u).RegisterRoutes(e)
	}
	return e
}

func serve(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
