package repository

import (
	"context"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
)

type OrderRepository interface {
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Save(ctx context.Context, o model.Order) (model.Order, error)
	Delete(ctx context.Context, o model.Order) error
}
