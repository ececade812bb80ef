package repository

import (
	"context"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
)

// Email uniqueness is enforced by the store, not here.
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Save(ctx context.Context, u model.User) (model.User, error)
	Delete(ctx context.Context, u model.User) error
}
