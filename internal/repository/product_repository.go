package repository

import (
	"context"
	"errors"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
)

// ErrNotFound is the only "absent record" signal. Check it with errors.Is.
var ErrNotFound = errors.New("not found")

// product persistence
type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// Save inserts when ID is zero, otherwise writes every column back.
	Save(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, p model.Product) error

	// case-insensitive substring match on title
	SearchByTitle(ctx context.Context, query string) ([]model.Product, error)
	FindActive(ctx context.Context) ([]model.Product, error)
	FindByQtyAvailableGreaterThan(ctx context.Context, qty int64) ([]model.Product, error)
}
