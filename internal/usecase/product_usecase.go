package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	"github.com/inkhouse/ecommerce-backend/internal/metrics"
	repo "github.com/inkhouse/ecommerce-backend/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	clock       Clock
	log         zerolog.Logger
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, clock Clock, log zerolog.Logger) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		clock:       clock,
		log:         log,
	}
}

// POST /products の入力
type CreateProductInput struct {
	Title          string
	Description    string
	ImageURL       string
	BasePriceCents int64
	QtyAvailable   *int64
	IsActive       *bool
}

// PUT /products/{id} の入力。nil のフィールドは現在の値を残す。
type UpdateProductInput struct {
	Title          *string
	Description    *string
	ImageURL       *string
	BasePriceCents *int64
	QtyAvailable   *int64
	IsActive       *bool
}

func (u *ProductUsecase) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.FindAll(ctx)
}

// GetProductByID reports a miss as found=false with a nil error.
func (u *ProductUsecase) GetProductByID(ctx context.Context, id int64) (model.Product, bool, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, false, nil
	}
	if err != nil {
		return model.Product{}, false, err
	}
	return p, true, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	p := model.NewProduct(model.ProductDraft{
		Title:          in.Title,
		Description:    in.Description,
		ImageURL:       in.ImageURL,
		BasePriceCents: in.BasePriceCents,
		QtyAvailable:   in.QtyAvailable,
		IsActive:       in.IsActive,
	}, u.clock.Now())

	created, err := u.productRepo.Save(ctx, p)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}

	metrics.RecordMutation(metrics.EntityProduct, metrics.MutationCreate)
	u.log.Info().Int64("product_id", created.ID).Msg("product created")
	return created, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product %d: %w", id, err)
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.BasePriceCents != nil {
		p.BasePriceCents = *in.BasePriceCents
	}
	if in.QtyAvailable != nil {
		p.QtyAvailable = *in.QtyAvailable
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.Touch(u.clock.Now())

	updated, err := u.productRepo.Save(ctx, p)
	if err != nil {
		return model.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}

	metrics.RecordMutation(metrics.EntityProduct, metrics.MutationUpdate)
	u.log.Info().Int64("product_id", id).Msg("product updated")
	return updated, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("product %d: %w", id, err)
	}

	if err := u.productRepo.Delete(ctx, p); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	metrics.RecordMutation(metrics.EntityProduct, metrics.MutationDelete)
	u.log.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func (u *ProductUsecase) SearchProductsByTitle(ctx context.Context, query string) ([]model.Product, error) {
	return u.productRepo.SearchByTitle(ctx, query)
}

func (u *ProductUsecase) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.FindActive(ctx)
}

// 在庫が threshold より多い商品
func (u *ProductUsecase) GetProductsInStock(ctx context.Context, threshold int64) ([]model.Product, error) {
	return u.productRepo.FindByQtyAvailableGreaterThan(ctx, threshold)
}
