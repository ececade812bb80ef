package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	repo "github.com/inkhouse/ecommerce-backend/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.db.WithContext(ctx).Order("product_id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Save(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Save(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, p.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// title only. An empty query matches everything.
func (r *ProductGormRepository) SearchByTitle(ctx context.Context, query string) ([]model.Product, error) {
	products := []model.Product{}
	like := "%" + escapeLike(query) + "%"
	err := r.db.WithContext(ctx).
		Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, like).
		Order("product_id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindActive(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("product_id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// strictly greater than qty
func (r *ProductGormRepository) FindByQtyAvailableGreaterThan(ctx context.Context, qty int64) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Where("qty_available > ?", qty).
		Order("product_id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
