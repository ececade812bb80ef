package repository

import (
	"context"
	"errors"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	repo "github.com/inkhouse/ecommerce-backend/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := r.db.WithContext(ctx).Order("order_id asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_id asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// The User association is never written through an order.
func (r *OrderGormRepository) Save(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Omit("User").Save(&o).Error; err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, o model.Order) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, o.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
