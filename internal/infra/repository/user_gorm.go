package repository

import (
	"context"
	"errors"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	domainrepo "github.com/inkhouse/ecommerce-backend/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.go builds this and injects it into the user usecase.
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

func (r *userGormRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.db.WithContext(ctx).Order("user_id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// emailでユーザーを1件取得
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userGormRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	return r.first(ctx, "user_id = ?", id)
}

func (r *userGormRepository) first(ctx context.Context, query string, arg interface{}) (model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, domainrepo.ErrNotFound
		}
		return model.User{}, err
	}

	return u, nil
}

func (r *userGormRepository) Save(ctx context.Context, u model.User) (model.User, error) {
	if err := r.db.WithContext(ctx).Save(&u).Error; err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *userGormRepository) Delete(ctx context.Context, u model.User) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, u.ID)
	if res.Error != nil {
		return res.Error
	}

	// 0件削除は「対象がない」
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}
