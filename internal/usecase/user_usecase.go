package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	"github.com/inkhouse/ecommerce-backend/internal/metrics"
	"github.com/inkhouse/ecommerce-backend/internal/repository"
)

type UserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	clock    Clock
	log      zerolog.Logger
}

// DI
func NewUserUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	clock Clock,
	log zerolog.Logger,
) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		clock:    clock,
		log:      log,
	}
}

type SaveUserInput struct {
	Email    string
	FullName string
	Password string
}

// nil のフィールドは変更しない
type UpdateUserInput struct {
	Email    *string
	FullName *string
	Password *string
}

// SaveUser stores a new user. A duplicate email surfaces as the store's
// unique-constraint error.
func (u *UserUsecase) SaveUser(ctx context.Context, in SaveUserInput) (model.User, error) {
	// パスワードをハッシュ化（平文は保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := u.userRepo.Save(ctx, model.NewUser(in.Email, in.FullName, hashed, u.clock.Now()))
	if err != nil {
		return model.User{}, fmt.Errorf("save user: %w", err)
	}

	metrics.RecordMutation(metrics.EntityUser, metrics.MutationCreate)
	u.log.Info().Int64("user_id", created.ID).Msg("user added")
	return created, nil
}

func (u *UserUsecase) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return u.userRepo.FindAll(ctx)
}

func (u *UserUsecase) GetUserByID(ctx context.Context, id int64) (model.User, bool, error) {
	return found(u.userRepo.FindByID(ctx, id))
}

func (u *UserUsecase) GetUserByEmail(ctx context.Context, email string) (model.User, bool, error) {
	return found(u.userRepo.FindByEmail(ctx, email))
}

func (u *UserUsecase) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("user %d: %w", id, err)
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Password != nil {
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hashed
	}
	user.Touch(u.clock.Now())

	updated, err := u.userRepo.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	metrics.RecordMutation(metrics.EntityUser, metrics.MutationUpdate)
	u.log.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (u *UserUsecase) DeleteUser(ctx context.Context, id int64) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user %d: %w", id, err)
	}

	if err := u.userRepo.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	metrics.RecordMutation(metrics.EntityUser, metrics.MutationDelete)
	u.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func found(user model.User, err error) (model.User, bool, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	return user, true, nil
}
