package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkhouse/ecommerce-backend/internal/domain/model"
	"github.com/inkhouse/ecommerce-backend/internal/metrics"
	repo "github.com/inkhouse/ecommerce-backend/internal/repository"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	clock     Clock
	log       zerolog.Logger
}

func NewOrderUsecase(orderRepo repo.OrderRepository, clock Clock, log zerolog.Logger) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, clock: clock, log: log}
}

// Amounts are stored as given. Tax and total are not derived from the
// subtotal and rate.
type CreateOrderInput struct {
	UserID        int64
	DiscountID    *int64
	SubtotalCents int64
	DiscountCents *int64
	TaxRateBasis  *int64
	TaxCents      int64
	TotalCents    int64
	Status        string
	PlacedAt      *time.Time
}

func (u *OrderUsecase) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return u.orderRepo.FindAll(ctx)
}

func (u *OrderUsecase) GetOrderByID(ctx context.Context, id int64) (model.Order, bool, error) {
	o, err := u.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, false, nil
	}
	if err != nil {
		return model.Order{}, false, err
	}
	return o, true, nil
}

func (u *OrderUsecase) GetOrdersByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orderRepo.FindByUserID(ctx, userID)
}

func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	o := model.NewOrder(model.OrderDraft{
		UserID:        in.UserID,
		DiscountID:    in.DiscountID,
		SubtotalCents: in.SubtotalCents,
		DiscountCents: in.DiscountCents,
		TaxRateBasis:  in.TaxRateBasis,
		TaxCents:      in.TaxCents,
		TotalCents:    in.TotalCents,
		Status:        model.OrderStatus(in.Status),
		PlacedAt:      in.PlacedAt,
	}, u.clock.Now())

	created, err := u.orderRepo.Save(ctx, o)
	if err != nil {
		return model.Order{}, fmt.Errorf("create order: %w", err)
	}

	metrics.RecordMutation(metrics.EntityOrder, metrics.MutationCreate)
	u.log.Info().Int64("order_id", created.ID).Int64("user_id", created.UserID).Msg("order created")
	return created, nil
}

// UpdateOrderStatus overwrites the status only. The value is checked by
// the store's constraint, not here.
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, id int64, status string) (model.Order, error) {
	o, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		return model.Order{}, fmt.Errorf("order %d: %w", id, err)
	}

	before := o.Status
	o.Status = model.OrderStatus(status)
	o.Touch(u.clock.Now())

	updated, err := u.orderRepo.Save(ctx, o)
	if err != nil {
		return model.Order{}, fmt.Errorf("update order %d status: %w", id, err)
	}

	metrics.RecordMutation(metrics.EntityOrder, metrics.MutationUpdate)
	u.log.Info().
		Int64("order_id", id).
		Str("from", string(before)).
		Str("to", status).
		Msg("order status updated")
	return updated, nil
}

func (u *OrderUsecase) DeleteOrder(ctx context.Context, id int64) error {
	o, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("order %d: %w", id, err)
	}

	if err := u.orderRepo.Delete(ctx, o); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	metrics.RecordMutation(metrics.EntityOrder, metrics.MutationDelete)
	u.log.Info().Int64("order_id", id).Msg("order deleted")
	return nil
}
