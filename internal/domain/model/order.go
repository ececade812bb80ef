package model

import "time"

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 8.25%
const DefaultTaxRateBasis int64 = 825

// Order amounts are caller supplied. Nothing here derives tax or total
// from the subtotal and the rate.
type Order struct {
	ID            int64       `gorm:"column:order_id;primaryKey;autoIncrement" json:"id"`
	UserID        int64       `gorm:"column:user_id;not null;index" json:"userId"`
	User          *User       `gorm:"foreignKey:UserID;references:ID" json:"-"`
	DiscountID    *int64      `gorm:"column:discount_id" json:"discountId"`
	SubtotalCents int64       `gorm:"column:subtotal_cents;not null" json:"subtotalCents"`
	DiscountCents int64       `gorm:"column:discount_cents;not null" json:"discountCents"`
	TaxRateBasis  int64       `gorm:"column:tax_rate_basis;not null" json:"taxRateBasis"`
	TaxCents      int64       `gorm:"column:tax_cents;not null" json:"taxCents"`
	TotalCents    int64       `gorm:"column:total_cents;not null" json:"totalCents"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;index;check:chk_orders_status,status IN ('placed','fulfilled','cancelled')" json:"status"`
	PlacedAt      time.Time   `gorm:"not null" json:"placedAt"`
	CreatedAt     time.Time   `gorm:"not null;<-:create;autoCreateTime:false" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

type OrderDraft struct {
	UserID        int64
	DiscountID    *int64
	SubtotalCents int64
	DiscountCents *int64
	TaxRateBasis  *int64
	TaxCents      int64
	TotalCents    int64
	Status        OrderStatus
	PlacedAt      *time.Time
}

// NewOrder applies the order defaults: status placed, discount 0,
// tax rate 825 basis points, placedAt = now when absent.
func NewOrder(d OrderDraft, now time.Time) Order {
	o := Order{
		UserID:        d.UserID,
		DiscountID:    d.DiscountID,
		SubtotalCents: d.SubtotalCents,
		DiscountCents: 0,
		TaxRateBasis:  DefaultTaxRateBasis,
		TaxCents:      d.TaxCents,
		TotalCents:    d.TotalCents,
		Status:        d.Status,
		PlacedAt:      now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if o.Status == "" {
		o.Status = OrderStatusPlaced
	}
	if d.DiscountCents != nil {
		o.DiscountCents = *d.DiscountCents
	}
	if d.TaxRateBasis != nil {
		o.TaxRateBasis = *d.TaxRateBasis
	}
	if d.PlacedAt != nil && !d.PlacedAt.IsZero() {
		o.PlacedAt = *d.PlacedAt
	}
	return o
}

func (o *Order) Touch(now time.Time) {
	o.UpdatedAt = later(o.UpdatedAt, now)
}
