package model

import "time"

type Product struct {
	ID             int64     `gorm:"column:product_id;primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	ImageURL       string    `gorm:"column:image_url;type:varchar(500)" json:"imageUrl"`
	BasePriceCents int64     `gorm:"column:base_price_cents;not null" json:"basePriceCents"`
	QtyAvailable   int64     `gorm:"column:qty_available;not null" json:"qtyAvailable"`
	IsActive       bool      `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt      time.Time `gorm:"not null;<-:create;autoCreateTime:false" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

// create input; nil means "not given"
type ProductDraft struct {
	Title          string
	Description    string
	ImageURL       string
	BasePriceCents int64
	QtyAvailable   *int64
	IsActive       *bool
}

// NewProduct fills creation defaults (qty 0, active) and stamps both
// timestamps with the same instant.
func NewProduct(d ProductDraft, now time.Time) Product {
	p := Product{
		Title:          d.Title,
		Description:    d.Description,
		ImageURL:       d.ImageURL,
		BasePriceCents: d.BasePriceCents,
		QtyAvailable:   0,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if d.QtyAvailable != nil {
		p.QtyAvailable = *d.QtyAvailable
	}
	if d.IsActive != nil {
		p.IsActive = *d.IsActive
	}
	return p
}

// Touch refreshes UpdatedAt. It never moves backwards.
func (p *Product) Touch(now time.Time) {
	p.UpdatedAt = later(p.UpdatedAt, now)
}

func later(prev, now time.Time) time.Time {
	if now.Before(prev) {
		return prev
	}
	return now
}
