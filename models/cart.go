package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is a customer's in-progress order. One per user; it survives
// checkout and is reused with its items removed and total reset.
type Cart struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	User      *User           `json:"-" gorm:"foreignKey:UserID"`
	Items     []CartItem      `json:"items,omitempty" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"` // cache of sum(qty * unit price)
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CartItem carries the unit price captured at add-to-cart time, which
// is what checkout charges even if the catalog price moved since.
type CartItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	CartID     uint            `json:"cart_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem       `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Subtotal is the derived line total, never persisted.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
