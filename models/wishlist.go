package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wishlist struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	UserID              uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	User                *User           `json:"-" gorm:"foreignKey:UserID"`
	Items               []WishlistItem  `json:"items,omitempty" gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
	TotalEstimatedPrice decimal.Decimal `json:"total_estimated_price" gorm:"type:decimal(10,2)"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type WishlistItem struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	WishlistID      uint            `json:"wishlist_id" gorm:"not null;index"`
	MenuItemID      uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem        *MenuItem       `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	DesiredQuantity int             `json:"desired_quantity" gorm:"default:1"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	CreatedAt       time.Time       `json:"created_at"`
}
