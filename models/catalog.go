package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;size:100"`
	Description string         `json:"description" gorm:"size:500"`
	ImageURL    string         `json:"image_url"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	MenuItems   []MenuItem     `json:"menu_items,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

type MenuItem struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CategoryID      uint            `json:"category_id" gorm:"not null"`
	Category        *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name            string          `json:"name" gorm:"not null;size:200"`
	Description     string          `json:"description" gorm:"size:1000"`
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	IsAvailable     bool            `json:"is_available" gorm:"default:true"`
	PreparationTime int             `json:"preparation_time" gorm:"default:15"` // minutes
	DailyOrderCount int             `json:"daily_order_count" gorm:"default:0"`
	ImageURL        string          `json:"image_url"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`
}
