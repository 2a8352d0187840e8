package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle states of a placed order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// OrderType is sent on the wire as its numeric value
type OrderType int

const (
	OrderTypeDineIn   OrderType = 1
	OrderTypeTakeaway OrderType = 2
	OrderTypeDelivery OrderType = 3
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeDineIn:
		return "DineIn"
	case OrderTypeTakeaway:
		return "Takeaway"
	case OrderTypeDelivery:
		return "Delivery"
	}
	return "Unknown"
}

// PaymentMethod is a label only; no payment processing happens here
type PaymentMethod int

const (
	PaymentCash          PaymentMethod = 1
	PaymentCreditCard    PaymentMethod = 2
	PaymentDebitCard     PaymentMethod = 3
	PaymentOnlinePayment PaymentMethod = 4
)

func (p PaymentMethod) String() string {
	switch p {
	case PaymentCash:
		return "Cash"
	case PaymentCreditCard:
		return "CreditCard"
	case PaymentDebitCard:
		return "DebitCard"
	case PaymentOnlinePayment:
		return "OnlinePayment"
	}
	return "Unknown"
}

// Order is immutable after creation except for Status and Notes.
// All money fields are frozen at checkout time.
type Order struct {
	ID                    uint            `json:"id" gorm:"primaryKey"`
	UserID                uint            `json:"user_id" gorm:"not null;index"`
	User                  *User           `json:"-" gorm:"foreignKey:UserID"`
	CustomerName          string          `json:"customer_name" gorm:"not null;size:100"`
	PhoneNumber           string          `json:"phone_number" gorm:"size:15"`
	OrderType             OrderType       `json:"order_type" gorm:"not null"`
	DeliveryAddress       string          `json:"delivery_address" gorm:"size:500"`
	PaymentMethod         PaymentMethod   `json:"payment_method" gorm:"not null"`
	Subtotal              decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	Tax                   decimal.Decimal `json:"tax" gorm:"type:decimal(10,2)"`
	Discount              decimal.Decimal `json:"discount" gorm:"type:decimal(10,2)"`
	Total                 decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status                OrderStatus     `json:"status" gorm:"not null;default:'PENDING'"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time"`
	Notes                 string          `json:"notes" gorm:"size:1000"`
	Items                 []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
	DeletedAt             gorm.DeletedAt  `json:"-" gorm:"index"`
}

// OrderItem is a frozen snapshot of one cart line at the moment of
// ordering. Catalog changes after that must never alter it.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem       `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Name       string          `json:"name" gorm:"size:200"` // snapshot of the menu item name
	Quantity   int             `json:"quantity" gorm:"not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Subtotal   decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
}
