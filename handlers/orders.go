package handlers

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"restaurant-pro-api/config"
	"restaurant-pro-api/middleware"
	"restaurant-pro-api/models"
	"restaurant-pro-api/pkg/resp"
	"restaurant-pro-api/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// errEmptyCart signals the business-rule failure, as opposed to a
// storage failure, out of the checkout transaction.
var errEmptyCart = errors.New("cart is empty")

// phoneRe accepts digits with optional leading + and common separators.
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,13}$`)

type PlaceOrderRequest struct {
	CustomerName    string               `json:"customer_name" binding:"required,max=100"`
	PhoneNumber     string               `json:"phone_number" binding:"required,max=15"`
	OrderType       models.OrderType     `json:"order_type" binding:"required,oneof=1 2 3"`
	DeliveryAddress string               `json:"delivery_address" binding:"max=500"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"required,oneof=1 2 3 4"`
	Notes           string               `json:"notes" binding:"max=1000"`
}

// PlaceOrder turns the customer's cart into an immutable priced order.
// Pricing charges the unit prices snapshotted in the cart, not the
// live catalog prices. Order creation, order-item snapshots, cart-item
// deletion and the cart total reset are one transaction: either the
// order exists and the cart is empty, or neither happened.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !phoneRe.MatchString(req.PhoneNumber) {
		resp.BadRequest(c, "Invalid phone number format")
		return
	}
	if req.OrderType == models.OrderTypeDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
		resp.BadRequest(c, "Delivery address is required for delivery orders")
		return
	}

	var cart models.Cart
	if err := config.DB.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "Cart is empty. Please add items first.")
			return
		}
		resp.ServerError(c, "Error placing order")
		return
	}

	now := time.Now()
	var order models.Order

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Read the lines inside the transaction so a concurrent
		// checkout of the same cart cannot also see them.
		var items []models.CartItem
		if err := tx.Preload("MenuItem").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return errEmptyCart
		}

		lines := make([]pricing.Line, 0, len(items))
		prepTimes := make([]int, 0, len(items))
		for _, it := range items {
			lines = append(lines, pricing.Line{Quantity: it.Quantity, UnitPrice: it.Price})
			prep := 0
			if it.MenuItem != nil {
				prep = it.MenuItem.PreparationTime
			}
			prepTimes = append(prepTimes, prep)
		}

		quote := pricing.Calculate(lines, now)
		eta := pricing.EstimatedReadyTime(prepTimes, req.OrderType == models.OrderTypeDelivery, now)

		order = models.Order{
			UserID:                userID,
			CustomerName:          req.CustomerName,
			PhoneNumber:           req.PhoneNumber,
			OrderType:             req.OrderType,
			DeliveryAddress:       req.DeliveryAddress,
			PaymentMethod:         req.PaymentMethod,
			Subtotal:              quote.Subtotal,
			Tax:                   quote.Tax,
			Discount:              quote.Discount,
			Total:                 quote.Total,
			Status:                models.StatusPending,
			EstimatedDeliveryTime: &eta,
			Notes:                 req.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			name := ""
			if it.MenuItem != nil {
				name = it.MenuItem.Name
			}
			orderItems = append(orderItems, models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Name:       name,
				Quantity:   it.Quantity,
				Price:      it.Price,
				Subtotal:   it.Subtotal(),
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		// A double submit races here: whoever commits first removes
		// the lines, the other deletes zero rows and rolls back.
		res := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(items)) {
			return errEmptyCart
		}

		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Update("total", decimal.Zero).Error
	})

	if errors.Is(err, errEmptyCart) {
		resp.BadRequest(c, "Cart is empty. Please add items first.")
		return
	}
	if err != nil {
		resp.ServerError(c, "Error placing order")
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	resp.OK(c, "Order placed successfully!", order)
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	resp.OK(c, "Orders retrieved successfully", orders)
}

// GetOrderDetails returns a single order owned by the caller
func GetOrderDetails(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	err := config.DB.Preload("Items.MenuItem").
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&order).Error
	if err != nil {
		resp.NotFound(c, "Order not found")
		return
	}
	resp.OK(c, "Order details retrieved successfully", order)
}
