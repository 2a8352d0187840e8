package handlers

import (
	"restaurant-pro-api/config"
	"restaurant-pro-api/models"
	"restaurant-pro-api/pkg/resp"
	"restaurant-pro-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Notes  string             `json:"notes" binding:"max=1000"`
}

// AdminListOrders returns all orders, optionally filtered by status or user
func AdminListOrders(c *gin.Context) {
	query := config.DB.Preload("Items.MenuItem").Preload("User")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)
	resp.OK(c, "Orders retrieved successfully", orders)
}

// AdminGetOrder returns one order with full detail
func AdminGetOrder(c *gin.Context) {
	var order models.Order
	err := config.DB.Preload("Items.MenuItem").Preload("User").
		First(&order, c.Param("id")).Error
	if err != nil {
		resp.NotFound(c, "Order not found")
		return
	}
	resp.OK(c, "Order retrieved successfully", order)
}

// AdminUpdateOrderStatus advances an order through its lifecycle.
// Status and notes are the only mutable order fields.
func AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !statemachine.IsValidStatus(req.Status) {
		resp.BadRequest(c, "Unknown order status: "+string(req.Status))
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		resp.NotFound(c, "Order not found")
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}
	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		resp.ServerError(c, "Error updating order status")
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	resp.OK(c, "Order status updated successfully", order)
}

// AdminDeleteOrder soft-deletes an order from the listings
func AdminDeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		resp.NotFound(c, "Order not found")
		return
	}
	if err := config.DB.Delete(&order).Error; err != nil {
		resp.ServerError(c, "Error deleting order")
		return
	}
	resp.OK(c, "Order deleted successfully", nil)
}

// AdminRevenueStatistics sums the totals of delivered orders
func AdminRevenueStatistics(c *gin.Context) {
	var orders []models.Order
	config.DB.Where("status = ?", models.StatusDelivered).Find(&orders)

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}
	resp.OK(c, "Revenue retrieved successfully", gin.H{
		"total_revenue":    revenue,
		"delivered_orders": len(orders),
	})
}

// AdminOrderCountByStatus counts orders in a given status
func AdminOrderCountByStatus(c *gin.Context) {
	status := models.OrderStatus(c.Param("status"))
	if !statemachine.IsValidStatus(status) {
		resp.BadRequest(c, "Unknown order status: "+string(status))
		return
	}
	var count int64
	config.DB.Model(&models.Order{}).Where("status = ?", status).Count(&count)
	resp.OK(c, "Order count retrieved successfully", gin.H{
		"status": status,
		"count":  count,
	})
}
