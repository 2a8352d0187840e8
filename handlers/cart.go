package handlers

import (
	"errors"

	"restaurant-pro-api/config"
	"restaurant-pro-api/middleware"
	"restaurant-pro-api/models"
	"restaurant-pro-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=100"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=100"`
}

// getOrCreateCart returns the user's cart, creating an empty one first
// time around.
func getOrCreateCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.MenuItem").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID, Total: decimal.Zero}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	return &cart, err
}

// recomputeCartTotal re-derives the persisted total cache from the
// cart's lines. Must run inside the same transaction as the mutation
// so the cart.total invariant holds after every commit.
func recomputeCartTotal(tx *gorm.DB, cartID uint) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return tx.Model(&models.Cart{}).Where("id = ?", cartID).Update("total", total).Error
}

// GetCart returns the customer's cart, creating it if needed
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cart, err := getOrCreateCart(config.DB, userID)
	if err != nil {
		resp.ServerError(c, "Error retrieving cart")
		return
	}
	resp.OK(c, "Cart retrieved successfully", cart)
}

// GetCartCount returns the total quantity across cart lines
func GetCartCount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var cart models.Cart
	if err := config.DB.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		resp.OK(c, "Cart count retrieved successfully", 0)
		return
	}
	count := 0
	for _, it := range cart.Items {
		count += it.Quantity
	}
	resp.OK(c, "Cart count retrieved successfully", count)
}

// AddToCart adds a product to the cart, merging with an existing line
// for the same product. The line keeps a price snapshot taken now.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var product models.MenuItem
	if err := config.DB.First(&product, req.ProductID).Error; err != nil || !product.IsAvailable {
		resp.BadRequest(c, "Product not available")
		return
	}

	cart, err := getOrCreateCart(config.DB, userID)
	if err != nil {
		resp.ServerError(c, "Error retrieving cart")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("cart_id = ? AND menu_item_id = ?", cart.ID, product.ID).First(&existing).Error
		if err == nil {
			existing.Quantity += req.Quantity
			existing.Price = product.Price // refresh snapshot on re-add
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			line := models.CartItem{
				CartID:     cart.ID,
				MenuItemID: product.ID,
				Quantity:   req.Quantity,
				Price:      product.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		} else {
			return err
		}
		return recomputeCartTotal(tx, cart.ID)
	})
	if err != nil {
		resp.ServerError(c, "Error adding to cart")
		return
	}

	config.DB.Preload("Items.MenuItem").First(cart, cart.ID)
	resp.OK(c, "Item added to cart successfully", cart)
}

// UpdateCartItem changes the quantity of one cart line
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var cart models.Cart
	if err := config.DB.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		resp.NotFound(c, "Cart not found")
		return
	}

	var item models.CartItem
	if err := config.DB.Where("id = ? AND cart_id = ?", c.Param("itemId"), cart.ID).First(&item).Error; err != nil {
		resp.NotFound(c, "Cart item not found")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&item).Update("quantity", req.Quantity).Error; err != nil {
			return err
		}
		return recomputeCartTotal(tx, cart.ID)
	})
	if err != nil {
		resp.ServerError(c, "Error updating cart item")
		return
	}

	config.DB.Preload("Items.MenuItem").First(&cart, cart.ID)
	resp.OK(c, "Cart item updated successfully", cart)
}

// RemoveCartItem deletes one line from the cart
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var cart models.Cart
	if err := config.DB.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		resp.NotFound(c, "Cart not found")
		return
	}

	var item models.CartItem
	if err := config.DB.Where("id = ? AND cart_id = ?", c.Param("itemId"), cart.ID).First(&item).Error; err != nil {
		resp.NotFound(c, "Cart item not found")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return recomputeCartTotal(tx, cart.ID)
	})
	if err != nil {
		resp.ServerError(c, "Error removing cart item")
		return
	}

	config.DB.Preload("Items.MenuItem").First(&cart, cart.ID)
	resp.OK(c, "Item removed from cart successfully", cart)
}
