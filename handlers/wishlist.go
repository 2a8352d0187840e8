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

type AddToWishlistRequest struct {
	ProductID       uint `json:"product_id" binding:"required"`
	DesiredQuantity int  `json:"desired_quantity" binding:"omitempty,min=1,max=100"`
}

func getOrCreateWishlist(db *gorm.DB, userID uint) (*models.Wishlist, error) {
	var wl models.Wishlist
	err := db.Preload("Items.MenuItem").Where("user_id = ?", userID).First(&wl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wl = models.Wishlist{UserID: userID, TotalEstimatedPrice: decimal.Zero}
		if err := db.Create(&wl).Error; err != nil {
			return nil, err
		}
		return &wl, nil
	}
	return &wl, err
}

func recomputeWishlistTotal(tx *gorm.DB, wishlistID uint) error {
	var items []models.WishlistItem
	if err := tx.Where("wishlist_id = ?", wishlistID).Find(&items).Error; err != nil {
		return err
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.DesiredQuantity))))
	}
	return tx.Model(&models.Wishlist{}).Where("id = ?", wishlistID).
		Update("total_estimated_price", total).Error
}

// GetWishlist returns the customer's wishlist, creating it if needed
func GetWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	wl, err := getOrCreateWishlist(config.DB, userID)
	if err != nil {
		resp.ServerError(c, "Error retrieving wishlist")
		return
	}
	resp.OK(c, "Wishlist retrieved successfully", wl)
}

// AddToWishlist saves a product for later with a price snapshot
func AddToWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.DesiredQuantity == 0 {
		req.DesiredQuantity = 1
	}

	var product models.MenuItem
	if err := config.DB.First(&product, req.ProductID).Error; err != nil || !product.IsAvailable {
		resp.BadRequest(c, "Product not available")
		return
	}

	wl, err := getOrCreateWishlist(config.DB, userID)
	if err != nil {
		resp.ServerError(c, "Error retrieving wishlist")
		return
	}

	var existing models.WishlistItem
	if err := config.DB.Where("wishlist_id = ? AND menu_item_id = ?", wl.ID, product.ID).
		First(&existing).Error; err == nil {
		resp.Conflict(c, "Product already in wishlist")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		item := models.WishlistItem{
			WishlistID:      wl.ID,
			MenuItemID:      product.ID,
			DesiredQuantity: req.DesiredQuantity,
			Price:           product.Price,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return recomputeWishlistTotal(tx, wl.ID)
	})
	if err != nil {
		resp.ServerError(c, "Error adding to wishlist")
		return
	}

	config.DB.Preload("Items.MenuItem").First(wl, wl.ID)
	resp.OK(c, "Item added to wishlist successfully", wl)
}

// RemoveWishlistItem deletes one item from the wishlist
func RemoveWishlistItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var wl models.Wishlist
	if err := config.DB.Where("user_id = ?", userID).First(&wl).Error; err != nil {
		resp.NotFound(c, "Wishlist not found")
		return
	}

	var item models.WishlistItem
	if err := config.DB.Where("id = ? AND wishlist_id = ?", c.Param("itemId"), wl.ID).
		First(&item).Error; err != nil {
		resp.NotFound(c, "Wishlist item not found")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return recomputeWishlistTotal(tx, wl.ID)
	})
	if err != nil {
		resp.ServerError(c, "Error removing wishlist item")
		return
	}

	config.DB.Preload("Items.MenuItem").First(&wl, wl.ID)
	resp.OK(c, "Item removed from wishlist successfully", wl)
}

// ClearWishlist removes everything from the wishlist
func ClearWishlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var wl models.Wishlist
	if err := config.DB.Where("user_id = ?", userID).First(&wl).Error; err != nil {
		resp.NotFound(c, "Wishlist not found")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wishlist_id = ?", wl.ID).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&wl).Update("total_estimated_price", decimal.Zero).Error
	})
	if err != nil {
		resp.ServerError(c, "Error clearing wishlist")
		return
	}

	resp.OK(c, "Wishlist cleared successfully", nil)
}
