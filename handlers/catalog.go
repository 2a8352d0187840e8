package handlers

import (
	"restaurant-pro-api/config"
	"restaurant-pro-api/models"
	"restaurant-pro-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

// ListCategories returns all active categories (public)
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Where("is_active = ?", true).Find(&categories)
	resp.OK(c, "Categories retrieved successfully", categories)
}

// GetCategory returns one active category with its available products
func GetCategory(c *gin.Context) {
	var category models.Category
	err := config.DB.
		Preload("MenuItems", "is_available = ?", true).
		Where("is_active = ?", true).
		First(&category, c.Param("id")).Error
	if err != nil {
		resp.NotFound(c, "Category not found")
		return
	}
	resp.OK(c, "Category retrieved successfully", category)
}

// ListProducts returns available menu items, optionally filtered
func ListProducts(c *gin.Context) {
	query := config.DB.Preload("Category").Where("is_available = ?", true)

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var items []models.MenuItem
	query.Find(&items)
	resp.OK(c, "Products retrieved successfully", items)
}

// GetProduct returns a single available menu item
func GetProduct(c *gin.Context) {
	var item models.MenuItem
	err := config.DB.Preload("Category").
		Where("is_available = ?", true).
		First(&item, c.Param("id")).Error
	if err != nil {
		resp.NotFound(c, "Product not found")
		return
	}
	resp.OK(c, "Product retrieved successfully", item)
}
