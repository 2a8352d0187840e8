package handlers

import (
	"restaurant-pro-api/config"
	"restaurant-pro-api/models"
	"restaurant-pro-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	ImageURL    string `json:"image_url"`
	IsActive    *bool  `json:"is_active"`
}

type ProductRequest struct {
	CategoryID      uint            `json:"category_id" binding:"required"`
	Name            string          `json:"name" binding:"required,max=200"`
	Description     string          `json:"description" binding:"max=1000"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	PreparationTime int             `json:"preparation_time" binding:"omitempty,min=1,max=180"`
	IsAvailable     *bool           `json:"is_available"`
	ImageURL        string          `json:"image_url"`
}

// AdminListCategories returns every category, active or not
func AdminListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Preload("MenuItems").Find(&categories)
	resp.OK(c, "Categories retrieved successfully", categories)
}

// AdminCreateCategory adds a new category
func AdminCreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := config.DB.Create(&category).Error; err != nil {
		resp.ServerError(c, "Error creating category")
		return
	}
	resp.Created(c, "Category created successfully", category)
}

// AdminUpdateCategory updates an existing category
func AdminUpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		resp.NotFound(c, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	category.ImageURL = req.ImageURL
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := config.DB.Save(&category).Error; err != nil {
		resp.ServerError(c, "Error updating category")
		return
	}
	resp.OK(c, "Category updated successfully", category)
}

// AdminDeleteCategory soft-deletes a category without products
func AdminDeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		resp.NotFound(c, "Category not found")
		return
	}

	var count int64
	config.DB.Model(&models.MenuItem{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		resp.BadRequest(c, "Cannot delete a category that still has products")
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		resp.ServerError(c, "Error deleting category")
		return
	}
	resp.OK(c, "Category deleted successfully", nil)
}

// AdminListProducts returns every menu item, available or not
func AdminListProducts(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Preload("Category")
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	query.Find(&items)
	resp.OK(c, "Products retrieved successfully", items)
}

// AdminCreateProduct adds a menu item to a category
func AdminCreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		resp.BadRequest(c, "Price must be greater than zero")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		resp.BadRequest(c, "Category not found")
		return
	}

	item := models.MenuItem{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		PreparationTime: req.PreparationTime,
		IsAvailable:     true,
		ImageURL:        req.ImageURL,
	}
	if item.PreparationTime == 0 {
		item.PreparationTime = 15
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := config.DB.Create(&item).Error; err != nil {
		resp.ServerError(c, "Error creating product")
		return
	}
	resp.Created(c, "Product created successfully", item)
}

// AdminUpdateProduct updates a menu item. Existing cart and order
// snapshots keep their captured prices.
func AdminUpdateProduct(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		resp.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		resp.BadRequest(c, "Price must be greater than zero")
		return
	}

	item.CategoryID = req.CategoryID
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.ImageURL = req.ImageURL
	if req.PreparationTime != 0 {
		item.PreparationTime = req.PreparationTime
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := config.DB.Save(&item).Error; err != nil {
		resp.ServerError(c, "Error updating product")
		return
	}
	resp.OK(c, "Product updated successfully", item)
}

// AdminDeleteProduct soft-deletes a menu item
func AdminDeleteProduct(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		resp.NotFound(c, "Product not found")
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		resp.ServerError(c, "Error deleting product")
		return
	}
	resp.OK(c, "Product deleted successfully", nil)
}
