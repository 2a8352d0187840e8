package handlers

import (
	"restaurant-pro-api/config"
	"restaurant-pro-api/middleware"
	"restaurant-pro-api/models"
	"restaurant-pro-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

// AdminListUsers returns all users, optionally filtered by role
func AdminListUsers(c *gin.Context) {
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	query.Find(&users)
	resp.OK(c, "Users retrieved successfully", users)
}

// AdminGetUser returns one user
func AdminGetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		resp.NotFound(c, "User not found")
		return
	}
	resp.OK(c, "User retrieved successfully", user)
}

// AdminDeleteUser soft-deletes a user. Admins cannot delete themselves.
func AdminDeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		resp.NotFound(c, "User not found")
		return
	}
	if user.ID == middleware.GetUserID(c) {
		resp.BadRequest(c, "You cannot delete your own account")
		return
	}
	if err := config.DB.Delete(&user).Error; err != nil {
		resp.ServerError(c, "Error deleting user")
		return
	}
	resp.OK(c, "User deleted successfully", nil)
}
