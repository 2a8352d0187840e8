package routes

import (
	"restaurant-pro-api/handlers"
	"restaurant-pro-api/middleware"
	"restaurant-pro-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (no auth needed)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/categories/:id", handlers.GetCategory)
		public.GET("/products", handlers.ListProducts)
		public.GET("/products/:id", handlers.GetProduct)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		// Cart
		customer.GET("/cart", handlers.GetCart)
		customer.GET("/cart/count", handlers.GetCartCount)
		customer.POST("/cart/add", handlers.AddToCart)
		customer.PUT("/cart/update/:itemId", handlers.UpdateCartItem)
		customer.DELETE("/cart/remove/:itemId", handlers.RemoveCartItem)

		// Wishlist
		customer.GET("/wishlist", handlers.GetWishlist)
		customer.POST("/wishlist/add", handlers.AddToWishlist)
		customer.DELETE("/wishlist/remove/:itemId", handlers.RemoveWishlistItem)
		customer.DELETE("/wishlist/clear", handlers.ClearWishlist)

		// Orders
		customer.POST("/orders/place-order", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetails)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		// Categories
		admin.GET("/categories", handlers.AdminListCategories)
		admin.POST("/categories", handlers.AdminCreateCategory)
		admin.PUT("/categories/:id", handlers.AdminUpdateCategory)
		admin.DELETE("/categories/:id", handlers.AdminDeleteCategory)

		// Products
		admin.GET("/products", handlers.AdminListProducts)
		admin.POST("/products", handlers.AdminCreateProduct)
		admin.PUT("/products/:id", handlers.AdminUpdateProduct)
		admin.DELETE("/products/:id", handlers.AdminDeleteProduct)

		// Users
		admin.GET("/users", handlers.AdminListUsers)
		admin.GET("/users/:id", handlers.AdminGetUser)
		admin.DELETE("/users/:id", handlers.AdminDeleteUser)

		// Orders
		admin.GET("/orders", handlers.AdminListOrders)
		admin.GET("/orders/:id", handlers.AdminGetOrder)
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus)
		admin.DELETE("/orders/:id", handlers.AdminDeleteOrder)
		admin.GET("/orders/statistics/revenue", handlers.AdminRevenueStatistics)
		admin.GET("/orders/statistics/count/:status", handlers.AdminOrderCountByStatus)
	}
}
