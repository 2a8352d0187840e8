package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"restaurant-pro-api/config"
	"restaurant-pro-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory database. A single
// connection is forced so every query sees the same :memory: instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db
	return db
}

// asUser stands in for the JWT middleware in tests.
func asUser(userID uint, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("email", "test@example.com")
		c.Set("role", string(role))
		c.Next()
	}
}

// newCustomerRouter wires the customer endpoints behind a fake identity.
func newCustomerRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/customer")
	g.Use(asUser(userID, models.RoleCustomer))
	{
		g.GET("/cart", GetCart)
		g.GET("/cart/count", GetCartCount)
		g.POST("/cart/add", AddToCart)
		g.PUT("/cart/update/:itemId", UpdateCartItem)
		g.DELETE("/cart/remove/:itemId", RemoveCartItem)
		g.POST("/orders/place-order", PlaceOrder)
		g.GET("/orders", GetMyOrders)
		g.GET("/orders/:id", GetOrderDetails)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return e
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Name: "Test Customer", Email: "test@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, prepMinutes int) models.MenuItem {
	t.Helper()
	category := models.Category{Name: "Mains", IsActive: true}
	if err := db.Where("name = ?", category.Name).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price: %v", err)
	}
	item := models.MenuItem{
		CategoryID:      category.ID,
		Name:            name,
		Price:           p,
		IsAvailable:     true,
		PreparationTime: prepMinutes,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return item
}

func seedCartWithItem(t *testing.T, db *gorm.DB, userID uint, item models.MenuItem, qty int) models.Cart {
	t.Helper()
	cart := models.Cart{UserID: userID, Total: decimal.Zero}
	if err := db.Where("user_id = ?", userID).FirstOrCreate(&cart).Error; err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	line := models.CartItem{CartID: cart.ID, MenuItemID: item.ID, Quantity: qty, Price: item.Price}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("seed cart item: %v", err)
	}
	total := item.Price.Mul(decimal.NewFromInt(int64(qty)))
	if err := db.Model(&cart).Update("total", cart.Total.Add(total)).Error; err != nil {
		t.Fatalf("seed cart total: %v", err)
	}
	db.First(&cart, cart.ID)
	return cart
}

func placeOrderBody(orderType models.OrderType, address string) gin.H {
	return gin.H{
		"customer_name":    "Alice Smith",
		"phone_number":     "+201234567890",
		"order_type":       int(orderType),
		"delivery_address": address,
		"payment_method":   int(models.PaymentCash),
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
