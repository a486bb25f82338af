package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-admin/config"
	"github.com/yeremiapane/restaurant-admin/controllers"
	"github.com/yeremiapane/restaurant-admin/database"
	"github.com/yeremiapane/restaurant-admin/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// setupRouter registers the controllers the same way the real router does,
// without the cross-cutting middlewares.
func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	menuCtrl := controllers.NewMenuController(services.NewMenuService(db))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db, nil))
	analyticsCtrl := controllers.NewAnalyticsController(services.NewAnalyticsService(db))

	r.GET("/menu", menuCtrl.GetMenuItems)
	r.GET("/menu/search", menuCtrl.SearchMenuItems)
	r.GET("/menu/categories", menuCtrl.GetCategories)
	r.GET("/menu/:id", menuCtrl.GetMenuItemByID)
	r.POST("/menu", menuCtrl.CreateMenuItem)
	r.PUT("/menu/:id", menuCtrl.UpdateMenuItem)
	r.DELETE("/menu/:id", menuCtrl.DeleteMenuItem)
	r.PATCH("/menu/:id/availability", menuCtrl.ToggleAvailability)

	r.GET("/orders", orderCtrl.GetOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/analytics/top-sellers", analyticsCtrl.GetTopSellers)
	r.GET("/orders/analytics/revenue", analyticsCtrl.GetRevenue)
	r.GET("/orders/analytics/dashboard", analyticsCtrl.GetDashboardStats)
	r.GET("/orders/:id", orderCtrl.GetOrderByID)
	r.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func createMenuItem(t *testing.T, r http.Handler, name string, price float64) uint {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/menu", map[string]interface{}{
		"name":            name,
		"price":           price,
		"category":        "Beverage",
		"preparationTime": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item struct {
		ID uint `json:"id"`
	}
	decode(t, w, &item)
	return item.ID
}
