package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-backend/models"
	"restaurant-backend/routers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testJWTSecret = []byte("test-secret")

// 建立記憶體sqlite資料庫與完整路由(不連Redis，快取自動退化為直接讀資料庫)
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	//記憶體資料庫必須固定單一連線，否則每條連線各是一個空資料庫
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.AboutContent{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return routers.SetupRouters(db, nil, testJWTSecret), db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func createMenuItem(t *testing.T, router *gin.Engine, name string, price float64) models.MenuItem {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/menu", gin.H{
		"name":  name,
		"price": price,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create menu item: status %d body %s", w.Code, w.Body.String())
	}
	var item models.MenuItem
	decodeBody(t, w, &item)
	return item
}
