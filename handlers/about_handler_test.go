package handlers_test

import (
	"net/http"
	"testing"

	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
)

func TestGetAboutCreatesDefaultRow(t *testing.T) {
	router, db := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/about", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	var about models.AboutContent
	decodeBody(t, w, &about)
	if about.Story == "" || about.Usps == "" || about.Quality == "" {
		t.Errorf("default content not initialized: %+v", about)
	}

	//重複讀取不可新增第二列
	doRequest(t, router, http.MethodGet, "/api/about", nil)
	var count int64
	db.Model(&models.AboutContent{}).Count(&count)
	if count != 1 {
		t.Errorf("about_us rows = %d, want exactly 1", count)
	}
}

func TestUpdateAbout(t *testing.T) {
	router, _ := setupRouter(t)

	//先觸發預設列建立
	doRequest(t, router, http.MethodGet, "/api/about", nil)

	w := doRequest(t, router, http.MethodPut, "/api/about", gin.H{
		"story":   "قصتنا الجديدة",
		"usps":    "ما يميزنا",
		"quality": "معايير الجودة",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	var result struct {
		Success bool `json:"success"`
	}
	decodeBody(t, w, &result)
	if !result.Success {
		t.Errorf("unexpected response: %s", w.Body.String())
	}

	w = doRequest(t, router, http.MethodGet, "/api/about", nil)
	var about models.AboutContent
	decodeBody(t, w, &about)
	if about.Story != "قصتنا الجديدة" || about.Usps != "ما يميزنا" || about.Quality != "معايير الجودة" {
		t.Errorf("update not applied: %+v", about)
	}
}
