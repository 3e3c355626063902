package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"restaurant-backend/jwt"

	"github.com/gin-gonic/gin"
)

func registerBody(username string) gin.H {
	return gin.H{
		"username": username,
		"password": "pw1",
		"fullName": "علي أحمد",
		"phone":    "0791234567",
	}
}

func TestRegister(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/auth/register", registerBody("ali"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	var user struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
	}
	decodeBody(t, w, &user)
	if user.ID == "" {
		t.Error("user id not generated")
	}
	if user.Username != "ali" || user.FullName != "علي أحمد" {
		t.Errorf("unexpected user: %+v", user)
	}
	//回應絕不可帶出密碼
	if strings.Contains(w.Body.String(), "pw1") {
		t.Error("password leaked in register response")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/auth/register", registerBody("ali"))
	if w.Code != http.StatusOK {
		t.Fatalf("first register failed: %d", w.Code)
	}

	w = doRequest(t, router, http.MethodPost, "/api/auth/register", registerBody("ali"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "اسم المستخدم مسجل مسبقاً") {
		t.Errorf("duplicate message missing: %s", w.Body.String())
	}
}

func TestRegisterMissingFields(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "ali",
		"password": "pw1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLogin(t *testing.T) {
	router, _ := setupRouter(t)
	doRequest(t, router, http.MethodPost, "/api/auth/register", registerBody("ali"))

	w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "ali",
		"password": "pw1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}

	var user struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		IsAdmin  bool   `json:"is_admin"`
	}
	decodeBody(t, w, &user)
	if user.Username != "ali" || user.IsAdmin {
		t.Errorf("unexpected login response: %+v", user)
	}

	//登入成功時回應標頭帶有可驗證的Token
	authHeader := w.Header().Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		t.Fatalf("missing bearer token header: %q", authHeader)
	}
	claims, err := jwt.VerifyToken(testJWTSecret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		t.Fatalf("token verification failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user id = %q, want %q", claims.UserID, user.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := setupRouter(t)
	doRequest(t, router, http.MethodPost, "/api/auth/register", registerBody("ali"))

	w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "ali",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	//帳密不符時不可回傳使用者資料
	if strings.Contains(w.Body.String(), "fullName") {
		t.Error("user record leaked on failed login")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "ghost",
		"password": "pw1",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
