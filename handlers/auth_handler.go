package handlers

import (
	"log"
	"net/http"
	"strings"

	"restaurant-backend/jwt"
	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 原站回傳的重複註冊訊息，維持不變讓前端顯示一致
const duplicateUsernameMessage = "اسم المستخدم مسجل مسبقاً"

// 檢查使用者名稱是否重複
func IsUsernameExists(db *gorm.DB, username string) (bool, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil //使用者名稱沒重複，不代表錯誤
		}
		return false, err //有錯誤
	}
	return true, nil //使用者名稱重複
}

// 註冊使用者帳戶，密碼依原系統行為以明文儲存(已標記為安全缺口)
func RegisterHandler(c *gin.Context, db *gorm.DB) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	//檢查使用者名稱是否重複
	exists, err := IsUsernameExists(db, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": duplicateUsernameMessage,
		})
		return
	}

	newUser := models.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		IsAdmin:  false,
	}

	if err := db.Create(&newUser).Error; err != nil {
		//兩個請求同時註冊同名帳號時，仍可能撞到唯一索引
		if strings.Contains(strings.ToUpper(err.Error()), "UNIQUE") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": duplicateUsernameMessage,
			})
			return
		}
		log.Printf("無法儲存使用者資料至資料庫: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	//成功註冊，回傳不含密碼的使用者資料
	c.JSON(http.StatusOK, gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
		"fullName": newUser.FullName,
		"phone":    newUser.Phone,
	})
}

// 登入:帳號與密碼完全相符才回傳使用者資料，否則一律回401不區分原因
func LoginHandler(c *gin.Context, db *gorm.DB, jwtSecret []byte) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var user models.User
	err := db.First(&user, "username = ? AND password = ?", req.Username, req.Password).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	//生成JWT Token放在回應標頭，不改變前端既有解析的JSON內容
	token, err := jwt.GenerateToken(jwtSecret, user.ID, user.IsAdmin)
	if err != nil {
		log.Printf("生成JWT Token錯誤: %v\n", err)
	} else {
		c.Header("Authorization", "Bearer "+token)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"fullName": user.FullName,
		"phone":    user.Phone,
		"is_admin": user.IsAdmin,
	})
}
