package middleware

import (
	"log"
	"strings"

	"restaurant-backend/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 辨識請求攜帶的Token，只做身分識別不會中止請求，
// 前台所有路由維持公開(沿用原系統的API契約)
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if token == "" || token == authHeader {
			c.Next()
			return
		}

		//如Token不合法或錯誤則視同未登入
		claims, err := jwt.VerifyToken(secret, token)
		if err != nil {
			log.Printf("無法驗證Token: %v\n", err)
			c.Next()
			return
		}

		c.Set("UserID", claims.UserID)
		c.Set("IsAdmin", claims.IsAdmin)
		c.Next()
	}
}
