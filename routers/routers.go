package routers

import (
	"net/http"

	"restaurant-backend/handlers"
	"restaurant-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRouters(db *gorm.DB, rdb *redis.Client, jwtSecret []byte) *gin.Engine {
	//建立Gin路由器
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization")
		c.Next()
	})
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil
	}

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.Use(middleware.MetricsMiddleware())
	router.GET("/metrics", middleware.MetricsHandler())

	////所有前台路由維持公開，中間件只做身分識別
	router.Use(middleware.AuthMiddleware(jwtSecret))
	{
		//查詢菜單列表
		router.GET("/api/menu", func(context *gin.Context) {
			handlers.GetMenuHandler(context, db, rdb)
		})
		//新增菜單品項
		router.POST("/api/menu", func(context *gin.Context) {
			handlers.CreateMenuItemHandler(context, db, rdb)
		})
		//修改菜單品項
		router.PUT("/api/menu/:id", func(context *gin.Context) {
			handlers.UpdateMenuItemHandler(context, db, rdb)
		})
		//刪除菜單品項
		router.DELETE("/api/menu/:id", func(context *gin.Context) {
			handlers.DeleteMenuItemHandler(context, db, rdb)
		})
		//查詢訂單列表(含明細)
		router.GET("/api/orders", func(context *gin.Context) {
			handlers.GetOrdersHandler(context, db)
		})
		//下單
		router.POST("/api/orders", func(context *gin.Context) {
			handlers.PlaceOrderHandler(context, db)
		})
		//查詢關於我們
		router.GET("/api/about", func(context *gin.Context) {
			handlers.GetAboutHandler(context, db)
		})
		//更新關於我們
		router.PUT("/api/about", func(context *gin.Context) {
			handlers.UpdateAboutHandler(context, db)
		})
		//註冊帳號
		router.POST("/api/auth/register", func(context *gin.Context) {
			handlers.RegisterHandler(context, db)
		})
		//登入帳號
		router.POST("/api/auth/login", func(context *gin.Context) {
			handlers.LoginHandler(context, db, jwtSecret)
		})
	}

	return router
}
