package handlers

import (
	"log"
	"net/http"
	"time"

	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 下單:在單一交易內寫入訂單與所有明細，明細保存下單當下的價格與名稱快照，
// 任何一筆寫入失敗整筆交易回滾，不會留下部分資料
func PlaceOrderHandler(c *gin.Context, db *gorm.DB) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	order := models.Order{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		IsDelivery:    req.IsDelivery,
		Address:       req.Address,
		Total:         req.Total,
		CreatedAt:     time.Now().UTC(),
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": tx.Error.Error(),
		})
		return
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Printf("寫入訂單失敗: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	lines := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		//menuItemId缺漏時退回使用id欄位(相容舊版客戶端送出的購物車內容)
		menuItemID := item.MenuItemID
		if menuItemID == 0 {
			menuItemID = item.ID
		}
		if menuItemID == 0 {
			//無法對應菜單品項的明細直接略過，不中斷整筆訂單
			log.Printf("訂單品項缺少菜單編號，已略過: %+v\n", item)
			continue
		}

		line := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Name:       item.Name,
		}
		if err := tx.Create(&line).Error; err != nil {
			tx.Rollback()
			log.Printf("寫入訂單明細失敗: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}
		lines = append(lines, line)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	//回傳完整訂單(含生成的id與時間)，客戶端不需再查詢一次
	order.Items = lines
	c.JSON(http.StatusOK, order)
}

// 查詢所有訂單，明細依所屬訂單分組
func GetOrdersHandler(c *gin.Context, db *gorm.DB) {
	var orders []models.Order
	if err := db.Preload("Items").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	for i := range orders {
		if orders[i].Items == nil {
			orders[i].Items = []models.OrderItem{}
		}
	}

	c.JSON(http.StatusOK, orders)
}
