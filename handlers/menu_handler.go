package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const menuCacheKey = "menu"

// 嘗試從Redis讀取菜單，快取未命中或失敗時回傳nil
func readMenuCache(c *gin.Context, rdb *redis.Client) []models.MenuItem {
	if rdb == nil {
		return nil
	}

	cached, err := rdb.ZRange(c, menuCacheKey, 0, -1).Result()
	if err != nil || len(cached) == 0 {
		return nil
	}

	menu := make([]models.MenuItem, 0, len(cached))
	for _, raw := range cached {
		var item models.MenuItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			log.Printf("無法反序列化菜單品項: %v\n", err)
			return nil
		}
		menu = append(menu, item)
	}
	return menu
}

// 將菜單寫入Redis，失敗只記錄不影響回應
func writeMenuCache(c *gin.Context, rdb *redis.Client, menu []models.MenuItem) {
	if rdb == nil {
		return
	}

	rdb.Del(c, menuCacheKey)
	for _, item := range menu {
		itemJSON, err := json.Marshal(item)
		if err != nil {
			log.Printf("無法序列化菜單品項: %v\n", err)
			continue
		}
		if err := rdb.ZAdd(c, menuCacheKey, redis.Z{
			Score:  float64(item.ID),
			Member: itemJSON,
		}).Err(); err != nil {
			log.Printf("無法將菜單品項加入Redis: %v\n", err)
		}
	}
}

// 菜單異動後清除快取
func invalidateMenuCache(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(c, menuCacheKey).Err(); err != nil {
		log.Printf("無法清除菜單快取: %v\n", err)
	}
}

// 查詢菜單列表，優先讀取Redis快取，失敗則讀取資料庫並回填
func GetMenuHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	if menu := readMenuCache(c, rdb); menu != nil {
		c.JSON(http.StatusOK, menu)
		return
	}

	var menu []models.MenuItem
	if err := db.Find(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if menu == nil {
		menu = []models.MenuItem{}
	}

	writeMenuCache(c, rdb, menu)

	c.JSON(http.StatusOK, menu)
}

// 新增菜單品項
func CreateMenuItemHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	//名稱和價格為必填
	if req.Name == "" || req.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		IsSpecial:   req.IsSpecial,
	}
	if err := db.Create(&item).Error; err != nil {
		log.Printf("新增菜單品項失敗: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	invalidateMenuCache(c, rdb)

	c.JSON(http.StatusOK, item)
}

// 修改菜單品項，已存在的訂單明細不受影響(明細保存的是下單時快照)
func UpdateMenuItemHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid menu item id",
		})
		return
	}

	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var price float64
	if req.Price != nil {
		price = *req.Price
	}

	result := db.Model(&models.MenuItem{}).
		Where("id = ?", id).
		Select("name", "description", "price", "image", "is_special").
		Updates(models.MenuItem{
			Name:        req.Name,
			Description: req.Description,
			Price:       price,
			Image:       req.Image,
			IsSpecial:   req.IsSpecial,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	invalidateMenuCache(c, rdb)

	c.JSON(http.StatusOK, gin.H{
		"message": "Updated",
		"changes": result.RowsAffected,
	})
}

// 刪除菜單品項
func DeleteMenuItemHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid menu item id",
		})
		return
	}

	result := db.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	invalidateMenuCache(c, rdb)

	c.JSON(http.StatusOK, gin.H{
		"message": "Deleted",
		"changes": result.RowsAffected,
	})
}
