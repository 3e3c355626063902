package handlers

import (
	"net/http"

	"restaurant-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 查詢關於我們的內容，首次讀取時寫入預設文案(整張表只有id=1一列)
func GetAboutHandler(c *gin.Context, db *gorm.DB) {
	var about models.AboutContent
	err := db.First(&about, 1).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}

		about = models.DefaultAbout()
		if err := db.Create(&about).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, about)
}

// 更新關於我們的內容
func UpdateAboutHandler(c *gin.Context, db *gorm.DB) {
	var req models.AboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	err := db.Model(&models.AboutContent{}).
		Where("id = ?", 1).
		Select("story", "usps", "quality").
		Updates(models.AboutContent{
			Story:   req.Story,
			Usps:    req.Usps,
			Quality: req.Quality,
		}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
