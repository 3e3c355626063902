package models

// MenuItem 菜單品項，is_special用於前台促銷專區顯示
type MenuItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"not null"`
	Image       string  `json:"image"`
	IsSpecial   bool    `json:"isSpecial" gorm:"column:is_special;default:false"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
