package models

// OrderItem 訂單明細，價格與名稱為下單時快照，之後菜單修改或刪除都不影響
type OrderItem struct {
	ID         uint    `json:"-" gorm:"primaryKey"`
	OrderID    string  `json:"-" gorm:"column:order_id;index;not null"`
	MenuItemID uint    `json:"menuItemId" gorm:"column:menu_item_id;not null"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	Price      float64 `json:"price" gorm:"column:price_at_order;not null"`
	Name       string  `json:"name" gorm:"column:item_name_snapshot"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
