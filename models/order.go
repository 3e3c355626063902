package models

import "time"

// Order 訂單建立後不可變更，Items為下單當下的快照
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	UserID        string      `json:"userId" gorm:"column:user_id;index;not null"`
	CustomerName  string      `json:"customerName" gorm:"column:customer_name;not null"`
	CustomerPhone string      `json:"customerPhone" gorm:"column:customer_phone;not null"`
	IsDelivery    bool        `json:"isDelivery" gorm:"column:is_delivery;not null"`
	Address       *string     `json:"address"`
	Total         float64     `json:"total" gorm:"not null"`
	CreatedAt     time.Time   `json:"date" gorm:"column:created_at;not null"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}
