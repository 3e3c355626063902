package models

// 前後端共用的請求格式，取代原本未定型的JSON物件

// OrderItemPayload 下單明細，menuItemId缺漏時後端會退回使用id欄位
type OrderItemPayload struct {
	MenuItemID uint    `json:"menuItemId,omitempty"`
	ID         uint    `json:"id,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Name       string  `json:"name"`
}

// PlaceOrderRequest 下單請求，total由客戶端計算(含運費)
type PlaceOrderRequest struct {
	UserID        string             `json:"userId" binding:"required"`
	CustomerName  string             `json:"customerName" binding:"required"`
	CustomerPhone string             `json:"customerPhone" binding:"required"`
	IsDelivery    bool               `json:"isDelivery"`
	Address       *string            `json:"address"`
	Total         float64            `json:"total"`
	Items         []OrderItemPayload `json:"items" binding:"required,min=1"`
}

// MenuItemRequest 新增/修改菜單品項
type MenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	IsSpecial   bool     `json:"isSpecial"`
}

// RegisterRequest 註冊請求
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// LoginRequest 登入請求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AboutRequest 更新關於我們的內容
type AboutRequest struct {
	Story   string `json:"story"`
	Usps    string `json:"usps"`
	Quality string `json:"quality"`
}
