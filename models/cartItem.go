package models

// CartItem 購物車品項:菜單品項加入時的快照加上數量，數量永遠>=1
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Subtotal 單項小計
func (ci CartItem) Subtotal() float64 {
	return ci.Price * float64(ci.Quantity)
}
