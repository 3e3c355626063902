// Package cart 管理客戶端的購物車狀態:所有異動都經由Manager的方法進行，
// 不直接暴露內部切片(取代原本散落各處的共享可變狀態)
package cart

import (
	"fmt"

	"restaurant-backend/models"
)

// Notifier 購物車異動後的提示回呼(對應前端的toast通知)，可為nil
type Notifier func(message string)

type Manager struct {
	items  []models.CartItem
	notify Notifier
}

func NewManager(notify Notifier) *Manager {
	return &Manager{notify: notify}
}

func (m *Manager) emit(message string) {
	if m.notify != nil {
		m.notify(message)
	}
}

// AddItem 加入菜單品項:已存在則數量+1，否則以數量1新增，永遠成功
func (m *Manager) AddItem(item models.MenuItem) {
	for i := range m.items {
		if m.items[i].ID == item.ID {
			m.items[i].Quantity++
			m.emit(fmt.Sprintf("تم إضافة %s للسلة", item.Name))
			return
		}
	}

	m.items = append(m.items, models.CartItem{
		MenuItem: item,
		Quantity: 1,
	})
	m.emit(fmt.Sprintf("تم إضافة %s للسلة", item.Name))
}

// UpdateQuantity 調整數量，下限為1(移除需明確呼叫RemoveItem)，品項不存在時不動作
func (m *Manager) UpdateQuantity(id uint, delta int) {
	for i := range m.items {
		if m.items[i].ID == id {
			quantity := m.items[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			m.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem 移除品項，不存在時不動作
func (m *Manager) RemoveItem(id uint) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return
		}
	}
}

// Total 所有品項小計加總，不含運費
func (m *Manager) Total() float64 {
	total := 0.0
	for _, item := range m.items {
		total += item.Subtotal()
	}
	return total
}

// Clear 清空購物車，只在下單成功後呼叫
func (m *Manager) Clear() {
	m.items = nil
}

// Items 回傳購物車內容的複本
func (m *Manager) Items() []models.CartItem {
	items := make([]models.CartItem, len(m.items))
	copy(items, m.items)
	return items
}

func (m *Manager) Len() int {
	return len(m.items)
}
