package cart

import (
	"testing"

	"restaurant-backend/models"
)

func menuItem(id uint, name string, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price}
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	m := NewManager(nil)
	item := menuItem(1, "منسف", 7.50)

	for i := 0; i < 5; i++ {
		m.AddItem(item)
	}

	items := m.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 cart entry, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("expected quantity 5 after 5 adds, got %d", items[0].Quantity)
	}
}

func TestAddItemKeepsDistinctEntries(t *testing.T) {
	m := NewManager(nil)
	m.AddItem(menuItem(1, "منسف", 7.50))
	m.AddItem(menuItem(2, "مقلوبة", 6.00))
	m.AddItem(menuItem(1, "منسف", 7.50))

	if m.Len() != 2 {
		t.Fatalf("expected 2 distinct entries, got %d", m.Len())
	}
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	m := NewManager(nil)
	m.AddItem(menuItem(1, "منسف", 7.50))

	tests := []struct {
		delta int
		want  int
	}{
		{+2, 3},
		{-1, 2},
		{-100, 1},
		{-1, 1},
		{+1, 2},
	}
	for _, tt := range tests {
		m.UpdateQuantity(1, tt.delta)
		if got := m.Items()[0].Quantity; got != tt.want {
			t.Errorf("after delta %d: quantity = %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	m := NewManager(nil)
	m.AddItem(menuItem(1, "منسف", 7.50))
	m.UpdateQuantity(99, 3)

	if got := m.Items()[0].Quantity; got != 1 {
		t.Errorf("quantity changed by update on unknown id: %d", got)
	}
}

func TestRemoveItem(t *testing.T) {
	m := NewManager(nil)
	m.AddItem(menuItem(1, "منسف", 7.50))
	m.AddItem(menuItem(2, "مقلوبة", 6.00))

	m.RemoveItem(1)
	if m.Len() != 1 {
		t.Fatalf("expected 1 entry after remove, got %d", m.Len())
	}
	if m.Items()[0].ID != 2 {
		t.Errorf("wrong entry removed")
	}

	//移除不存在的品項不動作
	m.RemoveItem(42)
	if m.Len() != 1 {
		t.Errorf("remove of unknown id changed the cart")
	}
}

func TestTotalExcludesDeliveryFee(t *testing.T) {
	m := NewManager(nil)
	m.AddItem(menuItem(1, "منسف", 7.50))
	m.AddItem(menuItem(1, "منسف", 7.50))
	m.AddItem(menuItem(2, "مقلوبة", 6.00))
	m.UpdateQuantity(2, 2)

	want := 7.50*2 + 6.00*3
	if got := m.Total(); got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	m := NewManager(nil)
	m.AddItem(menuItem(1, "منسف", 7.50))
	m.Clear()

	if m.Len() != 0 {
		t.Errorf("cart not empty after Clear")
	}
	if m.Total() != 0 {
		t.Errorf("Total() = %v after Clear, want 0", m.Total())
	}
}

func TestAddItemFiresNotification(t *testing.T) {
	var messages []string
	m := NewManager(func(msg string) { messages = append(messages, msg) })

	m.AddItem(menuItem(1, "منسف", 7.50))
	m.AddItem(menuItem(1, "منسف", 7.50))

	if len(messages) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(messages))
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	m := NewManager(nil)
	m.AddItem(menuItem(1, "منسف", 7.50))

	items := m.Items()
	items[0].Quantity = 99

	if got := m.Items()[0].Quantity; got != 1 {
		t.Errorf("mutating the returned slice affected the cart: quantity = %d", got)
	}
}
