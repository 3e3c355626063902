package cart

import (
	"restaurant-backend/errs"
	"restaurant-backend/models"
)

// DeliveryFee 外送固定運費
const DeliveryFee = 2.50

// CheckoutDetails 結帳表單內容，姓名電話可與帳戶資料不同
type CheckoutDetails struct {
	Name       string
	Phone      string
	IsDelivery bool
	Address    string
}

// GrandTotal 品項總額加上運費(僅外送時計入)
func GrandTotal(items []models.CartItem, isDelivery bool) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	if isDelivery {
		total += DeliveryFee
	}
	return total
}

// BuildOrderRequest 驗證結帳欄位並組出下單請求，
// 驗證失敗回傳*errs.ValidationError且不應送出任何請求
func BuildOrderRequest(userID string, details CheckoutDetails, items []models.CartItem) (models.PlaceOrderRequest, error) {
	if details.Name == "" || details.Phone == "" {
		return models.PlaceOrderRequest{}, &errs.ValidationError{
			Field:   "name/phone",
			Message: "يرجى تعبئة الاسم ورقم الهاتف",
		}
	}
	if details.IsDelivery && details.Address == "" {
		return models.PlaceOrderRequest{}, &errs.ValidationError{
			Field:   "address",
			Message: "يرجى إدخال عنوان التوصيل",
		}
	}
	if len(items) == 0 {
		return models.PlaceOrderRequest{}, &errs.ValidationError{
			Field:   "items",
			Message: "السلة فارغة",
		}
	}

	payload := make([]models.OrderItemPayload, 0, len(items))
	for _, item := range items {
		payload = append(payload, models.OrderItemPayload{
			MenuItemID: item.ID,
			ID:         item.ID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Name:       item.Name,
		})
	}

	var address *string
	if details.Address != "" {
		address = &details.Address
	}

	return models.PlaceOrderRequest{
		UserID:        userID,
		CustomerName:  details.Name,
		CustomerPhone: details.Phone,
		IsDelivery:    details.IsDelivery,
		Address:       address,
		Total:         GrandTotal(items, details.IsDelivery),
		Items:         payload,
	}, nil
}
