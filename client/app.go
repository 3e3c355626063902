package client

import (
	"errors"

	"restaurant-backend/cart"
	"restaurant-backend/errs"
	"restaurant-backend/models"
)

// ErrNotLoggedIn 未登入不可結帳
var ErrNotLoggedIn = errors.New("login required before checkout")

// App 持有應用程式層級的狀態(目前使用者、購物車)，
// 狀態只能透過這裡的方法變更，再由各畫面讀取
type App struct {
	api         *Client
	Cart        *cart.Manager
	CurrentUser *models.User
}

func NewApp(api *Client, notify cart.Notifier) *App {
	return &App{
		api:  api,
		Cart: cart.NewManager(notify),
	}
}

// Login 登入成功後記住目前使用者，帳密不符回傳errs.ErrUnauthorized
func (a *App) Login(username, password string) error {
	user, err := a.api.Login(username, password)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.ErrUnauthorized
	}
	a.CurrentUser = user
	return nil
}

// Register 註冊並自動設為目前使用者
func (a *App) Register(req models.RegisterRequest) error {
	user, err := a.api.Register(req)
	if err != nil {
		return err
	}
	a.CurrentUser = &user
	return nil
}

// Logout 清除登入狀態，購物車內容保留
func (a *App) Logout() {
	a.CurrentUser = nil
}

// Checkout 結帳:驗證欄位、送出下單請求，確認成功後才清空購物車
func (a *App) Checkout(details cart.CheckoutDetails) (models.Order, error) {
	if a.CurrentUser == nil {
		return models.Order{}, ErrNotLoggedIn
	}

	req, err := cart.BuildOrderRequest(a.CurrentUser.ID, details, a.Cart.Items())
	if err != nil {
		return models.Order{}, err
	}

	order, err := a.api.PlaceOrder(req)
	if err != nil {
		return models.Order{}, err
	}

	a.Cart.Clear()
	return order, nil
}

// OrderHistory 目前使用者的訂單，由新到舊
func (a *App) OrderHistory() ([]models.Order, error) {
	if a.CurrentUser == nil {
		return nil, ErrNotLoggedIn
	}
	return a.api.GetUserOrders(a.CurrentUser.ID)
}
