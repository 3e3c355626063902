// Package client 為後端API的型別化客戶端(原dbService的Go版本)
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"restaurant-backend/errs"
	"restaurant-backend/models"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type apiError struct {
	Error string `json:"error"`
}

// 讀取錯誤回應的error欄位，解析失敗時退回HTTP狀態描述
func decodeError(resp *http.Response) error {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%s", apiErr.Error)
	}
	return fmt.Errorf("request failed: %s", resp.Status)
}

func (c *Client) doJSON(method, path string, body any, out any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		//伺服器端寫入失敗(交易已回滾)，包成StorageError讓呼叫端能判別
		return resp, &errs.StorageError{Op: method + " " + path, Err: decodeError(resp)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

// GetMenu 查詢菜單列表
func (c *Client) GetMenu() ([]models.MenuItem, error) {
	var menu []models.MenuItem
	if _, err := c.doJSON(http.MethodGet, "/api/menu", nil, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// AddMenuItem 新增菜單品項
func (c *Client) AddMenuItem(req models.MenuItemRequest) (models.MenuItem, error) {
	var item models.MenuItem
	if _, err := c.doJSON(http.MethodPost, "/api/menu", req, &item); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// UpdateMenuItem 修改菜單品項
func (c *Client) UpdateMenuItem(item models.MenuItem) error {
	path := fmt.Sprintf("/api/menu/%d", item.ID)
	_, err := c.doJSON(http.MethodPut, path, item, nil)
	return err
}

// DeleteMenuItem 刪除菜單品項
func (c *Client) DeleteMenuItem(id uint) error {
	path := fmt.Sprintf("/api/menu/%d", id)
	_, err := c.doJSON(http.MethodDelete, path, nil, nil)
	return err
}

// GetOrders 查詢所有訂單
func (c *Client) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	if _, err := c.doJSON(http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetUserOrders 查詢指定使用者的訂單，依下單時間由新到舊排序
// (後端只提供全部訂單，過濾與排序在客戶端進行，沿用原系統作法)
func (c *Client) GetUserOrders(userID string) ([]models.Order, error) {
	orders, err := c.GetOrders()
	if err != nil {
		return nil, err
	}

	userOrders := make([]models.Order, 0)
	for _, order := range orders {
		if order.UserID == userID {
			userOrders = append(userOrders, order)
		}
	}
	sort.Slice(userOrders, func(i, j int) bool {
		return userOrders[i].CreatedAt.After(userOrders[j].CreatedAt)
	})
	return userOrders, nil
}

// PlaceOrder 下單，成功時回傳含生成id與時間的完整訂單
func (c *Client) PlaceOrder(req models.PlaceOrderRequest) (models.Order, error) {
	var order models.Order
	if _, err := c.doJSON(http.MethodPost, "/api/orders", req, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// GetAbout 查詢關於我們的內容
func (c *Client) GetAbout() (models.AboutContent, error) {
	var about models.AboutContent
	if _, err := c.doJSON(http.MethodGet, "/api/about", nil, &about); err != nil {
		return models.AboutContent{}, err
	}
	return about, nil
}

// UpdateAbout 更新關於我們的內容
func (c *Client) UpdateAbout(req models.AboutRequest) error {
	_, err := c.doJSON(http.MethodPut, "/api/about", req, nil)
	return err
}

// Register 註冊帳號，使用者名稱重複時回傳errs.ErrDuplicateUsername
func (c *Client) Register(req models.RegisterRequest) (models.User, error) {
	var user models.User
	resp, err := c.doJSON(http.MethodPost, "/api/auth/register", req, &user)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusBadRequest {
			return models.User{}, fmt.Errorf("%w: %v", errs.ErrDuplicateUsername, err)
		}
		return models.User{}, err
	}
	return user, nil
}

// Login 登入，帳密不符時回傳(nil, nil)，其他錯誤才回傳error
func (c *Client) Login(username, password string) (*models.User, error) {
	var user models.User
	resp, err := c.doJSON(http.MethodPost, "/api/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	}, &user)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
