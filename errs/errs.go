// Package errs 定義跨層共用的錯誤類型
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateUsername 註冊時使用者名稱已存在
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrUnauthorized 登入帳號或密碼錯誤，不區分哪一個錯
	ErrUnauthorized = errors.New("invalid credentials")
)

// ValidationError 結帳欄位驗證失敗，請求不會送出
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// StorageError 資料庫操作失敗，交易已回滾
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
