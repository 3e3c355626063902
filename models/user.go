package models

// User 使用者帳戶，密碼以明文儲存比對(沿用原系統行為，已標記為安全缺口)
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	FullName string `json:"fullName" gorm:"column:full_name;not null"`
	Phone    string `json:"phone" gorm:"not null"`
	IsAdmin  bool   `json:"is_admin" gorm:"column:is_admin;default:false"`
}

func (User) TableName() string {
	return "users"
}
