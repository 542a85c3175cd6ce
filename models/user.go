package models

import "time"

// 角色常量，与后端令牌中的 rol 声明保持一致
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERARIO"
)

// User 后端用户模型
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin 检查用户是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
