package models

// DecodedSession 从持久化的令牌中解码出的会话身份
//
// 每次访问检查时重新解码，本身从不持久化；expiresAt 一旦早于当前
// 时间，调用方必须把会话视为不存在并强制重新登录。
type DecodedSession struct {
	Subject   string `json:"subject"`   // 用户名
	Role      string `json:"role"`      // 角色，见 RoleAdmin / RoleOperator
	ExpiresAt int64  `json:"expiresAt"` // 过期时间，epoch 秒
}
