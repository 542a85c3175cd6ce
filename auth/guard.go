// Package auth 实现进入受保护区域前的会话检查。
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"go-riegopanel/models"
)

// LoginPath 所有拒绝结果的跳转目标
const LoginPath = "/login"

// TokenSource 持久化令牌的读取和清除能力，由调用方注入，不使用全局单例
type TokenSource interface {
	Token() (string, bool)
	Clear()
}

// Reason 拒绝原因，仅用于诊断，不影响跳转目标
type Reason int

const (
	ReasonAllowed Reason = iota
	ReasonNoToken
	ReasonBadToken
	ReasonExpired
	ReasonForbidden
)

// Decision 一次访问检查的结果
type Decision struct {
	Allowed    bool
	RedirectTo string
	Reason     Reason
	Session    *models.DecodedSession
}

// Claims 后端令牌携带的声明
type Claims struct {
	Role string `json:"rol"`
	jwt.RegisteredClaims
}

// Guard 会话检查器，每次导航进入受保护区域时重新求值，自身不持有状态
type Guard struct {
	log *zap.Logger
	now func() time.Time
}

// NewGuard 创建一个会话检查器
func NewGuard(log *zap.Logger) *Guard {
	return &Guard{log: log, now: time.Now}
}

// DecodeSession 解码令牌中的声明
//
// 仪表盘没有后端的签名密钥，因此只解码不验签；过期与否由调用方
// 自行比较 ExpiresAt。
func DecodeSession(token string) (*models.DecodedSession, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	if claims.Subject == "" || claims.Role == "" || claims.ExpiresAt == nil {
		return nil, errors.New("token missing required claims")
	}
	return &models.DecodedSession{
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

// Check 判断当前调用方能否进入目标区域
//
// 无令牌、解码失败、已过期、角色不在许可列表内，一律拒绝并跳转登录页；
// 过期时额外清除持久化的令牌。解码错误在此处吞掉，对外只表现为拒绝。
func (g *Guard) Check(src TokenSource, allowedRoles []string) Decision {
	token, ok := src.Token()
	if !ok || token == "" {
		return deny(ReasonNoToken)
	}

	sess, err := DecodeSession(token)
	if err != nil {
		return deny(ReasonBadToken)
	}

	if sess.ExpiresAt <= g.now().Unix() {
		src.Clear()
		return deny(ReasonExpired)
	}

	if !contains(allowedRoles, sess.Role) {
		g.log.Warn("insufficient role",
			zap.String("subject", sess.Subject),
			zap.String("role", sess.Role),
			zap.Strings("required", allowedRoles),
		)
		return deny(ReasonForbidden)
	}

	return Decision{Allowed: true, Reason: ReasonAllowed, Session: sess}
}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, RedirectTo: LoginPath, Reason: reason}
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
