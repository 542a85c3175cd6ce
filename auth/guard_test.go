package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-riegopanel/models"
)

type fakeSource struct {
	token   string
	has     bool
	cleared bool
}

var _ TokenSource = (*fakeSource)(nil)

func (f *fakeSource) Token() (string, bool) { return f.token, f.has }
func (f *fakeSource) Clear()                { f.cleared = true }

func mintToken(t *testing.T, subject, role string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestGuard(now time.Time) *Guard {
	g := NewGuard(zap.NewNop())
	g.now = func() time.Time { return now }
	return g
}

func TestCheckNoToken(t *testing.T) {
	src := &fakeSource{}
	d := newTestGuard(time.Now()).Check(src, []string{models.RoleAdmin})

	assert.False(t, d.Allowed)
	assert.Equal(t, LoginPath, d.RedirectTo)
	assert.Equal(t, ReasonNoToken, d.Reason)
	assert.False(t, src.cleared)
}

func TestCheckMalformedToken(t *testing.T) {
	src := &fakeSource{token: "not.a.jwt", has: true}
	d := newTestGuard(time.Now()).Check(src, []string{models.RoleAdmin})

	assert.False(t, d.Allowed)
	assert.Equal(t, LoginPath, d.RedirectTo)
	assert.Equal(t, ReasonBadToken, d.Reason)
}

func TestCheckExpiredTokenClearsSource(t *testing.T) {
	now := time.Now()
	src := &fakeSource{token: mintToken(t, "maria", models.RoleAdmin, now.Add(-time.Second)), has: true}
	d := newTestGuard(now).Check(src, []string{models.RoleAdmin})

	assert.False(t, d.Allowed)
	assert.Equal(t, LoginPath, d.RedirectTo)
	assert.Equal(t, ReasonExpired, d.Reason)
	assert.True(t, src.cleared)
}

func TestCheckExpiryBoundary(t *testing.T) {
	// exp 等于当前时间也算过期
	now := time.Unix(1700000000, 0)
	src := &fakeSource{token: mintToken(t, "maria", models.RoleAdmin, now), has: true}
	d := newTestGuard(now).Check(src, []string{models.RoleAdmin})

	assert.Equal(t, ReasonExpired, d.Reason)
	assert.True(t, src.cleared)
}

func TestCheckWrongRole(t *testing.T) {
	now := time.Now()
	src := &fakeSource{token: mintToken(t, "jose", models.RoleOperator, now.Add(time.Hour)), has: true}
	d := newTestGuard(now).Check(src, []string{models.RoleAdmin})

	assert.False(t, d.Allowed)
	assert.Equal(t, LoginPath, d.RedirectTo)
	assert.Equal(t, ReasonForbidden, d.Reason)
	assert.False(t, src.cleared)
}

func TestCheckSuccess(t *testing.T) {
	now := time.Now()
	exp := now.Add(time.Hour)
	src := &fakeSource{token: mintToken(t, "maria", models.RoleAdmin, exp), has: true}
	d := newTestGuard(now).Check(src, []string{models.RoleAdmin})

	require.True(t, d.Allowed)
	assert.Equal(t, ReasonAllowed, d.Reason)
	require.NotNil(t, d.Session)
	assert.Equal(t, "maria", d.Session.Subject)
	assert.Equal(t, models.RoleAdmin, d.Session.Role)
	assert.Equal(t, exp.Unix(), d.Session.ExpiresAt)
}

func TestCheckOperatorAllowedInSharedArea(t *testing.T) {
	now := time.Now()
	src := &fakeSource{token: mintToken(t, "jose", models.RoleOperator, now.Add(time.Hour)), has: true}
	d := newTestGuard(now).Check(src, []string{models.RoleAdmin, models.RoleOperator})

	assert.True(t, d.Allowed)
}

func TestDecodeSessionMissingClaims(t *testing.T) {
	// 缺少 rol 声明的令牌视为无效
	claims := jwt.RegisteredClaims{
		Subject:   "maria",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = DecodeSession(signed)
	assert.Error(t, err)
}
