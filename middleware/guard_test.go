package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-riegopanel/auth"
	"go-riegopanel/models"
)

const cookieName = "riego_token"

func newTestRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	guard := auth.NewGuard(zap.NewNop())
	r.GET("/api/protected", Guarded(guard, cookieName, roles...), func(ctx *gin.Context) {
		sess := ctx.MustGet(ContextSession).(*models.DecodedSession)
		ctx.JSON(http.StatusOK, gin.H{"subject": sess.Subject, "token": ctx.GetString(ContextToken)})
	})
	return r
}

func mintToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := auth.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "maria",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestGuardedRedirectsNavigationWithoutToken(t *testing.T) {
	r := newTestRouter(models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, auth.LoginPath, w.Header().Get("Location"))
}

func TestGuardedReturns401ForJSONRequests(t *testing.T) {
	r := newTestRouter(models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardedAllowsValidSession(t *testing.T) {
	r := newTestRouter(models.RoleAdmin, models.RoleOperator)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: mintToken(t, models.RoleOperator, time.Now().Add(time.Hour))})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"maria"`)
}

func TestGuardedDeniesWrongRole(t *testing.T) {
	r := newTestRouter(models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: mintToken(t, models.RoleOperator, time.Now().Add(time.Hour))})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, auth.LoginPath, w.Header().Get("Location"))
}

func TestGuardedClearsExpiredCookie(t *testing.T) {
	r := newTestRouter(models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: mintToken(t, models.RoleAdmin, time.Now().Add(-time.Minute))})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)

	// 过期会话必须把Cookie清掉
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
