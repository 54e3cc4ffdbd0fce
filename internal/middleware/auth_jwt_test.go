package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func mustMakeJWT(t *testing.T, secret string, userID int64, isAdmin bool, method jwt.SigningMethod) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(userID, 10),
		"is_admin": isAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}

	tok := jwt.NewWithClaims(method, claims)
	signed, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func runAuthJWT(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var userID int64
	var isAdmin bool
	cfg := config.Config{JWTSecret: testSecret}
	handler := middleware.AuthJWT(cfg)(func(c echo.Context) error {
		userID, _ = c.Get(middleware.CtxUserIDKey).(int64)
		isAdmin, _ = c.Get(middleware.CtxIsAdminKey).(bool)
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
	return rec, userID, isAdmin
}

func TestAuthJWT_ValidCookie(t *testing.T) {
	token := mustMakeJWT(t, testSecret, 7, true, jwt.SigningMethodHS256)
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	rec, userID, isAdmin := runAuthJWT(t, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), userID)
	assert.True(t, isAdmin)
}

// CookieではなくAuthorizationヘッダでも通る
func TestAuthJWT_BearerHeader(t *testing.T) {
	token := mustMakeJWT(t, testSecret, 7, false, jwt.SigningMethodHS256)
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, userID, isAdmin := runAuthJWT(t, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), userID)
	assert.False(t, isAdmin)
}

func TestAuthJWT_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)

	rec, _, _ := runAuthJWT(t, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := mustMakeJWT(t, "other_secret", 7, false, jwt.SigningMethodHS256)
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	rec, _, _ := runAuthJWT(t, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// HS256以外のアルゴリズムは拒否
func TestAuthJWT_RejectsOtherSigningMethods(t *testing.T) {
	token := mustMakeJWT(t, testSecret, 7, false, jwt.SigningMethodHS512)
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})

	rec, _, _ := runAuthJWT(t, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGuard(t *testing.T) {
	e := echo.New()

	run := func(set func(c echo.Context)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		set(c)

		handler := middleware.AdminGuard()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		assert.NoError(t, handler(c))
		return rec
	}

	//AuthJWTを通っていない
	rec := run(func(c echo.Context) {})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	//ログイン済みだが一般ユーザー
	rec = run(func(c echo.Context) { c.Set(middleware.CtxIsAdminKey, false) })
	assert.Equal(t, http.StatusForbidden, rec.Code)

	//管理者
	rec = run(func(c echo.Context) { c.Set(middleware.CtxIsAdminKey, true) })
	assert.Equal(t, http.StatusOK, rec.Code)
}
