package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	CtxCartTokenKey = "cart_token" // string

	CartCookieName = "cart_session"

	//カートは「永続」セッション扱い（ログインの有効期限とは別物）
	cartCookieTTL = 365 * 24 * time.Hour
)

// CartSession は匿名カートの所有キーを配る。
// Cookieに無ければ128bitのランダムトークンを発行して永続Cookieに入れる。
// ログイン状態とは一切結び付けない。
func CartSession(cookieSecure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(CartCookieName); err == nil && cookie.Value != "" {
				c.Set(CtxCartTokenKey, cookie.Value)
				return next(c)
			}

			token, err := newCartToken()
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			c.SetCookie(&http.Cookie{
				Name:     CartCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   cookieSecure,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(cartCookieTTL),
			})
			c.Set(CtxCartTokenKey, token)

			return next(c)
		}
	}
}

// 16バイト→32文字のhex
func newCartToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
