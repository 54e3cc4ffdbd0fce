package handler

import (
	"errors"
	"net/http"

	"github.com/danishhshk/FreshBasket/internal/middleware"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseの失敗をHTTPステータスへ変換する。
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInsufficientStock),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrInvalidFileType):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrForbidden),
		errors.Is(err, usecase.ErrSelfDemotion):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrDuplicate):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v, ok := c.Get(middleware.CtxUserIDKey).(int64)
	return v, ok
}

func getCartTokenFromContext(c echo.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxCartTokenKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
