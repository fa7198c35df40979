package handler

import (
	"errors"
	"net/http"

	"app/internal/engine"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecase/engineの型付きエラーをHTTPへ写す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var ve *engine.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Error()})
	}

	if errors.Is(err, engine.ErrUnauthenticated) {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	// 位置が信用できない。クライアントはGET /cartで再読込する。
	if errors.Is(err, engine.ErrMirrorStale) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "mirror stale"})
	}

	var se *engine.SyncError
	if errors.As(err, &se) {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "store error"})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// AuthJWTが詰めたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxUserIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
