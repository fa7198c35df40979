package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	authH *handler.AuthHandler,
	catalogH *handler.CatalogHandler,
	cartH *handler.CartHandler,
) {
	authH.RegisterRoutes(e, cfg)
	catalogH.RegisterRoutes(e)
	cartH.RegisterRoutes(e, cfg)
}
