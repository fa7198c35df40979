package handler

import (
	"net/http"

	"app/internal/catalog"

	"github.com/labstack/echo/v4"
)

// /catalog の公開API
type CatalogHandler struct {
	source catalog.Source
}

// DI
func NewCatalogHandler(source catalog.Source) *CatalogHandler {
	return &CatalogHandler{source: source}
}

// 公開カタログのルートを登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/catalog", h.list)
	e.GET("/catalog/:itemID", h.detail)
}

func (h *CatalogHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.source.List())
}

func (h *CatalogHandler) detail(c echo.Context) error {
	item, ok := h.source.Find(c.Param("itemID"))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, item)
}
