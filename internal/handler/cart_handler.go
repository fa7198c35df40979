package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"app/internal/catalog"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/engine"
	"app/internal/middleware"
	"app/internal/session"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	sessions *session.Manager
	catalog  catalog.Source
}

// DI
func NewCartHandler(sessions *session.Manager, catalog catalog.Source) *CartHandler {
	return &CartHandler{sessions: sessions, catalog: catalog}
}

type AddItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type UpdateItemRequest struct {
	Quantity int64 `json:"quantity"`
	Position int   `json:"position"`
	// 数量0を「0のまま残す」で確定する場合にtrue
	Keep bool `json:"keep"`
}

type CartResponse struct {
	Items []model.CartLineItem `json:"items"`
	Total float64              `json:"total"`
	// 2桁丸めは表示用のここでだけ行う
	TotalDisplay string `json:"total_display"`
}

type AddItemResponse struct {
	Created      bool   `json:"created"`
	PriceWarning string `json:"price_warning,omitempty"`
}

// 数量0の意思確認シグナル
type QuantityZeroResponse struct {
	Signal string `json:"signal"`
	ItemID string `json:"item_id"`
}

// /cart配下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/cart")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.getCart)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:itemID", h.patchItem)
	g.DELETE("/items/:itemID", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	eng, err := h.engineFor(c)
	if err != nil {
		return writeError(c, err)
	}

	// ミラーの全再読込。失敗時はミラーは空に戻り、
	// 「空」ではなく「読めなかった」がクライアントに伝わる。
	items, err := eng.LoadCart(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	total := eng.ComputeTotal()
	return c.JSON(http.StatusOK, CartResponse{
		Items:        items,
		Total:        total,
		TotalDisplay: displayTotal(total),
	})
}

func (h *CartHandler) addItem(c echo.Context) error {
	eng, err := h.engineFor(c)
	if err != nil {
		return writeError(c, err)
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	item, ok := h.catalog.Find(req.ItemID)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item_id"})
	}

	out, err := eng.AddOrIncrement(c.Request().Context(), item, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	resp := AddItemResponse{Created: out.Created}
	if out.Warning != nil {
		resp.PriceWarning = out.Warning.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	eng, err := h.engineFor(c)
	if err != nil {
		return writeError(c, err)
	}

	itemID := c.Param("itemID")

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// 「0のまま残す」の明示的な決着
	if req.Quantity == 0 && req.Keep {
		if err := eng.SetQuantityZero(c.Request().Context(), itemID, req.Position); err != nil {
			return writeError(c, err)
		}
		return h.renderCart(c, eng)
	}

	outcome, err := eng.ChangeQuantity(c.Request().Context(), itemID, req.Quantity, req.Position)
	if err != nil {
		return writeError(c, err)
	}

	// 数量0は適用せず、削除か0維持かをクライアントに聞き直してもらう
	if outcome == engine.ChangeQuantityZeroRequested {
		return c.JSON(http.StatusConflict, QuantityZeroResponse{
			Signal: "quantity_zero_requested",
			ItemID: itemID,
		})
	}

	return h.renderCart(c, eng)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	eng, err := h.engineFor(c)
	if err != nil {
		return writeError(c, err)
	}

	itemID := c.Param("itemID")

	position, err := strconv.Atoi(c.QueryParam("position"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position"})
	}

	if err := eng.RemoveItem(c.Request().Context(), itemID, position); err != nil {
		return writeError(c, err)
	}

	return h.renderCart(c, eng)
}

func (h *CartHandler) engineFor(c echo.Context) (*engine.Engine, error) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return nil, engine.ErrUnauthenticated
	}
	return h.sessions.Engine(userID)
}

func (h *CartHandler) renderCart(c echo.Context, eng *engine.Engine) error {
	total := eng.ComputeTotal()
	return c.JSON(http.StatusOK, CartResponse{
		Items:        eng.Items(),
		Total:        total,
		TotalDisplay: displayTotal(total),
	})
}

func displayTotal(total float64) string {
	return fmt.Sprintf("$%.2f", total)
}
