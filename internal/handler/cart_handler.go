package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RamiSparda/AppMovilApp/internal/domain/model"
	"github.com/RamiSparda/AppMovilApp/internal/usecase"
)

// 送料表示の目安。合計の正はあくまでtotalPrice（導出値）。
const (
	freeShippingThreshold = 50.0
	shippingFlat          = 8.99
)

// /cartのHTTP
type CartHandler struct {
	store *usecase.CartStore
}

// DI
func NewCartHandler(store *usecase.CartStore) *CartHandler {
	return &CartHandler{store: store}
}

type AddCartRequest struct {
	Product       model.ProductRecord `json:"product"`
	Quantity      int64               `json:"quantity"`
	SelectedColor string              `json:"selectedColor"`
	SelectedSize  string              `json:"selectedSize"`
}

type UpdateCartLineRequest struct {
	Quantity int64 `json:"quantity"`
}

type CartQuantityResponse struct {
	InCart   bool  `json:"inCart"`
	Quantity int64 `json:"quantity"`
}

// CartResponse は現在のカート。shipping/totalは画面表示用の目安。
type CartResponse struct {
	Items      []model.CartLine `json:"items"`
	TotalItems int64            `json:"totalItems"`
	TotalPrice float64          `json:"totalPrice"`
	Shipping   float64          `json:"shipping"`
	Total      float64          `json:"total"`
}

// /cart 配下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.getCart)
	e.GET("/cart/quantity", h.getQuantity)
	e.POST("/cart", h.addToCart)
	e.PATCH("/cart/:lineId", h.patchLine)
	e.DELETE("/cart/:lineId", h.deleteLine)
	e.DELETE("/cart", h.clearCart)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.buildCartResponse())
}

func (h *CartHandler) getQuantity(c echo.Context) error {
	productID := c.QueryParam("productId")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid productId"})
	}

	color := c.QueryParam("color")
	size := c.QueryParam("size")

	return c.JSON(http.StatusOK, CartQuantityResponse{
		InCart:   h.store.IsInCart(productID, color, size),
		Quantity: h.store.GetItemQuantity(productID, color, size),
	})
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if req.Product.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product"})
	}

	h.store.AddToCart(req.Product, req.Quantity, req.SelectedColor, req.SelectedSize)

	return c.JSON(http.StatusOK, h.buildCartResponse())
}

func (h *CartHandler) patchLine(c echo.Context) error {
	lineID := c.Param("lineId")
	if lineID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartLineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.store.UpdateQuantity(lineID, req.Quantity)

	return c.JSON(http.StatusOK, h.buildCartResponse())
}

func (h *CartHandler) deleteLine(c echo.Context) error {
	lineID := c.Param("lineId")
	if lineID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	h.store.RemoveFromCart(lineID)

	return c.JSON(http.StatusOK, h.buildCartResponse())
}

func (h *CartHandler) clearCart(c echo.Context) error {
	h.store.ClearCart()

	return c.JSON(http.StatusOK, h.buildCartResponse())
}

func (h *CartHandler) buildCartResponse() CartResponse {
	st := h.store.State()

	shipping := shippingFlat
	if st.TotalPrice > freeShippingThreshold || len(st.Lines) == 0 {
		shipping = 0
	}

	return CartResponse{
		Items:      st.Lines,
		TotalItems: st.TotalItems,
		TotalPrice: st.TotalPrice,
		Shipping:   shipping,
		Total:      st.TotalPrice + shipping,
	}
}
