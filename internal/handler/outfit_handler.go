package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RamiSparda/AppMovilApp/internal/usecase"
)

// /outfits の公開API
type OutfitHandler struct {
	uc *usecase.OutfitUsecase
}

// DI
func NewOutfitHandler(uc *usecase.OutfitUsecase) *OutfitHandler {
	return &OutfitHandler{uc: uc}
}

func (h *OutfitHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/outfits", h.list)
	e.POST("/cart/outfit/:id", h.addToCart)
}

func (h *OutfitHandler) list(c echo.Context) error {
	out, err := h.uc.ListOutfits(c.Request().Context(), c.QueryParam("categoria"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// コーデの構成商品をまとめてカートへ
func (h *OutfitHandler) addToCart(c echo.Context) error {
	out, err := h.uc.AddOutfitToCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
