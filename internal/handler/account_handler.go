package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// /account は認証なしのモック画面データ。
// 端末（プロセス）ごとのゲストIDだけ起動時に払い出す。
type AccountHandler struct {
	guestID string
}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{guestID: uuid.NewString()}
}

type AccountOrder struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}

type AccountResponse struct {
	GuestID string         `json:"guestId"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Orders  []AccountOrder `json:"orders"`
}

func (h *AccountHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/account", h.get)
}

func (h *AccountHandler) get(c echo.Context) error {
	return c.JSON(http.StatusOK, AccountResponse{
		GuestID: h.guestID,
		Name:    "Ramiro",
		Email:   "ramiro@email.com",
		Phone:   "+1 234 567 890",
		Orders: []AccountOrder{
			{ID: "1", Date: "15 Sep 2025", Total: 89.98, Status: "Entregado"},
			{ID: "2", Date: "8 Sep 2025", Total: 124.99, Status: "En camino"},
			{ID: "3", Date: "2 Sep 2025", Total: 65.50, Status: "Entregado"},
		},
	})
}
