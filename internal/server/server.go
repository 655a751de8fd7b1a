package server

import (
	"github.com/labstack/echo/v4"

	"github.com/RamiSparda/AppMovilApp/internal/handler"
)

// Start は全ハンドラのルートを登録してechoを起動する。
func Start(
	addr string,
	cartH *handler.CartHandler,
	productH *handler.ProductHandler,
	outfitH *handler.OutfitHandler,
	accountH *handler.AccountHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	cartH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	outfitH.RegisterRoutes(e)
	accountH.RegisterRoutes(e)

	return e.Start(addr)
}
