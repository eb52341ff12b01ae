package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pay-amigo/pay_amigo/internal/wallet"
)

// RegisterWalletRoutes wires wallet-related endpoints. The static "empty"
// segment registers before the ":walletId" parameter so it never shadows it.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Post("/wallets", h.Create)
	r.Get("/wallets/empty", h.ListEmpty)
	r.Get("/wallets/by-name/:name", h.GetByName)
	r.Get("/wallets/:walletId", h.GetByID)
	r.Post("/wallets/:walletId/deposit", h.Deposit)
	r.Post("/wallets/:walletId/withdraw", h.Withdraw)
}
