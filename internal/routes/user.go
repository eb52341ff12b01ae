package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pay-amigo/pay_amigo/internal/user"
	"github.com/pay-amigo/pay_amigo/internal/wallet"
)

// RegisterUserRoutes wires user directory endpoints, including the per-user
// wallet listing served by the wallet handler.
func RegisterUserRoutes(r fiber.Router, h *user.Handler, wallets *wallet.Handler) {
	r.Post("/users", h.Create)
	r.Get("/users/by-name/:name", h.Resolve)
	r.Get("/users/:userId/wallets", wallets.ListByUser)
}
