package wallet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	UserID  int64   `json:"user_id"`
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

type walletResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	UserID  int64   `json:"user_id"`
	Balance float64 `json:"balance"`
}

func toResponse(w Wallet) walletResponse {
	return walletResponse{ID: w.ID, Name: w.Name, UserID: w.UserID, Balance: w.Balance}
}

func toResponses(wallets []Wallet) []walletResponse {
	out := make([]walletResponse, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, toResponse(w))
	}
	return out
}

// httpError maps wallet core conditions onto status codes. Every named
// condition stays a client error; only unrecognized storage faults become 500s.
func httpError(err error) *fiber.Error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNameTaken):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrOwnerNotFound),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInsufficientFunds):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return fiber.NewError(http.StatusInternalServerError, err.Error())
}

func walletID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("walletId"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid wallet id")
	}
	return id, nil
}

// Create provisions a wallet for an existing user.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "wallet name is required")
	}
	wallet, err := h.service.Create(c.UserContext(), CreateInput{
		Name:    req.Name,
		UserID:  req.UserID,
		Balance: req.Balance,
	})
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusCreated).JSON(toResponse(wallet))
}

// GetByID returns a wallet by identifier.
func (h *Handler) GetByID(c *fiber.Ctx) error {
	id, err := walletID(c)
	if err != nil {
		return err
	}
	wallet, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(wallet))
}

// GetByName returns a wallet by its unique name.
func (h *Handler) GetByName(c *fiber.Ctx) error {
	wallet, err := h.service.GetByName(c.UserContext(), c.Params("name"))
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(wallet))
}

// ListByUser returns all wallets owned by the given user.
func (h *Handler) ListByUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}
	wallets, err := h.service.FindByUserID(c.UserContext(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponses(wallets))
}

// ListEmpty returns all wallets holding a zero balance.
func (h *Handler) ListEmpty(c *fiber.Ctx) error {
	wallets, err := h.service.GetEmpty(c.UserContext())
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponses(wallets))
}

// Deposit adds money to a wallet.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	id, err := walletID(c)
	if err != nil {
		return err
	}
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	wallet, err := h.service.Deposit(c.UserContext(), id, req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(wallet))
}

// Withdraw removes money from a wallet.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	id, err := walletID(c)
	if err != nil {
		return err
	}
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	wallet, err := h.service.Withdraw(c.UserContext(), id, req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusOK).JSON(toResponse(wallet))
}
