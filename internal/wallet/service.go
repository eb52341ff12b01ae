package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/pay-amigo/pay_amigo/internal/notification"
)

// Directory resolves and validates wallet owners. Implemented by the user
// service; injected so the wallet core never reaches into user storage.
type Directory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service validates and executes wallet operations against the store.
type Service struct {
	repo     Repository
	users    Directory
	notifier notification.Notifier
}

// NewService builds a wallet service instance. The notifier may be nil.
func NewService(repo Repository, users Directory, notifier notification.Notifier) *Service {
	return &Service{repo: repo, users: users, notifier: notifier}
}

// Create validates the creation request and persists a new wallet. The owner
// must exist in the directory and the name must be unique; the store's
// uniqueness violation is translated into ErrNameTaken before it can escape
// to the transport layer.
func (s *Service) Create(ctx context.Context, input CreateInput) (Wallet, error) {
	ok, err := s.users.Exists(ctx, input.UserID)
	if err != nil {
		return Wallet{}, err
	}
	if !ok {
		return Wallet{}, ErrOwnerNotFound
	}

	wallet := Wallet{
		Name:      input.Name,
		UserID:    input.UserID,
		Balance:   input.Balance,
		CreatedAt: time.Now().UTC(),
	}

	return s.repo.Insert(ctx, wallet)
}

// GetByID fetches a wallet by its identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (Wallet, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByName fetches a wallet by its unique name.
func (s *Service) GetByName(ctx context.Context, name string) (Wallet, error) {
	return s.repo.FindByName(ctx, name)
}

// FindByUserID lists all wallets owned by the given user.
func (s *Service) FindByUserID(ctx context.Context, userID int64) ([]Wallet, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// GetEmpty lists all wallets holding a zero balance.
func (s *Service) GetEmpty(ctx context.Context) ([]Wallet, error) {
	return s.repo.FindEmpty(ctx)
}

// Deposit adds a strictly positive amount to the wallet balance. Zero counts
// as invalid, matching the withdrawal rule.
func (s *Service) Deposit(ctx context.Context, id int64, amount float64) (Wallet, error) {
	if amount <= 0 {
		return Wallet{}, ErrInvalidAmount
	}

	wallet, err := s.repo.UpdateBalance(ctx, id, func(current float64) (float64, error) {
		return current + amount, nil
	})
	if err != nil {
		return Wallet{}, err
	}

	s.notify(ctx, notification.KindDeposit, wallet, amount)
	return wallet, nil
}

// Withdraw removes a strictly positive amount from the wallet balance. The
// amount check happens under the store's lock so a concurrent withdrawal can
// never drive the balance negative.
func (s *Service) Withdraw(ctx context.Context, id int64, amount float64) (Wallet, error) {
	if amount <= 0 {
		return Wallet{}, ErrInvalidAmount
	}

	wallet, err := s.repo.UpdateBalance(ctx, id, func(current float64) (float64, error) {
		if amount > current {
			return 0, ErrInsufficientFunds
		}
		return current - amount, nil
	})
	if err != nil {
		return Wallet{}, err
	}

	s.notify(ctx, notification.KindWithdrawal, wallet, amount)
	return wallet, nil
}

func (s *Service) notify(ctx context.Context, kind string, wallet Wallet, amount float64) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:        kind,
		Destination: fmt.Sprintf("user:%d", wallet.UserID),
		Body:        fmt.Sprintf("wallet %s moved %.2f, balance now %.2f", wallet.Name, amount, wallet.Balance),
	})
}
