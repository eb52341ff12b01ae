package wallet

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	storage map[int64]Wallet
	byName  map[string]int64
}

// NewMemoryRepository constructs an in-memory repository for tests and
// development mode. The mutex stands in for the database row lock.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		storage: make(map[int64]Wallet),
		byName:  make(map[string]int64),
	}
}

func (r *memoryRepository) Insert(_ context.Context, wallet Wallet) (Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[wallet.Name]; exists {
		return Wallet{}, ErrNameTaken
	}
	r.nextID++
	wallet.ID = r.nextID
	r.storage[wallet.ID] = wallet
	r.byName[wallet.Name] = wallet.ID
	return wallet, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallet, ok := r.storage[id]
	if !ok {
		return Wallet{}, ErrNotFound
	}
	return wallet, nil
}

func (r *memoryRepository) FindByName(_ context.Context, name string) (Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byName[name]
	if !ok {
		return Wallet{}, ErrNotFound
	}
	return r.storage[id], nil
}

func (r *memoryRepository) FindByUserID(_ context.Context, userID int64) ([]Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallets := make([]Wallet, 0)
	for _, w := range r.storage {
		if w.UserID == userID {
			wallets = append(wallets, w)
		}
	}
	sortByID(wallets)
	return wallets, nil
}

func (r *memoryRepository) FindEmpty(_ context.Context) ([]Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallets := make([]Wallet, 0)
	for _, w := range r.storage {
		if w.Balance == 0 {
			wallets = append(wallets, w)
		}
	}
	sortByID(wallets)
	return wallets, nil
}

func (r *memoryRepository) UpdateBalance(_ context.Context, id int64, apply BalanceFunc) (Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallet, ok := r.storage[id]
	if !ok {
		return Wallet{}, ErrNotFound
	}
	next, err := apply(wallet.Balance)
	if err != nil {
		return Wallet{}, err
	}
	wallet.Balance = next
	r.storage[id] = wallet
	return wallet, nil
}

func sortByID(wallets []Wallet) {
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].ID < wallets[j].ID })
}
