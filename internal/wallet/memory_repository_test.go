package wallet

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestUpdateBalanceSerializesConcurrentMutations(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	w, err := repo.Insert(ctx, Wallet{Name: "hot_wallet", UserID: 1, CreatedAt: time.Now().UTC()})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.UpdateBalance(ctx, w.ID, func(current float64) (float64, error) {
				return current + 1, nil
			})
			if err != nil {
				t.Errorf("update balance: %v", err)
			}
		}()
	}
	wg.Wait()

	after, err := repo.FindByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if after.Balance != workers {
		t.Fatalf("lost update: expected balance %d, got %v", workers, after.Balance)
	}
}

func TestUpdateBalanceAbortLeavesBalanceUntouched(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	w, err := repo.Insert(ctx, Wallet{Name: "frozen", UserID: 1, Balance: 70, CreatedAt: time.Now().UTC()})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := repo.UpdateBalance(ctx, w.ID, func(float64) (float64, error) {
		return 0, ErrInsufficientFunds
	}); err != ErrInsufficientFunds {
		t.Fatalf("expected apply error to propagate, got %v", err)
	}

	after, err := repo.FindByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if after.Balance != 70 {
		t.Fatalf("expected balance 70 after aborted update, got %v", after.Balance)
	}
}
