package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/pay-amigo/pay_amigo/internal/notification"
	"github.com/pay-amigo/pay_amigo/internal/user"
)

type testNotifier struct {
	messages []notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.messages = append(n.messages, msg)
	return nil
}

func newTestService(t *testing.T) (*Service, *user.Service, *testNotifier) {
	t.Helper()
	users := user.NewService(user.NewMemoryRepository())
	notifier := &testNotifier{}
	svc := NewService(NewMemoryRepository(), users, notifier)
	return svc, users, notifier
}

func mustCreateUser(t *testing.T, users *user.Service, name string) int64 {
	t.Helper()
	u, err := users.Create(context.Background(), name)
	if err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u.ID
}

func mustCreateWallet(t *testing.T, svc *Service, name string, userID int64, balance float64) Wallet {
	t.Helper()
	w, err := svc.Create(context.Background(), CreateInput{Name: name, UserID: userID, Balance: balance})
	if err != nil {
		t.Fatalf("create wallet %s: %v", name, err)
	}
	return w
}

func TestCreateAndFetch(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	userID := mustCreateUser(t, users, "johnny")
	created := mustCreateWallet(t, svc, "johnny_wallet", userID, 9000.22)

	byID, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID != created {
		t.Fatalf("fetched wallet %+v differs from created %+v", byID, created)
	}

	byName, err := svc.GetByName(ctx, "johnny_wallet")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName != created {
		t.Fatalf("fetched wallet %+v differs from created %+v", byName, created)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	userID := mustCreateUser(t, users, "vasile")
	mustCreateWallet(t, svc, "vasile_wallet", userID, 100.22)

	if _, err := svc.Create(ctx, CreateInput{Name: "vasile_wallet", UserID: userID, Balance: 50}); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}

	wallets, err := svc.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("find by user: %v", err)
	}
	if len(wallets) != 1 {
		t.Fatalf("expected exactly one wallet for user, got %d", len(wallets))
	}
}

func TestCreateUnknownOwner(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "John", UserID: 27, Balance: 100.22})
	if !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
	if got := err.Error(); got != "The userID that is assign to this wallet doesn't exist" {
		t.Fatalf("unexpected message: %q", got)
	}

	if _, err := svc.GetByName(ctx, "John"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no wallet to be persisted, got %v", err)
	}
}

func TestDeposit(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	userID := mustCreateUser(t, users, "dora")
	w := mustCreateWallet(t, svc, "dora_wallet", userID, 100.0)

	updated, err := svc.Deposit(ctx, w.ID, 5.0)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if updated.Balance != 105.0 {
		t.Fatalf("expected balance 105, got %v", updated.Balance)
	}
}

func TestWithdraw(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	userID := mustCreateUser(t, users, "mihai")
	w := mustCreateWallet(t, svc, "mihai_wallet", userID, 100.0)

	updated, err := svc.Withdraw(ctx, w.ID, 5.0)
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if updated.Balance != 95.0 {
		t.Fatalf("expected balance 95, got %v", updated.Balance)
	}
}

func TestWithdrawOverdraft(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	userID := mustCreateUser(t, users, "ana")
	w := mustCreateWallet(t, svc, "ana_wallet", userID, 230.0)

	_, err := svc.Withdraw(ctx, w.ID, 1_000_000.0)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := err.Error(); got != "Insufficient funds" {
		t.Fatalf("unexpected message: %q", got)
	}

	after, err := svc.GetByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if after.Balance != 230.0 {
		t.Fatalf("balance changed after failed withdrawal: %v", after.Balance)
	}
}

func TestNonPositiveAmountsRejected(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	userID := mustCreateUser(t, users, "ion")
	w := mustCreateWallet(t, svc, "ion_wallet", userID, 100.0)

	cases := []struct {
		name   string
		op     func() (Wallet, error)
	}{
		{"deposit negative", func() (Wallet, error) { return svc.Deposit(ctx, w.ID, -10.0) }},
		{"deposit zero", func() (Wallet, error) { return svc.Deposit(ctx, w.ID, 0) }},
		{"withdraw negative", func() (Wallet, error) { return svc.Withdraw(ctx, w.ID, -10.0) }},
		{"withdraw zero", func() (Wallet, error) { return svc.Withdraw(ctx, w.ID, 0) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.op()
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("expected ErrInvalidAmount, got %v", err)
			}
			if got := err.Error(); got != "No negative amounts" {
				t.Fatalf("unexpected message: %q", got)
			}
		})
	}

	after, err := svc.GetByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if after.Balance != 100.0 {
		t.Fatalf("balance changed after rejected mutations: %v", after.Balance)
	}
}

func TestMutateUnknownWallet(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Deposit(ctx, 42, 5.0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on deposit, got %v", err)
	}
	if _, err := svc.Withdraw(ctx, 42, 5.0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on withdraw, got %v", err)
	}
}

func TestFindByUserID(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	vasileID := mustCreateUser(t, users, "Vasile")
	otherID := mustCreateUser(t, users, "Maria")

	w1 := mustCreateWallet(t, svc, "vasile_wallet", vasileID, 230.0)
	w2 := mustCreateWallet(t, svc, "vasile_wallet2", vasileID, 230.0)
	mustCreateWallet(t, svc, "maria_wallet", otherID, 10.0)

	wallets, err := svc.FindByUserID(ctx, vasileID)
	if err != nil {
		t.Fatalf("find by user: %v", err)
	}
	if len(wallets) != 2 {
		t.Fatalf("expected 2 wallets, got %d", len(wallets))
	}
	if wallets[0].ID != w1.ID || wallets[1].ID != w2.ID {
		t.Fatalf("unexpected wallet ids: %d, %d", wallets[0].ID, wallets[1].ID)
	}

	none, err := svc.FindByUserID(ctx, 9999)
	if err != nil {
		t.Fatalf("find by unknown user: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d wallets", len(none))
	}
}

func TestGetEmpty(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	userID := mustCreateUser(t, users, "petru")
	empty := mustCreateWallet(t, svc, "empty_wallet", userID, 0.0)
	mustCreateWallet(t, svc, "funded_wallet", userID, 230.0)

	wallets, err := svc.GetEmpty(ctx)
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if len(wallets) != 1 || wallets[0].ID != empty.ID {
		t.Fatalf("expected only the empty wallet, got %+v", wallets)
	}
}

func TestMutationsNotify(t *testing.T) {
	svc, users, notifier := newTestService(t)
	ctx := context.Background()

	userID := mustCreateUser(t, users, "nora")
	w := mustCreateWallet(t, svc, "nora_wallet", userID, 50.0)

	if _, err := svc.Deposit(ctx, w.ID, 10.0); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := svc.Withdraw(ctx, w.ID, 20.0); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if len(notifier.messages) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.messages))
	}
	if notifier.messages[0].Kind != notification.KindDeposit {
		t.Fatalf("expected deposit notification, got %s", notifier.messages[0].Kind)
	}
	if notifier.messages[1].Kind != notification.KindWithdrawal {
		t.Fatalf("expected withdrawal notification, got %s", notifier.messages[1].Kind)
	}
}
