package wallet

import "time"

// Wallet is a named, user-owned record holding a non-negative balance.
// ID is assigned by the store and immutable, as are Name and UserID; the
// balance changes only through validated deposit/withdraw operations.
type Wallet struct {
	ID        int64
	Name      string
	UserID    int64
	Balance   float64
	CreatedAt time.Time
}

// CreateInput captures data required to create a wallet. It exists only for
// the duration of the create call and is never persisted as-is.
type CreateInput struct {
	Name    string
	UserID  int64
	Balance float64
}
